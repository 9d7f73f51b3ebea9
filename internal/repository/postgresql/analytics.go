package postgresql

import (
	"context"

	"github.com/teampulse/teampulse-backend-go/internal/domain/analytics"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepositoryImpl{db: db}
}

// Summary implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) Summary(ctx context.Context) (analytics.Summary, error) {
	q := GetQuerier(ctx, r.db)

	var s analytics.Summary

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM employees WHERE status = 'active'),
			(SELECT COUNT(*) FROM tasks),
			(SELECT COUNT(*) FROM tasks WHERE status = 'done'),
			(SELECT COUNT(*) FROM tasks WHERE due_date < NOW() AND status <> 'done'),
			(SELECT COUNT(*) FROM tasks WHERE priority = 'low'),
			(SELECT COUNT(*) FROM tasks WHERE priority = 'medium'),
			(SELECT COUNT(*) FROM tasks WHERE priority = 'high')`

	err := q.QueryRow(ctx, query).Scan(
		&s.TotalEmployees,
		&s.ActiveEmployees,
		&s.TotalTasks,
		&s.CompletedTasks,
		&s.OverdueTasks,
		&s.PriorityBreakdown.Low,
		&s.PriorityBreakdown.Medium,
		&s.PriorityBreakdown.High,
	)
	if err != nil {
		return analytics.Summary{}, err
	}
	return s, nil
}
