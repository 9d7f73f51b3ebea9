package analytics

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/analytics"
)

type AnalyticsServiceImpl struct {
	analytics.AnalyticsRepository
}

func NewAnalyticsService(repo analytics.AnalyticsRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		AnalyticsRepository: repo,
	}
}

// Summary implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) Summary(ctx context.Context) (analytics.Summary, error) {
	summary, err := s.AnalyticsRepository.Summary(ctx)
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("failed to build analytics summary: %w", err)
	}
	return summary, nil
}
