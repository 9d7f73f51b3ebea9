package analytics

import "context"

type AnalyticsService interface {
	Summary(ctx context.Context) (Summary, error)
}
