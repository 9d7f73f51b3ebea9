package analytics

import "context"

type AnalyticsRepository interface {
	Summary(ctx context.Context) (Summary, error)
}
