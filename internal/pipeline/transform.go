package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/metar-reader/internal/domain"
	"github.com/couchcryptid/metar-reader/internal/observability"
)

// MetarTransformer implements Transformer by decoding the raw report text
// carried in each message.
type MetarTransformer struct {
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewTransformer creates a MetarTransformer.
func NewTransformer(metrics *observability.Metrics, logger *slog.Logger) *MetarTransformer {
	return &MetarTransformer{
		metrics: metrics,
		logger:  logger,
	}
}

func (t *MetarTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	report, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	t.metrics.ReportsDecoded.Inc()

	out, err := domain.SerializeReport(report)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	t.logger.Debug("report decoded", "station", report.Airport, "offset", raw.Offset)
	return out, nil
}
