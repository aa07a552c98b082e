package ports

import (
	"context"
	"time"

	"forex-rate-service/internal/domain/model"
)

// RateService is the public rate-retrieval and conversion surface. A zero
// date means "most recent available rates".
type RateService interface {
	GetRates(ctx context.Context, base model.Currency, date time.Time) (model.RateMap, error)
	GetRate(ctx context.Context, base, dest model.Currency, date time.Time) (model.Value, error)
	Convert(ctx context.Context, base, dest model.Currency, amount model.Value, date time.Time) (model.Value, error)
}
