package ports

import (
	"context"

	"forex-rate-service/internal/domain/model"
)

// Transport performs one GET request against a rate provider. Implementations
// own timeout and cancellation policy; their errors are propagated to callers
// unchanged.
type Transport interface {
	Get(ctx context.Context, req model.ProviderRequest) (*model.ProviderResponse, error)
}
