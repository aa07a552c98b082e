package provider

import (
	"errors"
	"fmt"
	"time"

	"forex-rate-service/internal/domain/model"
	"forex-rate-service/pkg/utils"
)

var (
	// ErrUnknownProvider is returned when the configured provider name has no
	// registered request builder.
	ErrUnknownProvider = errors.New("unknown rates provider")

	// ErrMissingAppID is returned when the openexchangerates provider is
	// selected without an app id configured.
	ErrMissingAppID = errors.New("openexchangerates app id is not configured")
)

// Provider builds requests for one upstream rate source. Construction is
// pure: no shared state is touched and every call yields a fresh request.
type Provider interface {
	Name() string
	BuildRequest(base model.Currency, date time.Time, extra map[string]string) (model.ProviderRequest, error)
}

// Registry maps provider names to request builders. The provider set is
// closed at construction, so an unrecognized name is a configuration error
// rather than a missing method.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

func (r *Registry) Build(name string, base model.Currency, date time.Time, extra map[string]string) (model.ProviderRequest, error) {
	p, ok := r.providers[name]
	if !ok {
		return model.ProviderRequest{}, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return p.BuildRequest(base, date, extra)
}

// dateSegment resolves the URL date segment: the literal "latest" when no
// date is given, YYYY-MM-DD otherwise.
func dateSegment(date time.Time) string {
	if date.IsZero() {
		return "latest"
	}
	return utils.FormatDate(date)
}
