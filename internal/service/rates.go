package service

import (
	"context"
	"net/http"
	"time"

	"forex-rate-service/internal/domain/model"
	"forex-rate-service/internal/domain/ports"
	"forex-rate-service/internal/provider"
	"forex-rate-service/pkg/logger"
	"forex-rate-service/pkg/utils"
)

// RateService retrieves exchange rates from the configured provider and
// converts amounts. Every operation is a single synchronous request/decode
// sequence; no state is shared between calls beyond read-only configuration,
// so a single instance is safe for concurrent use.
type RateService struct {
	registry     *provider.Registry
	transport    ports.Transport
	providerName string
	forceDecimal bool
	log          *logger.Logger
}

func NewRateService(registry *provider.Registry, transport ports.Transport, providerName string, forceDecimal bool, log *logger.Logger) *RateService {
	return &RateService{
		registry:     registry,
		transport:    transport,
		providerName: providerName,
		forceDecimal: forceDecimal,
		log:          log,
	}
}

func (s *RateService) mode() model.PrecisionMode {
	if s.forceDecimal {
		return model.Decimal
	}
	return model.Float
}

// GetRates returns all rates for the base currency at the given date, or the
// most recent rates when the date is zero.
func (s *RateService) GetRates(ctx context.Context, base model.Currency, date time.Time) (model.RateMap, error) {
	resp, err := s.fetch(ctx, base, date, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &RatesUnavailableError{Base: base, Date: dateLabel(date)}
	}

	return decodeRates(resp.Body, s.mode()), nil
}

// GetRate returns the single rate base => dest. When base == dest the result
// is exactly 1 in the service precision mode and no request is issued.
func (s *RateService) GetRate(ctx context.Context, base, dest model.Currency, date time.Time) (model.Value, error) {
	if base == dest {
		return model.One(s.mode()), nil
	}

	return s.fetchRate(ctx, base, dest, date, s.mode())
}

// Convert multiplies amount by the rate base => dest. The effective precision
// mode is decimal when the service forces decimal or the amount itself is
// decimal; the decoded rate uses the same mode, and a representation mismatch
// between rate and amount fails with ErrDecimalFloatMismatch rather than
// silently coercing.
func (s *RateService) Convert(ctx context.Context, base, dest model.Currency, amount model.Value, date time.Time) (model.Value, error) {
	mode := s.mode()
	if amount.IsDecimal() {
		mode = model.Decimal
	}

	if base == dest {
		return amount.In(mode), nil
	}

	rate, err := s.fetchRate(ctx, base, dest, date, mode)
	if err != nil {
		return model.Value{}, err
	}

	return mul(rate, amount)
}

// fetch builds the provider request and dispatches it. Transport errors are
// returned unchanged, never reinterpreted as rate unavailability.
func (s *RateService) fetch(ctx context.Context, base model.Currency, date time.Time, extra map[string]string) (*model.ProviderResponse, error) {
	req, err := s.registry.Build(s.providerName, base, date, extra)
	if err != nil {
		return nil, err
	}

	s.log.Debug("fetching rates", "provider", s.providerName, "base", base, "date", dateLabel(date))

	return s.transport.Get(ctx, req)
}

func (s *RateService) fetchRate(ctx context.Context, base, dest model.Currency, date time.Time, mode model.PrecisionMode) (model.Value, error) {
	resp, err := s.fetch(ctx, base, date, map[string]string{"symbols": dest.String()})
	if err != nil {
		return model.Value{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return model.Value{}, &RatesUnavailableError{Base: base, Dest: dest, Date: dateLabel(date)}
	}

	rate, ok := decodeRate(resp.Body, dest, mode)
	if !ok {
		return model.Value{}, &RatesUnavailableError{Base: base, Dest: dest, Date: dateLabel(date)}
	}

	return rate, nil
}

func mul(rate, amount model.Value) (model.Value, error) {
	if rate.IsDecimal() != amount.IsDecimal() {
		return model.Value{}, ErrDecimalFloatMismatch
	}
	if rate.IsDecimal() {
		return model.DecimalValue(rate.Decimal().Mul(amount.Decimal())), nil
	}
	return model.FloatValue(rate.Float64() * amount.Float64()), nil
}

func dateLabel(date time.Time) string {
	if date.IsZero() {
		return "latest"
	}
	return utils.FormatDate(date)
}
