package service

import (
	"errors"
	"fmt"

	"forex-rate-service/internal/domain/model"
)

var (
	// ErrRatesUnavailable matches any *RatesUnavailableError via errors.Is.
	ErrRatesUnavailable = errors.New("currency rates source not available")

	// ErrDecimalFloatMismatch signals caller misuse: a conversion mixed a
	// binary-float amount into a decimal-mode call chain or vice versa.
	ErrDecimalFloatMismatch = errors.New("convert requires a decimal amount when decimal mode is in effect")
)

// RatesUnavailableError reports that the upstream returned a non-success
// status or that the requested pair/date yielded no rate. It carries the
// request coordinates for diagnostics.
type RatesUnavailableError struct {
	Base model.Currency
	Dest model.Currency
	Date string
}

func (e *RatesUnavailableError) Error() string {
	if e.Dest == "" {
		return fmt.Sprintf("currency rates for %s not available for date %s", e.Base, e.Date)
	}
	return fmt.Sprintf("currency rate %s => %s not available for date %s", e.Base, e.Dest, e.Date)
}

func (e *RatesUnavailableError) Is(target error) bool {
	return target == ErrRatesUnavailable
}
