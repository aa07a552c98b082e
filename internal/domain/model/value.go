package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PrecisionMode selects the numeric representation for rates and amounts.
type PrecisionMode int

const (
	// Float uses binary floating-point arithmetic.
	Float PrecisionMode = iota
	// Decimal uses arbitrary-precision decimal arithmetic, avoiding binary
	// rounding error in financial figures.
	Decimal
)

func (m PrecisionMode) String() string {
	if m == Decimal {
		return "decimal"
	}
	return "float"
}

// Value is a numeric value tagged with its precision mode. The tag makes the
// representation an explicit input to every operation instead of something
// inferred from a runtime type.
type Value struct {
	mode PrecisionMode
	f    float64
	d    decimal.Decimal
}

func FloatValue(v float64) Value {
	return Value{mode: Float, f: v}
}

func DecimalValue(d decimal.Decimal) Value {
	return Value{mode: Decimal, d: d}
}

// One returns exactly 1 in the given precision mode.
func One(mode PrecisionMode) Value {
	if mode == Decimal {
		return DecimalValue(decimal.NewFromInt(1))
	}
	return FloatValue(1)
}

func (v Value) Mode() PrecisionMode {
	return v.mode
}

func (v Value) IsDecimal() bool {
	return v.mode == Decimal
}

// Float64 returns the value as a float64, rounding a decimal value if needed.
func (v Value) Float64() float64 {
	if v.mode == Decimal {
		return v.d.InexactFloat64()
	}
	return v.f
}

// Decimal returns the value as a decimal, converting a float value if needed.
func (v Value) Decimal() decimal.Decimal {
	if v.mode == Float {
		return decimal.NewFromFloat(v.f)
	}
	return v.d
}

// In re-expresses the value in the given precision mode.
func (v Value) In(mode PrecisionMode) Value {
	if v.mode == mode {
		return v
	}
	if mode == Decimal {
		return DecimalValue(v.Decimal())
	}
	return FloatValue(v.Float64())
}

func (v Value) String() string {
	if v.mode == Decimal {
		return v.d.String()
	}
	b, _ := json.Marshal(v.f)
	return string(b)
}

// MarshalJSON renders the value as a bare JSON number. Decimal values keep
// their full precision.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.mode == Decimal {
		return []byte(v.d.String()), nil
	}
	return json.Marshal(v.f)
}

// RateMap holds all rates relative to one base currency at one date.
type RateMap map[Currency]Value
