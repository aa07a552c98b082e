package service

import (
	"bytes"
	"encoding/json"

	"forex-rate-service/internal/domain/model"

	"github.com/shopspring/decimal"
)

// decodeRates extracts the "rates" object from a provider response body. An
// absent or malformed rates field yields an empty map, not an error; whether
// an empty result is a failure is decided at the call site.
//
// In decimal mode numbers are re-parsed from their JSON text so no binary
// rounding error enters the values.
func decodeRates(body []byte, mode model.PrecisionMode) model.RateMap {
	if mode == model.Decimal {
		return decodeDecimalRates(body)
	}
	return decodeFloatRates(body)
}

func decodeFloatRates(body []byte) model.RateMap {
	var payload struct {
		Rates map[model.Currency]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.RateMap{}
	}

	rates := make(model.RateMap, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[code] = model.FloatValue(rate)
	}
	return rates
}

func decodeDecimalRates(body []byte) model.RateMap {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload struct {
		Rates map[model.Currency]json.Number `json:"rates"`
	}
	if err := dec.Decode(&payload); err != nil {
		return model.RateMap{}
	}

	rates := make(model.RateMap, len(payload.Rates))
	for code, num := range payload.Rates {
		d, err := decimal.NewFromString(num.String())
		if err != nil {
			continue
		}
		rates[code] = model.DecimalValue(d)
	}
	return rates
}

// decodeRate is a decode followed by a single-key lookup. The boolean
// distinguishes "rate absent" from a legitimate zero value.
func decodeRate(body []byte, dest model.Currency, mode model.PrecisionMode) (model.Value, bool) {
	rate, ok := decodeRates(body, mode)[dest]
	return rate, ok
}
