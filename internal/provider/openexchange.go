package provider

import (
	"net/url"
	"time"

	"forex-rate-service/internal/domain/model"
)

// NameOpenExchangeRates is the registry key for the credentialed provider.
const NameOpenExchangeRates = "openexchangerates"

// OpenExchangeRates builds requests for the openexchangerates.org API.
// Historical snapshots live under a separate path segment:
//
//	<base>/latest.json
//	<base>/historical/2006-01-02.json
type OpenExchangeRates struct {
	baseURL string
	appID   string
}

func NewOpenExchangeRates(baseURL, appID string) *OpenExchangeRates {
	return &OpenExchangeRates{
		baseURL: baseURL,
		appID:   appID,
	}
}

func (p *OpenExchangeRates) Name() string {
	return NameOpenExchangeRates
}

func (p *OpenExchangeRates) BuildRequest(base model.Currency, date time.Time, extra map[string]string) (model.ProviderRequest, error) {
	if p.appID == "" {
		return model.ProviderRequest{}, ErrMissingAppID
	}

	u := p.baseURL
	if !date.IsZero() {
		u += "historical/"
	}
	u += dateSegment(date) + ".json"

	q := url.Values{}
	q.Set("app_id", p.appID)
	q.Set("base", base.String())
	for k, v := range extra {
		q.Set(k, v)
	}

	return model.ProviderRequest{URL: u, Query: q}, nil
}
