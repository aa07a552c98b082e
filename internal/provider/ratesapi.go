package provider

import (
	"net/url"
	"time"

	"forex-rate-service/internal/domain/model"
)

// NameRatesAPI is the registry key for the public, credential-free provider.
const NameRatesAPI = "ratesapi"

// RatesAPI builds requests for a ratesapi.io style public endpoint. The date
// segment sits directly on the path:
//
//	<base>/latest
//	<base>/2006-01-02
type RatesAPI struct {
	baseURL string
}

func NewRatesAPI(baseURL string) *RatesAPI {
	return &RatesAPI{baseURL: baseURL}
}

func (p *RatesAPI) Name() string {
	return NameRatesAPI
}

func (p *RatesAPI) BuildRequest(base model.Currency, date time.Time, extra map[string]string) (model.ProviderRequest, error) {
	q := url.Values{}
	q.Set("base", base.String())
	q.Set("rtype", "fpy")
	for k, v := range extra {
		q.Set(k, v)
	}

	return model.ProviderRequest{
		URL:   p.baseURL + dateSegment(date),
		Query: q,
	}, nil
}
