package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"forex-rate-service/internal/domain/model"
	"forex-rate-service/pkg/logger"
)

// HTTPTransport dispatches provider requests over net/http. Timeout policy
// lives here, not in the rate service.
type HTTPTransport struct {
	client *http.Client
	log    *logger.Logger
}

func NewHTTPTransport(timeout time.Duration, log *logger.Logger) *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (t *HTTPTransport) Get(ctx context.Context, req model.ProviderRequest) (*model.ProviderResponse, error) {
	u := req.URL
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	t.log.Debug("provider response", "url", req.URL, "status", resp.StatusCode)

	return &model.ProviderResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
