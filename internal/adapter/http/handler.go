package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"forex-rate-service/internal/domain/model"
	"forex-rate-service/internal/domain/ports"
	"forex-rate-service/internal/metrics"
	"forex-rate-service/internal/provider"
	"forex-rate-service/internal/service"
	"forex-rate-service/pkg/currency"
	"forex-rate-service/pkg/logger"
	"forex-rate-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type Handler struct {
	service      ports.RateService
	forceDecimal bool
	log          *logger.Logger
	metrics      *metrics.Metrics
}

func NewHandler(service ports.RateService, forceDecimal bool, log *logger.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service:      service,
		forceDecimal: forceDecimal,
		log:          log,
		metrics:      metrics,
	}
}

func parseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}
	return utils.ParseDate(dateStr)
}

func (h *Handler) GetRatesHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.RateRequestsTotal.Inc()

	base := model.Currency(r.URL.Query().Get("base"))
	if base == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameter: base")
		return
	}

	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
		return
	}

	rates, err := h.service.GetRates(r.Context(), base, date)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, map[string]interface{}{
		"base":  base,
		"date":  dateOrLatest(date),
		"rates": rates,
	})
}

func (h *Handler) GetRateHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.RateRequestsTotal.Inc()

	base := model.Currency(r.URL.Query().Get("base"))
	symbol := model.Currency(r.URL.Query().Get("symbol"))
	if base == "" || symbol == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameters: base and symbol")
		return
	}

	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
		return
	}

	rate, err := h.service.GetRate(r.Context(), base, symbol, date)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, map[string]interface{}{
		"base":   base,
		"symbol": symbol,
		"date":   dateOrLatest(date),
		"rate":   rate,
	})
}

func (h *Handler) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.ConversionRequestsTotal.Inc()

	from := model.Currency(r.URL.Query().Get("from"))
	to := model.Currency(r.URL.Query().Get("to"))
	if from == "" || to == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameters: from and to")
		return
	}

	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
		return
	}

	amountStr := r.URL.Query().Get("amount")
	if amountStr == "" {
		amountStr = "1"
	}

	// Per-call escalation to decimal mirrors the client's own escalation
	// rule: a decimal amount makes the whole conversion decimal.
	useDecimal := h.forceDecimal || r.URL.Query().Get("precision") == model.Decimal.String()

	var amount model.Value
	if useDecimal {
		d, err := decimal.NewFromString(amountStr)
		if err != nil {
			h.sendErrorResponse(w, http.StatusBadRequest, "invalid amount parameter")
			return
		}
		amount = model.DecimalValue(d)
	} else {
		f, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			h.sendErrorResponse(w, http.StatusBadRequest, "invalid amount parameter")
			return
		}
		amount = model.FloatValue(f)
	}

	converted, err := h.service.Convert(r.Context(), from, to, amount, date)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, map[string]interface{}{
		"from":      from,
		"to":        to,
		"date":      dateOrLatest(date),
		"amount":    amount,
		"converted": converted,
	})
}

func (h *Handler) GetCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.CurrencyLookupsTotal.Inc()

	code := chi.URLParam(r, "code")

	info, ok := currency.Lookup(code)
	if !ok {
		h.sendErrorResponse(w, http.StatusNotFound, "unknown currency code")
		return
	}

	h.sendSuccessResponse(w, info)
}

func (h *Handler) sendSuccessResponse(w http.ResponseWriter, data interface{}) {
	response := Response{
		Success: true,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := Response{
		Success: false,
		Error:   message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode error response", "error", err)
	}
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	statusCode := http.StatusServiceUnavailable
	errorMessage := "upstream request failed"

	switch {
	case errors.Is(err, provider.ErrUnknownProvider), errors.Is(err, provider.ErrMissingAppID):
		statusCode = http.StatusInternalServerError
		errorMessage = "rates provider is not configured"
	case errors.Is(err, service.ErrRatesUnavailable):
		statusCode = http.StatusNotFound
		errorMessage = err.Error()
	case errors.Is(err, service.ErrDecimalFloatMismatch):
		statusCode = http.StatusBadRequest
		errorMessage = "amount precision does not match the conversion mode"
	}

	h.log.Error("Service error", "error", err, "status_code", statusCode)
	h.sendErrorResponse(w, statusCode, errorMessage)
}

func dateOrLatest(date time.Time) string {
	if date.IsZero() {
		return "latest"
	}
	return utils.FormatDate(date)
}
