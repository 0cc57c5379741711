package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"backoffice/internal/domain"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/order/aggregate"
	"backoffice/internal/order/query"
)

type OrderReader interface {
	Search(q query.Query) []domain.Order
	Stats() aggregate.Summary
	Refresh(ctx context.Context) error
}

type OrderManager interface {
	UpdateStatus(ctx context.Context, id string, status domain.Status, paymentStatus domain.PaymentStatus) error
	Delete(ctx context.Context, id string) error
}

type Controller struct {
	reader  OrderReader
	manager OrderManager
	logger  *zap.Logger
}

func NewController(reader OrderReader, manager OrderManager, logger *zap.Logger) *Controller {
	return &Controller{
		reader:  reader,
		manager: manager,
		logger:  logger,
	}
}

type orderDTO struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Date          string  `json:"date"`
	ItemCount     int     `json:"itemCount"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod"`
}

type listOrdersResponse struct {
	Orders []orderDTO `json:"orders"`
	Total  int        `json:"total"`
}

type statsResponse struct {
	TotalOrders int            `json:"totalOrders"`
	ByStatus    map[string]int `json:"byStatus"`
	Revenue     string         `json:"revenue"`
}

type updateStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

// HandleList serves the filtered/sorted order view. Filter values outside
// the enumerations are not an error: they simply match nothing, same as
// the dashboard selects.
func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := query.Query{
		Term:      params.Get("term"),
		Status:    paramOr(params.Get("status"), query.FilterAll),
		Payment:   paramOr(params.Get("payment"), query.FilterAll),
		SortBy:    query.SortKey(paramOr(params.Get("sortBy"), string(query.SortByDate))),
		SortOrder: query.SortOrder(paramOr(params.Get("sortOrder"), string(query.Desc))),
	}

	orders := c.reader.Search(q)

	dtos := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, toDTO(o))
	}

	c.writeJSON(w, http.StatusOK, listOrdersResponse{Orders: dtos, Total: len(dtos)})
}

// HandleStats serves the dashboard totals, always from the full snapshot.
func (c *Controller) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := c.reader.Stats()

	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[status.String()] = count
	}

	c.writeJSON(w, http.StatusOK, statsResponse{
		TotalOrders: stats.TotalOrders,
		ByStatus:    byStatus,
		Revenue:     stats.FormattedRevenue(),
	})
}

// HandleRefresh forces a refetch from the commerce API.
func (c *Controller) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.reader.Refresh(r.Context()); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}

// HandleUpdateStatus changes an order's status / payment status.
func (c *Controller) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		c.writeValidationError(w, traceID, "missing orderID", apperrors.ValidationDetail{
			Field:   "orderID",
			Message: "orderID is required",
		})
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	err := c.manager.UpdateStatus(r.Context(), orderID,
		domain.Status(req.Status), domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// HandleDelete removes an order.
func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		c.writeValidationError(w, traceID, "missing orderID", apperrors.ValidationDetail{
			Field:   "orderID",
			Message: "orderID is required",
		})
		return
	}

	if err := c.manager.Delete(r.Context(), orderID); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (c *Controller) handleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{
			TraceID: traceID,
			Error:   "NOT_FOUND",
			Message: nfe.Message,
		})
		return
	}

	if ge, ok := apperrors.IsGatewayError(err); ok {
		logger.Warn("commerce API call failed", zap.Error(err))
		c.writeJSON(w, http.StatusBadGateway, errorResponse{
			TraceID: traceID,
			Error:   "GATEWAY_ERROR",
			Message: ge.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{
		TraceID: traceID,
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}

type errorResponse struct {
	TraceID string `json:"traceId"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}

func toDTO(o domain.Order) orderDTO {
	return orderDTO{
		ID:            o.ID,
		CustomerName:  o.CustomerName(),
		CustomerEmail: o.CustomerEmail(),
		Date:          o.Date.UTC().Format(time.RFC3339),
		ItemCount:     o.ItemCount(),
		Amount:        o.Amount,
		Status:        o.Status.String(),
		PaymentStatus: o.PaymentStatus.String(),
		PaymentMethod: o.PaymentMethod,
	}
}

func paramOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
