package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"backoffice/internal/domain"
	apperrors "backoffice/internal/errors"
)

type ResourceClient interface {
	List(ctx context.Context) ([]domain.CatalogEntry, error)
	Create(ctx context.Context, input EntryInput) error
	Update(ctx context.Context, id string, input EntryInput) error
	Delete(ctx context.Context, id string) error
}

// Controller proxies one catalog resource (brands or categories).
type Controller struct {
	client ResourceClient
	name   string
	logger *zap.Logger
}

func NewController(client ResourceClient, name string, logger *zap.Logger) *Controller {
	return &Controller{client: client, name: name, logger: logger}
}

type entryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Image       string `json:"image,omitempty"`
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	entries, err := c.client.List(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	dtos := make([]entryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, entryDTO{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Website:     e.Website,
			Image:       e.Image,
		})
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{c.name: dtos, "total": len(dtos)})
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	input, ok := c.decodeInput(w, traceID, r)
	if !ok {
		return
	}

	if err := c.client.Create(r.Context(), input); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	logger.Info("catalog entry created", zap.String("resource", c.name), zap.String("name", input.Name))
	c.writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id := chi.URLParam(r, "entryID")
	input, ok := c.decodeInput(w, traceID, r)
	if !ok {
		return
	}

	if err := c.client.Update(r.Context(), id, input); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id := chi.URLParam(r, "entryID")
	if err := c.client.Delete(r.Context(), id); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (c *Controller) decodeInput(w http.ResponseWriter, traceID string, r *http.Request) (EntryInput, bool) {
	var input EntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"traceId": traceID,
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return EntryInput{}, false
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"traceId": traceID,
			"error":   "VALIDATION_ERROR",
			"message": "name is required",
		})
		return EntryInput{}, false
	}

	return input, true
}

func (c *Controller) handleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ge, ok := apperrors.IsGatewayError(err); ok {
		logger.Warn("commerce API call failed", zap.Error(err))
		c.writeJSON(w, http.StatusBadGateway, map[string]string{
			"traceId": traceID,
			"error":   "GATEWAY_ERROR",
			"message": ge.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"traceId": traceID,
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
