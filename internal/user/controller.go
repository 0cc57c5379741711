package user

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
)

type AdminGateway interface {
	FetchUsers(ctx context.Context) ([]domain.User, error)
	RemoveUser(ctx context.Context, id string) error
	FetchProfile(ctx context.Context) (domain.User, error)
}

type Controller struct {
	gateway AdminGateway
	logger  *zap.Logger
}

func NewController(gateway AdminGateway, logger *zap.Logger) *Controller {
	return &Controller{gateway: gateway, logger: logger}
}

type userDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type listUsersResponse struct {
	Users []userDTO `json:"users"`
	Total int       `json:"total"`
}

// HandleList fetches all users and applies the term/role filter before
// responding. User counts are small enough that refetching per request is
// simpler than keeping a second snapshot in sync.
func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	users, err := c.gateway.FetchUsers(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	params := r.URL.Query()
	role := params.Get("role")
	if role == "" {
		role = RoleAll
	}
	filtered := Filter(users, params.Get("term"), role)

	dtos := make([]userDTO, 0, len(filtered))
	for _, u := range filtered {
		dtos = append(dtos, toDTO(u))
	}

	c.writeJSON(w, http.StatusOK, listUsersResponse{Users: dtos, Total: len(users)})
}

// HandleRemove deletes one user account.
func (c *Controller) HandleRemove(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "userID is required",
		})
		return
	}

	if err := c.gateway.RemoveUser(r.Context(), userID); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	logger.Info("user removed", zap.String("userId", userID))
	c.writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// HandleProfile returns the admin account behind the configured token.
func (c *Controller) HandleProfile(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	profile, err := c.gateway.FetchProfile(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTO(profile))
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

func toDTO(u domain.User) userDTO {
	dto := userDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
	if !u.CreatedAt.IsZero() {
		dto.CreatedAt = u.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
