package user

import (
	"context"
	"encoding/json"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/infrastructure/metrics"
	"backoffice/internal/infrastructure/upstream"
)

const (
	listPath    = "/api/user/users"
	removePath  = "/api/user/remove"
	profilePath = "/api/user/profile"
)

// Gateway is the client for the commerce API's user administration
// endpoints.
type Gateway struct {
	upstream *upstream.Client
	metrics  *metrics.Metrics
}

func NewGateway(up *upstream.Client, m *metrics.Metrics) *Gateway {
	return &Gateway{upstream: up, metrics: m}
}

type userPayload struct {
	ID        string  `json:"_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	CreatedAt apiTime `json:"createdAt"`
}

// apiTime tolerates both epoch milliseconds and RFC3339 strings, and an
// absent field.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	var millis int64
	if err := json.Unmarshal(data, &millis); err == nil {
		t.Time = time.UnixMilli(millis).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}

func (p userPayload) toDomain() domain.User {
	role := p.Role
	if role == "" {
		role = domain.RoleUser
	}
	return domain.User{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      role,
		CreatedAt: p.CreatedAt.Time,
	}
}

// FetchUsers retrieves every account.
func (g *Gateway) FetchUsers(ctx context.Context) ([]domain.User, error) {
	var resp struct {
		Success bool          `json:"success"`
		Users   []userPayload `json:"users"`
		Message string        `json:"message"`
	}

	err := g.observe(ctx, "fetch_users", func() error {
		if err := g.upstream.Get(ctx, listPath, &resp); err != nil {
			return err
		}
		if !resp.Success {
			return errors.NewGatewayError(resp.Message, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(resp.Users))
	for _, p := range resp.Users {
		users = append(users, p.toDomain())
	}
	return users, nil
}

// RemoveUser deletes an account.
func (g *Gateway) RemoveUser(ctx context.Context, id string) error {
	return g.observe(ctx, "remove_user", func() error {
		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		body := map[string]string{"userId": id}
		if err := g.upstream.PostJSON(ctx, removePath, body, &resp); err != nil {
			return err
		}
		if !resp.Success {
			return errors.NewGatewayError(resp.Message, nil)
		}
		return nil
	})
}

// FetchProfile returns the account the configured credential belongs to.
func (g *Gateway) FetchProfile(ctx context.Context) (domain.User, error) {
	var resp struct {
		Success bool        `json:"success"`
		User    userPayload `json:"user"`
		Message string      `json:"message"`
	}

	err := g.observe(ctx, "fetch_profile", func() error {
		if err := g.upstream.Get(ctx, profilePath, &resp); err != nil {
			return err
		}
		if !resp.Success {
			return errors.NewGatewayError(resp.Message, nil)
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return resp.User.toDomain(), nil
}

func (g *Gateway) observe(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	if g.metrics != nil {
		g.metrics.ObserveUpstream(operation, time.Since(start).Seconds(), err)
	}
	return err
}
