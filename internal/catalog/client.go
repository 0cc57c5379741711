// Package catalog administers brands and categories. The commerce API
// models both identically, so a single resource client covers each,
// parameterized by path.
package catalog

import (
	"context"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/infrastructure/metrics"
	"backoffice/internal/infrastructure/upstream"
)

type Resource struct {
	path      string
	listField string
	operation string
}

var (
	Brands     = Resource{path: "/api/brand", listField: "brands", operation: "brand"}
	Categories = Resource{path: "/api/category", listField: "categories", operation: "category"}
)

type Client struct {
	upstream *upstream.Client
	resource Resource
	metrics  *metrics.Metrics
}

func NewClient(up *upstream.Client, resource Resource, m *metrics.Metrics) *Client {
	return &Client{upstream: up, resource: resource, metrics: m}
}

type entryPayload struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Image       string `json:"image"`
}

func (p entryPayload) toDomain() domain.CatalogEntry {
	return domain.CatalogEntry{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Website:     p.Website,
		Image:       p.Image,
	}
}

// EntryInput is what the admin can set on a brand or category. Image
// upload is handled by a separate service and not proxied here.
type EntryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

type listPayload struct {
	Success    bool           `json:"success"`
	Brands     []entryPayload `json:"brands"`
	Categories []entryPayload `json:"categories"`
	Message    string         `json:"message"`
}

func (p listPayload) entries(r Resource) []entryPayload {
	if r.listField == "brands" {
		return p.Brands
	}
	return p.Categories
}

// List retrieves every entry of the resource.
func (c *Client) List(ctx context.Context) ([]domain.CatalogEntry, error) {
	var resp listPayload
	err := c.observe(c.resource.operation+"_list", func() error {
		if err := c.upstream.Get(ctx, c.resource.path, &resp); err != nil {
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

	payloads := resp.entries(c.resource)
	entries := make([]domain.CatalogEntry, 0, len(payloads))
	for _, p := range payloads {
		entries = append(entries, p.toDomain())
	}
	return entries, nil
}

// Create adds a new entry.
func (c *Client) Create(ctx context.Context, input EntryInput) error {
	return c.observe(c.resource.operation+"_create", func() error {
		var resp statusPayload
		if err := c.upstream.PostJSON(ctx, c.resource.path, input, &resp); err != nil {
			return err
		}
		if !resp.Success {
			return errors.NewGatewayError(resp.Message, nil)
		}
		return nil
	})
}

// Update edits an existing entry.
func (c *Client) Update(ctx context.Context, id string, input EntryInput) error {
	return c.observe(c.resource.operation+"_update", func() error {
		var resp statusPayload
		if err := c.upstream.PutJSON(ctx, c.resource.path+"/"+id, input, &resp); err != nil {
			return err
		}
		if !resp.Success {
			return errors.NewGatewayError(resp.Message, nil)
		}
		return nil
	})
}

// Delete removes an entry.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.observe(c.resource.operation+"_delete", func() error {
		var resp statusPayload
		if err := c.upstream.Delete(ctx, c.resource.path+"/"+id, &resp); err != nil {
			return err
		}
		if !resp.Success {
			return errors.NewGatewayError(resp.Message, nil)
		}
		return nil
	})
}

type statusPayload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) observe(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	if c.metrics != nil {
		c.metrics.ObserveUpstream(operation, time.Since(start).Seconds(), err)
	}
	return err
}
