// Package gateway is the client for the commerce API's order endpoints.
// The API is the source of truth: every mutation here is followed by a
// full refetch by the caller, never a local patch.
package gateway

import (
	"context"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/errors"
	"backoffice/internal/infrastructure/metrics"
	"backoffice/internal/infrastructure/upstream"
)

const (
	listPath   = "/api/order/list"
	updatePath = "/api/order/update-status"
	deletePath = "/api/order/delete"
)

type Client struct {
	upstream *upstream.Client
	metrics  *metrics.Metrics
}

func NewClient(up *upstream.Client, m *metrics.Metrics) *Client {
	return &Client{upstream: up, metrics: m}
}

// FetchOrders retrieves the full order collection.
func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var resp listResponse
	err := c.call(ctx, "fetch_orders", func() error {
		if err := c.upstream.Get(ctx, listPath, &resp); err != nil {
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

	orders := make([]domain.Order, 0, len(resp.Orders))
	for _, p := range resp.Orders {
		orders = append(orders, p.toDomain())
	}
	return orders, nil
}

// UpdateOrder persists a status change, optionally with a payment status.
// paymentStatus may be empty, in which case only the status is sent,
// matching the API contract.
func (c *Client) UpdateOrder(ctx context.Context, id string, status domain.Status, paymentStatus domain.PaymentStatus) error {
	body := updateRequest{OrderID: id, Status: string(status)}
	if paymentStatus != "" {
		ps := string(paymentStatus)
		body.PaymentStatus = &ps
	}

	return c.call(ctx, "update_order", func() error {
		var resp statusResponse
		if err := c.upstream.PostJSON(ctx, updatePath, body, &resp); err != nil {
			return err
		}
		if !resp.Success {
			return errors.NewGatewayError(resp.Message, nil)
		}
		return nil
	})
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.call(ctx, "delete_order", func() error {
		var resp statusResponse
		if err := c.upstream.PostJSON(ctx, deletePath, deleteRequest{OrderID: id}, &resp); err != nil {
			return err
		}
		if !resp.Success {
			return errors.NewGatewayError(resp.Message, nil)
		}
		return nil
	})
}

func (c *Client) call(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	if c.metrics != nil {
		c.metrics.ObserveUpstream(operation, time.Since(start).Seconds(), err)
	}
	return err
}
