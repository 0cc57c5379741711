package service

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"backoffice/internal/domain"
	"backoffice/internal/order/aggregate"
	"backoffice/internal/order/query"
	"backoffice/internal/order/store"
)

type Gateway interface {
	FetchOrders(ctx context.Context) ([]domain.Order, error)
}

// OrderService owns the order snapshot and reconciles it against the
// commerce API. Every consumer (list view, stats endpoint) reads the same
// snapshot instead of fetching independently.
type OrderService struct {
	gateway Gateway
	store   *store.Store
	logger  *zap.Logger

	issued  uint64
	mu      sync.Mutex
	applied uint64
}

func NewOrderService(gateway Gateway, st *store.Store, logger *zap.Logger) *OrderService {
	return &OrderService{
		gateway: gateway,
		store:   st,
		logger:  logger,
	}
}

// Refresh replaces the snapshot with the API's current collection. Each
// refresh carries a monotonic sequence token; a response that resolves
// after a newer refresh has already been applied is discarded, so a slow
// early fetch can never overwrite a later one. On failure the snapshot is
// left untouched.
func (s *OrderService) Refresh(ctx context.Context) error {
	seq := atomic.AddUint64(&s.issued, 1)

	orders, err := s.gateway.FetchOrders(ctx)
	if err != nil {
		s.logger.Warn("order refresh failed", zap.Uint64("seq", seq), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < atomic.LoadUint64(&s.issued) || seq <= s.applied {
		s.logger.Debug("discarding stale order refresh",
			zap.Uint64("seq", seq), zap.Uint64("applied", s.applied))
		return nil
	}
	s.store.Load(orders)
	s.applied = seq

	s.logger.Info("order snapshot refreshed",
		zap.Uint64("seq", seq), zap.Int("orders", len(orders)))
	return nil
}

// Orders returns the full snapshot.
func (s *OrderService) Orders() []domain.Order {
	return s.store.Orders()
}

// Get looks up one order in the snapshot.
func (s *OrderService) Get(id string) (domain.Order, bool) {
	return s.store.Get(id)
}

// Search applies the admin's active query to the snapshot.
func (s *OrderService) Search(q query.Query) []domain.Order {
	return query.Apply(s.store.Orders(), q)
}

// Stats summarizes the full snapshot, independent of any active filter.
func (s *OrderService) Stats() aggregate.Summary {
	return aggregate.Summarize(s.store.Orders())
}
