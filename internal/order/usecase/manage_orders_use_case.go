package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"backoffice/internal/domain"
	apperrors "backoffice/internal/errors"
)

type MutationGateway interface {
	UpdateOrder(ctx context.Context, id string, status domain.Status, paymentStatus domain.PaymentStatus) error
	DeleteOrder(ctx context.Context, id string) error
}

type Snapshot interface {
	Refresh(ctx context.Context) error
	Get(id string) (domain.Order, bool)
}

// ManageOrdersUseCase drives the edit and delete flows: validate first,
// persist through the gateway, then reload the snapshot from the API
// rather than patching locally, so the view always matches the server.
type ManageOrdersUseCase struct {
	gateway  MutationGateway
	snapshot Snapshot
	logger   *zap.Logger
}

func NewManageOrdersUseCase(gateway MutationGateway, snapshot Snapshot, logger *zap.Logger) *ManageOrdersUseCase {
	return &ManageOrdersUseCase{
		gateway:  gateway,
		snapshot: snapshot,
		logger:   logger,
	}
}

// UpdateStatus changes an order's status and, when paymentStatus is
// non-empty, its payment status. Values outside the enumerations are
// rejected before any network call. An id missing from the snapshot means
// the view is stale; the caller gets a NotFoundError and should refresh.
func (uc *ManageOrdersUseCase) UpdateStatus(ctx context.Context, id string, status domain.Status, paymentStatus domain.PaymentStatus) error {
	current, ok := uc.snapshot.Get(id)
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("order %s not found, refresh needed", id))
	}

	if err := domain.ValidateTransition(current.Status, status); err != nil {
		return err
	}
	if paymentStatus != "" {
		if err := domain.ValidatePaymentTransition(current.PaymentStatus, paymentStatus); err != nil {
			return err
		}
	}

	if err := uc.gateway.UpdateOrder(ctx, id, status, paymentStatus); err != nil {
		uc.logger.Warn("order update rejected by upstream",
			zap.String("orderId", id), zap.Error(err))
		return err
	}

	uc.logger.Info("order updated",
		zap.String("orderId", id),
		zap.String("status", status.String()),
		zap.String("paymentStatus", paymentStatus.String()))

	return uc.reload(ctx, id)
}

// Delete removes an order and reloads the snapshot. A gateway failure
// leaves the snapshot exactly as it was.
func (uc *ManageOrdersUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.gateway.DeleteOrder(ctx, id); err != nil {
		uc.logger.Warn("order delete rejected by upstream",
			zap.String("orderId", id), zap.Error(err))
		return err
	}

	uc.logger.Info("order deleted", zap.String("orderId", id))

	return uc.reload(ctx, id)
}

func (uc *ManageOrdersUseCase) reload(ctx context.Context, id string) error {
	if err := uc.snapshot.Refresh(ctx); err != nil {
		// The mutation itself succeeded; the snapshot is just behind.
		uc.logger.Warn("snapshot reload after mutation failed",
			zap.String("orderId", id), zap.Error(err))
		return err
	}
	return nil
}
