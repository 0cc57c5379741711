package user

import (
	"go.uber.org/zap"

	"backoffice/internal/infrastructure/metrics"
	"backoffice/internal/infrastructure/upstream"
)

func NewModule(up *upstream.Client, m *metrics.Metrics, logger *zap.Logger) *Controller {
	return NewController(NewGateway(up, m), logger)
}
