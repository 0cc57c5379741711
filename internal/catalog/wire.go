package catalog

import (
	"go.uber.org/zap"

	"backoffice/internal/infrastructure/metrics"
	"backoffice/internal/infrastructure/upstream"
)

// Module bundles the two catalog controllers.
type Module struct {
	Brands     *Controller
	Categories *Controller
}

func NewModule(up *upstream.Client, m *metrics.Metrics, logger *zap.Logger) *Module {
	return &Module{
		Brands:     NewController(NewClient(up, Brands, m), "brands", logger),
		Categories: NewController(NewClient(up, Categories, m), "categories", logger),
	}
}
