package order

import (
	"go.uber.org/zap"

	"backoffice/internal/infrastructure/metrics"
	"backoffice/internal/infrastructure/upstream"
	"backoffice/internal/order/controller"
	"backoffice/internal/order/gateway"
	"backoffice/internal/order/service"
	"backoffice/internal/order/store"
	"backoffice/internal/order/usecase"
)

// Module is the assembled order feature: the HTTP controller plus the
// service, which main uses for the startup snapshot fetch.
type Module struct {
	Controller *controller.Controller
	Service    *service.OrderService
}

func NewModule(up *upstream.Client, m *metrics.Metrics, logger *zap.Logger) *Module {
	gw := gateway.NewClient(up, m)
	st := store.New()
	svc := service.NewOrderService(gw, st, logger)
	uc := usecase.NewManageOrdersUseCase(gw, svc, logger)

	return &Module{
		Controller: controller.NewController(svc, uc, logger),
		Service:    svc,
	}
}
