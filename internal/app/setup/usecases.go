package setup

import (
	publisher "github.com/LavaJover/shvark-order-intake/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-order-intake/internal/usecase"
)

type UseCases struct {
	OrderUsecase     *usecase.DefaultOrderUsecase
	DashboardUsecase *usecase.DashboardUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	orderUsecase := usecase.NewDefaultOrderUsecase(
		deps.Repositories.OrderRepo,
		publisher.NewOrderEventPublisher(deps.OrderPublisher),
		deps.Metrics,
		deps.Logger,
	)

	return &UseCases{
		OrderUsecase:     orderUsecase,
		DashboardUsecase: usecase.NewDashboardUsecase(orderUsecase, deps.Config.Dashboard.PageSize, deps.Logger),
	}
}
