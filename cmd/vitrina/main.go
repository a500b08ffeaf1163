package main

import (
	"context"
	"log/slog"
	"os"

	"vitrina/config"
	"vitrina/internal/delivery"
	"vitrina/internal/delivery/http"
	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/router/handler"
	"vitrina/internal/delivery/scheduler"
	"vitrina/internal/infra/auth"
	logs "vitrina/internal/infra/log"
	"vitrina/internal/infra/payment"
	"vitrina/internal/infra/persistence/postgres"
	"vitrina/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCityRepository,
			postgres.NewBusinessRepository,
			postgres.NewProductRepository,
			postgres.NewServiceRepository,
			postgres.NewStoryRepository,
			postgres.NewReviewRepository,
			postgres.NewFavoriteRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewPaymentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			payment.NewMercadoPagoGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCityService,
			impl.NewBusinessService,
			impl.NewProductService,
			impl.NewServiceService,
			impl.NewStoryService,
			impl.NewReviewService,
			impl.NewFavoriteService,
			impl.NewSubscriptionService,
			impl.NewSearchService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCityHandler,
			handler.NewBusinessHandler,
			handler.NewProductHandler,
			handler.NewServiceHandler,
			handler.NewStoryHandler,
			handler.NewReviewHandler,
			handler.NewFavoriteHandler,
			handler.NewSubscriptionHandler,
			handler.NewSearchHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
