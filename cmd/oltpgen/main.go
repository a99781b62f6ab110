package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/config"
	blobinfra "github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/infra/blob"
	logs "github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/infra/log"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/usecase"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/usecase/impl"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Shutdowner

	Logger    *slog.Logger
	Generator usecase.GeneratorUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		// Tag every log line of the run with a unique id.
		fx.Decorate(func(logger *slog.Logger) *slog.Logger {
			return logger.With(slog.String("run_id", uuid.NewString()))
		}),
		fx.Invoke(
			runGenerator,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		blobinfra.NewBucket,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			blobinfra.NewStateRepository,
			blobinfra.NewBatchSink,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewGeneratorService,
		),
	)
}

// runGenerator executes one generation run and shuts the app down with a
// non-zero exit code on any failure, so schedulers never see a failed run
// as success.
func runGenerator(ctx context.Context, params runParams) {
	go func() {
		started := time.Now()

		summary, err := params.Generator.Run(ctx)
		if err != nil {
			params.Logger.Error("generation run failed", slog.Any("error", err))
			if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
				params.Logger.Error("failed to shutdown gracefully", slog.Any("error", shutdownErr))
				os.Exit(1)
			}

			return
		}

		params.Logger.Info("generation run succeeded",
			slog.Int("batches", summary.Batches),
			slog.Int("customers", summary.Customers),
			slog.Int("orders", summary.Orders),
			slog.Int("payments", summary.Payments),
			slog.Int("shipments", summary.Shipments),
			slog.Int64("next_order_id", summary.NextOrderID),
			slog.String("took", util.FormatDuration(time.Since(started))),
		)

		if err := params.Shutdown(); err != nil {
			params.Logger.Error("failed to shutdown gracefully", slog.Any("error", err))
			os.Exit(1)
		}
	}()
}
