//go:build wireinject
// +build wireinject

package di

import (
	"aquad/internal"
	"aquad/internal/controllers"
	"aquad/internal/providers"
	"aquad/internal/reminder"
	"aquad/internal/services"
	"aquad/internal/storage"
	"aquad/internal/structures"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewClock,
		services.NewHydrationService,
		wire.Bind(new(providers.StateReader), new(services.HydrationServiceInterface)),

		storage.NewZstdCompressor,
		storage.NewFileStore,
		storage.NewStateManager,

		reminder.NewLocalSink,
		reminder.NewOracle,
		reminder.NewScheduler,

		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
