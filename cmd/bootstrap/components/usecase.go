package components

import (
	"log/slog"

	"assistance-console/internal/infra/gateway"
	"assistance-console/internal/pkg/clock"
	"assistance-console/internal/pkg/config"
	"assistance-console/internal/usecase"
	"assistance-console/internal/usecase/commands"
	"assistance-console/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cmds commands.AssignmentCommands, cfg config.Config, clk clock.Clock, logger *slog.Logger) *usecase.AutoSaver {
		return usecase.NewAutoSaver(cmds, cfg.Autosave, clk, logger)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(client *gateway.Client) commands.AssignmentCommands {
			return commands.NewAssignmentCommands(client)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(client *gateway.Client) queries.InterventionQueries {
			return queries.NewInterventionQueries(client)
		},
		func(client *gateway.Client, lookups *gateway.LookupCache) queries.CalendarQueries {
			return queries.NewCalendarQueries(client, lookups)
		},
	),
)
