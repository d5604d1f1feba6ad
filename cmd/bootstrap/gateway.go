package bootstrap

import (
	"log/slog"

	"assistance-console/internal/infra/gateway"
	"assistance-console/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config, logger *slog.Logger) *gateway.Client {
			return gateway.NewClient(cfg.Backend, logger)
		},
		func(client *gateway.Client, cfg config.Config) *gateway.LookupCache {
			return gateway.NewLookupCache(client, cfg.Lookup)
		},
	),
)
