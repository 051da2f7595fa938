package bootstrap

import (
	"stayhub/cmd/bootstrap/components"
	"stayhub/internal/pkg/config"

	"go.uber.org/fx"
)

// Module assembles the whole application graph.
var Module = fx.Options(
	fx.Provide(config.LoadConfig),
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
