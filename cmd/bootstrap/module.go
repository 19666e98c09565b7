package bootstrap

import (
	"wishlink/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	GeminiModule,
	NotifyModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
