package bootstrap

import (
	"lane-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	StoreModule,
	IntegrationModule,
	components.UseCaseModule,
	components.HandlerModule,
)
