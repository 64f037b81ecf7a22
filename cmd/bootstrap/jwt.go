package bootstrap

import (
	"fmt"
	"time"

	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
	}

	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration, clk), nil
}
