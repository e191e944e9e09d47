package configfx

import (
	"go.uber.org/fx"

	"github.com/Yadavallitejas/tourist-guard/pkg/config"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

var Module = fx.Provide(
	config.Load, provideTokenManager)

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
}
