package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Yadavallitejas/tourist-guard/internal/infra"
	"github.com/Yadavallitejas/tourist-guard/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
