package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/internal/services"
	"github.com/Yadavallitejas/tourist-guard/pkg/blob"
	"github.com/Yadavallitejas/tourist-guard/pkg/config"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, blobStore blob.Store, cfg *config.Config, tokens *utils.TokenManager) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, blobStore, cfg, tokens)
}
