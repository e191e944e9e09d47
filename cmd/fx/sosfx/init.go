package sosfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/internal/services"
	"github.com/Yadavallitejas/tourist-guard/pkg/blob"
)

var Module = fx.Provide(
	provideSOSRepo, provideSOSService)

func provideSOSRepo(db *gorm.DB) repositories.SOSRepository {
	return repositories.NewSOSRepository(db)
}

func provideSOSService(sosRepo repositories.SOSRepository, locationRepo repositories.LocationRepository, blobStore blob.Store) services.SOSServiceInterface {
	return services.NewSOSService(sosRepo, locationRepo, blobStore)
}
