package locationfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/internal/services"
)

var Module = fx.Provide(
	provideLocationRepo, provideLocationService)

func provideLocationRepo(db *gorm.DB) repositories.LocationRepository {
	return repositories.NewLocationRepository(db)
}

func provideLocationService(locationRepo repositories.LocationRepository, geofence services.GeofenceServiceInterface) services.LocationServiceInterface {
	return services.NewLocationService(locationRepo, geofence)
}
