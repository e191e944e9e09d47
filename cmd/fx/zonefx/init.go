package zonefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/internal/services"
	"github.com/Yadavallitejas/tourist-guard/pkg/config"
	"github.com/Yadavallitejas/tourist-guard/pkg/memcache"
)

var Module = fx.Provide(
	provideZoneRepo, provideZoneCache, provideZoneService, provideGeofenceService)

func provideZoneRepo(db *gorm.DB) repositories.ZoneRepository {
	return repositories.NewZoneRepository(db)
}

func provideZoneCache(cfg *config.Config) *memcache.ZoneCache {
	return memcache.NewZoneCache(cfg.ZoneCacheTTL)
}

func provideZoneService(zoneRepo repositories.ZoneRepository, cache *memcache.ZoneCache) services.ZoneServiceInterface {
	return services.NewZoneService(zoneRepo, cache)
}

func provideGeofenceService(zoneRepo repositories.ZoneRepository, cache *memcache.ZoneCache) services.GeofenceServiceInterface {
	return services.NewGeofenceService(zoneRepo, cache)
}
