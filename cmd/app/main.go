package main

import (
	"context"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"github.com/Yadavallitejas/tourist-guard/cmd/fx/accountfx"
	"github.com/Yadavallitejas/tourist-guard/cmd/fx/blobfx"
	"github.com/Yadavallitejas/tourist-guard/cmd/fx/configfx"
	"github.com/Yadavallitejas/tourist-guard/cmd/fx/controllersfx"
	"github.com/Yadavallitejas/tourist-guard/cmd/fx/dbfx"
	"github.com/Yadavallitejas/tourist-guard/cmd/fx/locationfx"
	"github.com/Yadavallitejas/tourist-guard/cmd/fx/reportfx"
	"github.com/Yadavallitejas/tourist-guard/cmd/fx/sosfx"
	"github.com/Yadavallitejas/tourist-guard/cmd/fx/zonefx"
	"github.com/Yadavallitejas/tourist-guard/internal/api/controllers"
	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
	"github.com/Yadavallitejas/tourist-guard/pkg/config"
	"github.com/Yadavallitejas/tourist-guard/pkg/logger"
	"github.com/Yadavallitejas/tourist-guard/pkg/middleware"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

func main() {
	app := fx.New(
		configfx.Module,
		dbfx.Module,
		blobfx.Module,
		accountfx.Module,
		zonefx.Module,
		locationfx.Module,
		sosfx.Module,
		reportfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infof("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	tokens *utils.TokenManager,
	accountController *controllers.AccountController,
	locationController *controllers.LocationController,
	sosController *controllers.SOSController,
	zoneController *controllers.ZoneController,
	reportController *controllers.ReportController) *gin.Engine {

	logger.Setup(cfg.Debug)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tokens, accountController, locationController, sosController, zoneController, reportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.TokenManager,
	accountController *controllers.AccountController,
	locationController *controllers.LocationController,
	sosController *controllers.SOSController,
	zoneController *controllers.ZoneController,
	reportController *controllers.ReportController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register/tourist", accountController.RegisterTourist)
	accounts.POST("/register/police", accountController.RegisterPolice)
	accounts.POST("/login", accountController.Login)

	api := r.Group("/api", middleware.JWTAuthMiddleware(tokens))
	api.GET("/zones", zoneController.ListZones)

	touristAPI := api.Group("", middleware.RoleMiddleware(db_models.RoleTourist))
	touristAPI.POST("/location", locationController.PostLocation)
	touristAPI.POST("/location/update", locationController.UpdateLocation)
	touristAPI.POST("/sos", sosController.RaiseSOS)
	touristAPI.POST("/sos/:id/audio", sosController.UploadAudio)

	police := r.Group("/police", middleware.JWTAuthMiddleware(tokens), middleware.RoleMiddleware(db_models.RolePolice))
	police.GET("/api/active_sos", sosController.ActiveSOS)
	police.GET("/fir/:id/pdf", reportController.DownloadFIR)

	zones := r.Group("/dangerzones", middleware.JWTAuthMiddleware(tokens), middleware.RoleMiddleware(db_models.RolePolice))
	zones.GET("", zoneController.ListZones)
	zones.POST("", zoneController.CreateZone)
	zones.PUT("/:id", zoneController.UpdateZone)
	zones.DELETE("/:id", zoneController.DeleteZone)
}
