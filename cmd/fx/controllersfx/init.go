package controllersfx

import (
	"go.uber.org/fx"

	"github.com/Yadavallitejas/tourist-guard/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewLocationController),
	fx.Provide(controllers.NewSOSController),
	fx.Provide(controllers.NewZoneController),
	fx.Provide(controllers.NewReportController))
