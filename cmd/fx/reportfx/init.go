package reportfx

import (
	"go.uber.org/fx"

	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/internal/services"
)

var Module = fx.Provide(
	provideReportService)

func provideReportService(sosRepo repositories.SOSRepository, locationRepo repositories.LocationRepository, accountRepo repositories.AccountRepository) services.ReportServiceInterface {
	return services.NewReportService(sosRepo, locationRepo, accountRepo)
}
