package handler

import (
	"net/http"

	"github.com/vfg2006/sales-performance-api/infrastructure/exporter"
	"github.com/vfg2006/sales-performance-api/internal/api/handler/router"
	"github.com/vfg2006/sales-performance-api/internal/usecases/advising"
	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/internal/usecases/recording"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/revenue",
			Method:  http.MethodGet,
			Handler: GetRevenue(service),
		},
		{
			Path:    "/v1/sellers",
			Method:  http.MethodGet,
			Handler: GetSellers(service),
		},
		{
			Path:    "/v1/sellers/annual",
			Method:  http.MethodGet,
			Handler: GetAnnualSellers(service),
		},
		{
			Path:    "/v1/clients/portfolio",
			Method:  http.MethodGet,
			Handler: GetClientPortfolio(service),
		},
		{
			Path:    "/v1/clients/opportunity",
			Method:  http.MethodGet,
			Handler: GetOpportunityCost(service),
		},
		{
			Path:    "/v1/operational",
			Method:  http.MethodGet,
			Handler: GetOperationalEfficiency(service),
		},
	}
}

func SellerRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sellers/ranking",
			Method:  http.MethodGet,
			Handler: GetSellerRanking(service),
		},
	}
}

// Recording retorna as rotas de lançamento e leitura do snapshot
func Recording(recorder recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue/:year/:month/:seller",
			Method:  http.MethodPut,
			Handler: RecordSellerActual(recorder),
		},
		{
			Path:    "/v1/operational/:year/:month/:field",
			Method:  http.MethodPut,
			Handler: RecordOperationalCost(recorder),
		},
		{
			Path:    "/v1/projections/:client/:year",
			Method:  http.MethodPut,
			Handler: RecordProjection(recorder),
		},
		{
			Path:    "/v1/snapshot",
			Method:  http.MethodGet,
			Handler: GetSnapshot(recorder),
		},
	}
}

func Reference(data ReferenceData) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reference",
			Method:  http.MethodGet,
			Handler: GetReference(data),
		},
	}
}

func Advisory(adviser advising.Adviser) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/advisory",
			Method:  http.MethodPost,
			Handler: PostAdvisory(adviser),
		},
	}
}

func Export(service insighting.Insighter, exp exporter.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportDashboard(service, exp),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
