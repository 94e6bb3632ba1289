package handler

import (
	"net/http"

	"github.com/futurewise/futurewise-api/infrastructure/repository"
	"github.com/futurewise/futurewise-api/internal/api/handler/router"
	"github.com/futurewise/futurewise-api/internal/usecases/authenticating"
	"github.com/futurewise/futurewise-api/internal/usecases/billing"
	"github.com/futurewise/futurewise-api/internal/usecases/importing"
	"github.com/futurewise/futurewise-api/internal/usecases/simulating"
	"github.com/futurewise/futurewise-api/internal/usecases/tenanting"
	"github.com/futurewise/futurewise-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Tenants(tenantService tenanting.TenantManager, importService importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tenants",
			Method:      http.MethodGet,
			Handler:     ListTenants(tenantService),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/tenants",
			Method:      http.MethodPost,
			Handler:     CreateTenant(tenantService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/tenants/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTenant(tenantService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/tenants/:id/defaults",
			Method:      http.MethodGet,
			Handler:     GetTenantDefaults(tenantService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tenants/:id/defaults",
			Method:      http.MethodPut,
			Handler:     SaveTenantDefaults(tenantService),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/tenants/:id/kpis",
			Method:      http.MethodGet,
			Handler:     GetTenantKpis(importService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Imports(service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/imports/api",
			Method:      http.MethodPost,
			Handler:     ImportFromAPI(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/imports/webhook",
			Method:      http.MethodPost,
			Handler:     ImportFromWebhook(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/imports/csv",
			Method:      http.MethodPost,
			Handler:     ImportFromCSV(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/imports/xlsx",
			Method:      http.MethodPost,
			Handler:     ImportFromXLSX(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/imports/events",
			Method:      http.MethodGet,
			Handler:     ListImportEvents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/imports/events/:id/errors",
			Method:      http.MethodGet,
			Handler:     ListImportEventErrors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Scenarios(service simulating.Simulator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/scenarios",
			Method:      http.MethodGet,
			Handler:     ListScenarios(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/scenarios",
			Method:      http.MethodPost,
			Handler:     CreateScenario(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/scenarios/simulate",
			Method:      http.MethodPost,
			Handler:     SimulateScenario(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/scenarios/:id/results",
			Method:      http.MethodGet,
			Handler:     GetScenarioResults(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Billing(service billing.Biller) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/billing/checkout",
			Method:      http.MethodPost,
			Handler:     CreateCheckout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:    "/v1/billing/webhook",
			Method:  http.MethodPost,
			Handler: BillingWebhook(service),
		},
		{
			Path:        "/v1/billing/subscription",
			Method:      http.MethodGet,
			Handler:     GetSubscription(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func System(statsRepo repository.SystemStatsRepository, auditRepo repository.AuditRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/system/stats",
			Method:      http.MethodGet,
			Handler:     GetSystemStats(statsRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/system/audit",
			Method:      http.MethodGet,
			Handler:     ListAuditEvents(auditRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
