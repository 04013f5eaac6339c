package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/fruit-shop-api/internal/api/handler/router"
	"github.com/vfg2006/fruit-shop-api/internal/config"
	"github.com/vfg2006/fruit-shop-api/internal/scheduler"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/authenticating"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/importing"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/inventory"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/selling"
	"github.com/vfg2006/fruit-shop-api/internal/usecases/statistics"
	"github.com/vfg2006/fruit-shop-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Items(service inventory.InventoryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/items",
			Method:      http.MethodGet,
			Handler:     ListItems(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items",
			Method:      http.MethodPost,
			Handler:     CreateItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:id",
			Method:      http.MethodGet,
			Handler:     GetItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:id",
			Method:      http.MethodPut,
			Handler:     UpdateItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sales(service selling.SellingService, importer importing.SalesImporter, cfg *config.Config) []router.Route {
	loc := cfg.App.Location
	if loc == nil {
		loc = time.Local
	}

	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodGet,
			Handler:     GetSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSale(service, loc),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSale(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/csv-upload",
			Method:      http.MethodPost,
			Handler:     UploadSalesCSV(importer, cfg.Import.MaxUploadBytes),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Statistics(service statistics.StatisticsService, snapshotService *scheduler.StatisticsSnapshotService, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/statistics",
			Method:      http.MethodGet,
			Handler:     GetStatistics(service, cfg.Statistics),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/statistics/snapshot",
			Method:      http.MethodGet,
			Handler:     GetLatestStatisticsSnapshot(snapshotService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
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
