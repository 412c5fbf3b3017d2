package handler

import (
	"net/http"

	"github.com/vfg2006/sucatabook/internal/api/handler/router"
	"github.com/vfg2006/sucatabook/internal/app"
	"github.com/vfg2006/sucatabook/internal/scheduler"
	"github.com/vfg2006/sucatabook/pkg/middleware"
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

func Authentication(state app.AppState) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(state),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodPut,
			Handler:     UpdateMe(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Materials() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/materials",
			Method:      http.MethodGet,
			Handler:     ListMaterials(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Products(state app.AppState) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteProduct(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Purchases(state app.AppState) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/purchases",
			Method:      http.MethodGet,
			Handler:     ListPurchases(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/purchases",
			Method:      http.MethodPost,
			Handler:     CreatePurchase(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/purchases/quote",
			Method:      http.MethodPost,
			Handler:     QuotePurchase(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/purchases/export",
			Method:      http.MethodGet,
			Handler:     ExportPurchases(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Financial(state app.AppState) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/financial/summary",
			Method:      http.MethodGet,
			Handler:     GetFinancialSummary(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Settings(state app.AppState) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings/export",
			Method:      http.MethodGet,
			Handler:     ExportProducts(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/import",
			Method:      http.MethodPost,
			Handler:     ImportProducts(state),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CacheRefresh(service *scheduler.CacheRefreshService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cache/refresh",
			Method:      http.MethodPost,
			Handler:     RunCacheRefresh(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cache/status",
			Method:      http.MethodGet,
			Handler:     GetCacheRefreshStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
