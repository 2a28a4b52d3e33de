package router

import (
	"github.com/labstack/echo/v4"

	"croprec/pkg/middleware"
)

// Limits bounds the per-client request rate on the /api group.
type Limits struct {
	RPS   float64
	Burst int
}

func New(
	e *echo.Echo,
	limits Limits,
	recCtrl interface{ Page(echo.Context) error; API(echo.Context) error },
	cropCtrl interface{ List(echo.Context) error; Get(echo.Context) error },
	soilCtrl interface{ List(echo.Context) error },
	seasonCtrl interface{ List(echo.Context) error; Current(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/", recCtrl.Page)
	e.POST("/", recCtrl.Page)
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api", middleware.RateLimit(limits.RPS, limits.Burst))
	api.POST("/recommend", recCtrl.API)

	api.GET("/crops", cropCtrl.List)
	api.GET("/crops/:name", cropCtrl.Get)
	api.GET("/soils", soilCtrl.List)

	api.GET("/seasons", seasonCtrl.List)
	api.GET("/seasons/current", seasonCtrl.Current)
	return e
}
