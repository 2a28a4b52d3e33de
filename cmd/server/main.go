package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"croprec/config"
	"croprec/database"
	"croprec/pkg/catalog"
	"croprec/pkg/middleware"
	"croprec/pkg/recommend"
	"croprec/router"

	// Crop
	cropCtrlImp "croprec/pkg/crop/controllerImp"
	cropRepoImp "croprec/pkg/crop/repositoryImp"
	cropSvcImp "croprec/pkg/crop/serviceImp"

	// Soil / Season
	seasonCtrlImp "croprec/pkg/season/controllerImp"
	seasonRepoImp "croprec/pkg/season/repositoryImp"
	soilCtrlImp "croprec/pkg/soil/controllerImp"
	soilRepoImp "croprec/pkg/soil/repositoryImp"

	// Recommend
	recCtrlImp "croprec/pkg/recommend/controllerImp"
	recSvcImp "croprec/pkg/recommend/serviceImp"

	// Health
	healthCtrlImp "croprec/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Clock in the configured timezone
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("[cfg] WARN: timezone %q: %v, using UTC", cfg.Timezone, err)
		loc = time.UTC
	}
	now := func() time.Time { return time.Now().In(loc) }

	e, err := newServer(cfg, now)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// newServer opens and seeds the store, builds the catalog and wires every
// route.
func newServer(cfg config.AppConfig, now recommend.Clock) (*echo.Echo, error) {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := database.Seed(db); err != nil {
		return nil, err
	}

	cropRepo := cropRepoImp.New(db)
	if cfg.CatalogFile != "" {
		if _, err := catalog.NewImporter(cropRepo).ImportFile(cfg.CatalogFile); err != nil {
			log.Printf("[catalog] WARN: import %s: %v", cfg.CatalogFile, err)
		}
	}

	cropSvc := cropSvcImp.NewCropService(cropRepo)
	cat, err := cropSvc.LoadCatalog()
	if err != nil {
		return nil, err
	}

	cal, err := recommend.ParseCalendar(cfg.SeasonCalendar)
	if err != nil {
		log.Printf("[cfg] WARN: %v, using %q", err, recommend.ThreeSeasons)
		cal = recommend.ThreeSeasons
	}
	rec := recommend.NewRecommender(cal, now)
	log.Printf("[recommend] calendar=%s current season=%s", cal, rec.CurrentSeason())

	soilRepo := soilRepoImp.New(db)
	recCtrl := recCtrlImp.New(recSvcImp.New(cat, rec, soilRepo))
	cropCtrl := cropCtrlImp.New(cropSvc)
	soilCtrl := soilCtrlImp.New(soilRepo)
	seasonCtrl := seasonCtrlImp.New(seasonRepoImp.New(db), rec)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, cat, rec)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echoMiddleware.Logger())

	return router.New(
		e,
		router.Limits{RPS: cfg.APIRateRPS, Burst: cfg.APIRateBurst},
		recCtrl,
		cropCtrl,
		soilCtrl,
		seasonCtrl,
		hCtrl,
	), nil
}
