package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"croprec/pkg/recommend"
)

var appStart = time.Now()

type HealthCtrl struct {
	db  *gorm.DB
	cat *recommend.Catalog
	rec *recommend.Recommender
}

func NewHealthCtrl(db *gorm.DB, cat *recommend.Catalog, rec *recommend.Recommender) *HealthCtrl {
	return &HealthCtrl{db: db, cat: cat, rec: rec}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health reports 503 when the database does not answer a ping. An empty
// catalog is reported but keeps the service up.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := sub{OK: true}
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			db = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			db = sub{Err: "ping: " + err.Error()}
		}
	} else {
		db = sub{Err: "gorm db is nil"}
	}

	catalog := sub{OK: h.cat.Len() > 0}
	if !catalog.OK {
		catalog.Err = "catalog is empty"
	}

	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":       map[string]any{"ok": db.OK},
		"uptime_sec":   int(time.Since(appStart).Seconds()),
		"catalog_size": h.cat.Len(),
		"checks": map[string]any{
			"database": db,
			"catalog":  catalog,
		},
		"time": time.Now().Format(time.RFC3339),
	}
	if h.rec != nil {
		resp["season"] = h.rec.CurrentSeason()
	}
	return c.JSON(status, resp)
}
