package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"croprec/pkg/recommend"
	repo "croprec/pkg/season/repository"
)

type SeasonCtrl struct {
	repo repo.SeasonRepository
	rec  *recommend.Recommender
}

func New(repo repo.SeasonRepository, rec *recommend.Recommender) *SeasonCtrl {
	return &SeasonCtrl{repo: repo, rec: rec}
}

func (h *SeasonCtrl) List(c echo.Context) error {
	out, err := h.repo.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// Current reports the season the recommender is scoring against right now,
// with its stored description when there is one.
func (h *SeasonCtrl) Current(c echo.Context) error {
	s := h.rec.CurrentSeason()
	resp := echo.Map{
		"season":   s,
		"name":     s.DisplayName(),
		"calendar": h.rec.Calendar(),
	}
	if info, err := h.repo.FindByName(s.Title()); err == nil {
		resp["info"] = info
	}
	return c.JSON(http.StatusOK, resp)
}
