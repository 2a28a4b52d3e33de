package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	repo "croprec/pkg/soil/repository"
)

type SoilCtrl struct{ repo repo.SoilRepository }

func New(repo repo.SoilRepository) *SoilCtrl { return &SoilCtrl{repo} }

func (h *SoilCtrl) List(c echo.Context) error {
	out, err := h.repo.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
