package controllerImp

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"croprec/pkg/recommend"
	"croprec/pkg/recommend/controller"
	"croprec/pkg/recommend/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"join":  strings.Join,
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}).ParseFS(templateFS, "templates/*.html"))

type RecommendCtrl struct{ svc service.RecommendService }

func New(svc service.RecommendService) controller.RecommendController { return &RecommendCtrl{svc} }

type pageData struct {
	SoilTypes       []string
	Errors          []string
	Form            recommend.RawConditions
	Submitted       bool
	CurrentSeason   string
	Recommendations []recommend.Recommendation
}

func (h *RecommendCtrl) Page(c echo.Context) error {
	data := pageData{SoilTypes: h.svc.SoilTypes()}
	if c.Request().Method != http.MethodPost {
		return h.render(c, http.StatusOK, data)
	}

	data.Form = recommend.RawConditions{
		Temperature: recommend.RawValue(c.FormValue("temperature")),
		Rainfall:    recommend.RawValue(c.FormValue("rainfall")),
		Humidity:    recommend.RawValue(c.FormValue("humidity")),
		PH:          recommend.RawValue(c.FormValue("ph")),
		SoilType:    c.FormValue("soil_type"),
	}
	res, errs := h.svc.Recommend(data.Form)
	if len(errs) > 0 {
		data.Errors = errs
		return h.render(c, http.StatusBadRequest, data)
	}
	data.Submitted = true
	data.CurrentSeason = res.Season.DisplayName()
	data.Recommendations = res.Recommendations
	return h.render(c, http.StatusOK, data)
}

func (h *RecommendCtrl) render(c echo.Context, status int, data pageData) error {
	var buf bytes.Buffer
	if err := pageTmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

func (h *RecommendCtrl) API(c echo.Context) error {
	var raw recommend.RawConditions
	if err := c.Bind(&raw); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": []string{"invalid json"}})
	}
	res, errs := h.svc.Recommend(raw)
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"recommendations": res.Recommendations,
		"current_season":  res.Season.DisplayName(),
		"season":          res.Season,
		"conditions":      res.Conditions,
	})
}
