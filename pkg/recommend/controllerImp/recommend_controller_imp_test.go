package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"croprec/database"
	cropSvc "croprec/pkg/crop/serviceImp"
	"croprec/pkg/recommend"
	svcImp "croprec/pkg/recommend/serviceImp"
)

func defaultCatalog(t *testing.T) *recommend.Catalog {
	t.Helper()
	var profiles []recommend.CropProfile
	for _, row := range database.DefaultCrops() {
		p, err := cropSvc.ToProfile(row)
		require.NoError(t, err)
		profiles = append(profiles, p)
	}
	cat, err := recommend.NewCatalog(profiles...)
	require.NoError(t, err)
	return cat
}

func newEcho(t *testing.T, cat *recommend.Catalog) *echo.Echo {
	t.Helper()
	july := func() time.Time { return time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC) }
	ctrl := New(svcImp.New(cat, recommend.NewRecommender(recommend.ThreeSeasons, july), nil))

	e := echo.New()
	e.GET("/", ctrl.Page)
	e.POST("/", ctrl.Page)
	e.POST("/api/recommend", ctrl.API)
	return e
}

type apiResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
	CurrentSeason   string                     `json:"current_season"`
	Season          string                     `json:"season"`
	Errors          []string                   `json:"errors"`
}

func postJSON(t *testing.T, e *echo.Echo, body string) (int, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func TestAPI_MonsoonClay(t *testing.T) {
	e := newEcho(t, defaultCatalog(t))
	code, out := postJSON(t, e, `{"temperature": 25, "rainfall": 1500, "soil_type": "Clay", "ph": 6.0, "humidity": 70}`)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Monsoon season", out.CurrentSeason)
	assert.Equal(t, "kharif", out.Season)
	require.NotEmpty(t, out.Recommendations)
	assert.Equal(t, "Rice", out.Recommendations[0].Name)
	assert.Equal(t, 100, out.Recommendations[0].Score)

	for i, r := range out.Recommendations {
		assert.GreaterOrEqual(t, r.Score, recommend.AdmissionThreshold)
		if i > 0 {
			assert.GreaterOrEqual(t, out.Recommendations[i-1].Score, r.Score)
		}
		if r.Name == "Wheat" {
			assert.Equal(t, 65, r.Score)
		}
	}
}

func TestAPI_ValidationErrors(t *testing.T) {
	e := newEcho(t, defaultCatalog(t))
	code, out := postJSON(t, e, `{"temperature": "hot", "rainfall": 9000, "soil_type": "peat"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []string{
		"Temperature must be a number",
		"Rainfall must be between 0mm and 5000mm",
		"Invalid soil type",
	}, out.Errors)
	assert.Empty(t, out.Recommendations)
}

func TestAPI_BadJSON(t *testing.T) {
	e := newEcho(t, defaultCatalog(t))
	code, out := postJSON(t, e, `{"temperature": `)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []string{"invalid json"}, out.Errors)
}

func TestAPI_EmptyCatalog(t *testing.T) {
	empty, err := recommend.NewCatalog()
	require.NoError(t, err)

	code, out := postJSON(t, newEcho(t, empty), `{"temperature": 25, "rainfall": 1500, "soil_type": "clay"}`)
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, out.Recommendations)
	assert.Empty(t, out.Recommendations)
}

func postForm(t *testing.T, e *echo.Echo, form url.Values) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func TestPage_Get(t *testing.T) {
	e := newEcho(t, defaultCatalog(t))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)

	var soils []string
	doc.Find("select[name=soil_type] option").Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("value")
		soils = append(soils, v)
	})
	assert.Equal(t, recommend.DefaultSoils, soils)
	assert.Equal(t, 0, doc.Find("#results").Length())
}

func TestPage_PostRendersRanking(t *testing.T) {
	e := newEcho(t, defaultCatalog(t))
	rec, doc := postForm(t, e, url.Values{
		"temperature": {"25"}, "rainfall": {"1500"}, "ph": {"6.0"}, "soil_type": {"clay"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "Monsoon season", strings.TrimSpace(doc.Find(".season span").Text()))

	items := doc.Find("li.recommendation")
	require.Greater(t, items.Length(), 1)
	first, _ := items.First().Attr("data-crop")
	score, _ := items.First().Attr("data-score")
	assert.Equal(t, "Rice", first)
	assert.Equal(t, "100", score)

	selected, _ := doc.Find("select[name=soil_type] option[selected]").Attr("value")
	assert.Equal(t, "clay", selected)
}

func TestPage_PostShowsErrors(t *testing.T) {
	e := newEcho(t, defaultCatalog(t))
	rec, doc := postForm(t, e, url.Values{
		"temperature": {"60"}, "rainfall": {"abc"}, "humidity": {"101"}, "soil_type": {"clay"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errs []string
	doc.Find("ul.errors li").Each(func(_ int, s *goquery.Selection) { errs = append(errs, s.Text()) })
	assert.Equal(t, []string{
		"Temperature must be between 0°C and 50°C",
		"Rainfall must be a number",
		"Humidity must be between 0% and 100%",
	}, errs)
	assert.Equal(t, 0, doc.Find("li.recommendation").Length())

	v, _ := doc.Find("input[name=temperature]").Attr("value")
	assert.Equal(t, "60", v)
}

func TestPage_NoMatches(t *testing.T) {
	e := newEcho(t, defaultCatalog(t))
	rec, doc := postForm(t, e, url.Values{
		"temperature": {"48"}, "rainfall": {"4900"}, "ph": {"13"}, "soil_type": {"sandy"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, doc.Find("p.empty").Length())
}
