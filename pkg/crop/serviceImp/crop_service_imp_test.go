package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"croprec/database"
	"croprec/entities"
	repoImp "croprec/pkg/crop/repositoryImp"
	"croprec/pkg/recommend"
)

func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "crops.db"))
	require.NoError(t, err)
	require.NoError(t, database.Seed(db))
	return db
}

func TestLoadCatalog_DefaultCrops(t *testing.T) {
	svc := NewCropService(repoImp.New(seededDB(t)))

	cat, err := svc.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, 18, cat.Len())

	rice, ok := cat.Lookup("Rice")
	require.True(t, ok)
	assert.Equal(t, recommend.Range{Min: 20, Max: 35}, rice.Temperature)
	assert.Equal(t, []string{"clay", "loam"}, rice.Soils)
	assert.Equal(t, []recommend.Season{recommend.Kharif}, rice.Seasons)
	assert.Equal(t, "high", rice.Nutrients["nitrogen"])
}

func TestLoadCatalog_SkipsMalformedRows(t *testing.T) {
	db := seededDB(t)
	bad := []entities.Crop{
		{Name: "Broken JSON", TempMin: 10, TempMax: 20, Seasons: "Rabi", SoilTypes: "loam", Nutrients: "{nitrogen"},
		{Name: "Upside Down", TempMin: 30, TempMax: 20, Seasons: "Rabi", SoilTypes: "loam", Nutrients: "{}"},
		{Name: "Spring Crop", TempMin: 10, TempMax: 20, Seasons: "Spring", SoilTypes: "loam", Nutrients: "{}"},
		{Name: "rice", TempMin: 10, TempMax: 20, Seasons: "Rabi", SoilTypes: "loam", Nutrients: "{}"},
	}
	require.NoError(t, db.Create(&bad).Error)

	cat, err := NewCropService(repoImp.New(db)).LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, 18, cat.Len())

	for _, name := range []string{"Broken JSON", "Upside Down", "Spring Crop"} {
		_, ok := cat.Lookup(name)
		assert.False(t, ok, name)
	}
	rice, _ := cat.Lookup("rice")
	assert.Equal(t, "Rice", rice.Name, "first row wins on a case-insensitive duplicate")
}

func TestLoadCatalog_EmptyStore(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "crops.db"))
	require.NoError(t, err)

	cat, err := NewCropService(repoImp.New(db)).LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
}

func TestLoadCatalog_FeedsRecommender(t *testing.T) {
	cat, err := NewCropService(repoImp.New(seededDB(t))).LoadCatalog()
	require.NoError(t, err)

	c := recommend.Conditions{Temperature: 25, Rainfall: 1500, SoilType: "clay", PH: 6.0, Humidity: 70}
	recs := recommend.Rank(c, cat, recommend.Kharif)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Rice", recs[0].Name)
	assert.Equal(t, 100, recs[0].Score)

	scores := map[string]int{}
	for _, r := range recs {
		scores[r.Name] = r.Score
	}
	assert.Equal(t, 65, scores["Wheat"])
	assert.Equal(t, 100, scores["Cotton"])
	assert.Equal(t, 100, scores["Jute"])
}

func TestGetCrop(t *testing.T) {
	svc := NewCropService(repoImp.New(seededDB(t)))

	c, err := svc.GetCrop(" black pepper ")
	require.NoError(t, err)
	assert.Equal(t, "Black Pepper", c.Name)

	_, err = svc.GetCrop("barley")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpsert(t *testing.T) {
	db := seededDB(t)
	r := repoImp.New(db)

	require.NoError(t, r.Upsert(&entities.Crop{Name: "Rice", TempMin: 18, TempMax: 36, RainMin: 1000, RainMax: 2000, PHMin: 5.5, PHMax: 6.5, Seasons: "Kharif", SoilTypes: "clay", Nutrients: "{}"}))
	require.NoError(t, r.Upsert(&entities.Crop{Name: "Barley", TempMin: 12, TempMax: 25, RainMin: 300, RainMax: 600, PHMin: 6, PHMax: 8, Seasons: "Rabi", SoilTypes: "loam,sandy", Nutrients: "{}"}))

	all, err := r.All()
	require.NoError(t, err)
	assert.Len(t, all, 19)
	assert.Equal(t, "Rice", all[0].Name)
	assert.Equal(t, 18.0, all[0].TempMin)
	assert.Equal(t, "clay", all[0].SoilTypes)
	assert.Equal(t, "Barley", all[18].Name)
}
