package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"croprec/entities"
)

// Seed inserts the default soil types, seasons and crops. Rows whose name
// already exists are left untouched, so it is safe to run on every start.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// a fresh statement per model; a reused chain keeps the first model's schema
		ignore := func() *gorm.DB {
			return tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true})
		}
		soils, seasons, crops := DefaultSoilTypes(), DefaultSeasons(), DefaultCrops()
		if err := ignore().Create(&soils).Error; err != nil {
			return fmt.Errorf("seed soil types: %w", err)
		}
		if err := ignore().Create(&seasons).Error; err != nil {
			return fmt.Errorf("seed seasons: %w", err)
		}
		if err := ignore().Create(&crops).Error; err != nil {
			return fmt.Errorf("seed crops: %w", err)
		}
		log.Printf("[db] seed complete")
		return nil
	})
}

func nutrients(n, p, k string) string {
	return fmt.Sprintf(`{"nitrogen": %q, "phosphorus": %q, "potassium": %q}`, n, p, k)
}

// DefaultCrops is the built-in catalog, in catalog order.
func DefaultCrops() []entities.Crop {
	return []entities.Crop{
		{Name: "Rice", TempMin: 20, TempMax: 35, RainMin: 1000, RainMax: 2000, PHMin: 5.5, PHMax: 6.5, HumidityMin: 60, HumidityMax: 85, Seasons: "Kharif", SoilTypes: "clay,loam", Nutrients: nutrients("high", "medium", "medium")},
		{Name: "Wheat", TempMin: 15, TempMax: 25, RainMin: 600, RainMax: 1100, PHMin: 6.0, PHMax: 7.0, HumidityMin: 50, HumidityMax: 70, Seasons: "Rabi", SoilTypes: "loam,clay", Nutrients: nutrients("medium", "medium", "low")},
		{Name: "Maize", TempMin: 20, TempMax: 30, RainMin: 500, RainMax: 800, PHMin: 5.5, PHMax: 7.5, HumidityMin: 50, HumidityMax: 75, Seasons: "Kharif,Rabi", SoilTypes: "loam,sandy", Nutrients: nutrients("high", "medium", "medium")},
		{Name: "Cotton", TempMin: 21, TempMax: 37, RainMin: 500, RainMax: 1500, PHMin: 5.5, PHMax: 8.5, HumidityMin: 60, HumidityMax: 80, Seasons: "Kharif", SoilTypes: "loam,clay", Nutrients: nutrients("high", "medium", "high")},
		{Name: "Sugarcane", TempMin: 20, TempMax: 35, RainMin: 1500, RainMax: 2500, PHMin: 6.0, PHMax: 7.5, HumidityMin: 70, HumidityMax: 90, Seasons: "Kharif", SoilTypes: "loam", Nutrients: nutrients("high", "medium", "high")},
		{Name: "Potato", TempMin: 15, TempMax: 25, RainMin: 500, RainMax: 700, PHMin: 5.0, PHMax: 6.5, HumidityMin: 50, HumidityMax: 75, Seasons: "Rabi", SoilTypes: "loam,sandy", Nutrients: nutrients("medium", "high", "high")},
		{Name: "Tomato", TempMin: 20, TempMax: 27, RainMin: 400, RainMax: 600, PHMin: 6.0, PHMax: 7.0, HumidityMin: 65, HumidityMax: 85, Seasons: "Rabi,Zaid", SoilTypes: "loam,sandy", Nutrients: nutrients("medium", "high", "medium")},
		{Name: "Groundnut", TempMin: 20, TempMax: 30, RainMin: 500, RainMax: 1250, PHMin: 6.0, PHMax: 7.5, HumidityMin: 50, HumidityMax: 75, Seasons: "Kharif", SoilTypes: "sandy,loam", Nutrients: nutrients("low", "medium", "medium")},
		{Name: "Soybean", TempMin: 20, TempMax: 30, RainMin: 600, RainMax: 1000, PHMin: 6.0, PHMax: 7.5, HumidityMin: 55, HumidityMax: 85, Seasons: "Kharif", SoilTypes: "loam", Nutrients: nutrients("low", "high", "medium")},
		{Name: "Mustard", TempMin: 10, TempMax: 25, RainMin: 400, RainMax: 600, PHMin: 6.0, PHMax: 7.0, HumidityMin: 40, HumidityMax: 60, Seasons: "Rabi", SoilTypes: "loam,clay", Nutrients: nutrients("medium", "medium", "low")},
		{Name: "Onion", TempMin: 13, TempMax: 24, RainMin: 350, RainMax: 550, PHMin: 6.0, PHMax: 7.0, HumidityMin: 60, HumidityMax: 70, Seasons: "Rabi", SoilTypes: "loam,clay", Nutrients: nutrients("medium", "high", "medium")},
		{Name: "Garlic", TempMin: 12, TempMax: 24, RainMin: 600, RainMax: 700, PHMin: 6.0, PHMax: 7.0, HumidityMin: 50, HumidityMax: 65, Seasons: "Rabi", SoilTypes: "loam", Nutrients: nutrients("medium", "medium", "high")},
		{Name: "Peas", TempMin: 16, TempMax: 24, RainMin: 600, RainMax: 800, PHMin: 6.0, PHMax: 7.5, HumidityMin: 60, HumidityMax: 70, Seasons: "Rabi", SoilTypes: "loam,sandy", Nutrients: nutrients("low", "medium", "medium")},
		{Name: "Sunflower", TempMin: 20, TempMax: 30, RainMin: 500, RainMax: 750, PHMin: 6.5, PHMax: 7.5, HumidityMin: 50, HumidityMax: 75, Seasons: "Kharif,Rabi", SoilTypes: "loam,sandy", Nutrients: nutrients("medium", "high", "medium")},
		{Name: "Jute", TempMin: 24, TempMax: 35, RainMin: 1500, RainMax: 2500, PHMin: 6.0, PHMax: 7.5, HumidityMin: 65, HumidityMax: 90, Seasons: "Kharif", SoilTypes: "loam,clay", Nutrients: nutrients("high", "medium", "medium")},
		{Name: "Chickpea", TempMin: 15, TempMax: 25, RainMin: 600, RainMax: 1000, PHMin: 6.0, PHMax: 8.0, HumidityMin: 40, HumidityMax: 60, Seasons: "Rabi", SoilTypes: "sandy,loam", Nutrients: nutrients("low", "medium", "medium")},
		{Name: "Turmeric", TempMin: 20, TempMax: 30, RainMin: 1500, RainMax: 2000, PHMin: 6.0, PHMax: 7.5, HumidityMin: 70, HumidityMax: 90, Seasons: "Kharif", SoilTypes: "loam", Nutrients: nutrients("high", "medium", "high")},
		{Name: "Black Pepper", TempMin: 20, TempMax: 35, RainMin: 2000, RainMax: 3000, PHMin: 5.5, PHMax: 6.5, HumidityMin: 65, HumidityMax: 95, Seasons: "Kharif", SoilTypes: "loam", Nutrients: nutrients("high", "medium", "high")},
	}
}

func DefaultSoilTypes() []entities.SoilType {
	return []entities.SoilType{
		{
			Name: "Clay", Description: "Fine-textured soil with high nutrient content", Texture: "Fine", Drainage: "Poor",
			WaterRetention: "High", NutrientRetention: "High", PHMin: 6.0, PHMax: 7.0, OrganicMatter: "Medium",
			SuitableCrops:       "Rice,Wheat,Cotton",
			ManagementPractices: "Requires good drainage management and careful tillage",
			Characteristics: map[string]string{
				"particle_size": "< 0.002mm", "cec": "High", "compaction_risk": "High",
				"erosion_risk": "Low", "temperature_capacity": "High",
			},
		},
		{
			Name: "Loam", Description: "Medium-textured soil with balanced properties", Texture: "Medium", Drainage: "Good",
			WaterRetention: "Medium", NutrientRetention: "Medium", PHMin: 6.0, PHMax: 7.5, OrganicMatter: "High",
			SuitableCrops:       "Most crops",
			ManagementPractices: "Ideal for most farming practices, maintain organic matter",
			Characteristics: map[string]string{
				"particle_size": "0.002-0.05mm", "cec": "Medium", "compaction_risk": "Medium",
				"erosion_risk": "Medium", "temperature_capacity": "Medium",
			},
		},
		{
			Name: "Sandy", Description: "Coarse-textured soil with good drainage", Texture: "Coarse", Drainage: "Excellent",
			WaterRetention: "Low", NutrientRetention: "Low", PHMin: 5.5, PHMax: 7.0, OrganicMatter: "Low",
			SuitableCrops:       "Groundnut,Potato,Carrot",
			ManagementPractices: "Requires frequent irrigation and fertilization",
			Characteristics: map[string]string{
				"particle_size": "0.05-2.0mm", "cec": "Low", "compaction_risk": "Low",
				"erosion_risk": "High", "temperature_capacity": "Low",
			},
		},
	}
}

func DefaultSeasons() []entities.Season {
	return []entities.Season{
		{
			Name: "Kharif", StartMonth: 6, EndMonth: 10,
			Characteristics: "Monsoon season with high rainfall and humidity",
			SuitableCrops:   "Rice,Cotton,Sugarcane,Maize,Groundnut,Soybean",
			RainfallPattern: "Heavy monsoon rainfall (750-1500mm)", TemperatureRange: "25-35°C",
			HumidityRange: "65-90%", DaylightHours: "12-13 hours", WindPattern: "Strong monsoon winds",
			FarmingActivities: entities.FarmingActivities{
				LandPreparation: "May-June", Sowing: "June-July", Harvesting: "September-October",
				KeyActivities: []string{"Field leveling", "Monsoon preparation", "Drainage management", "Pest control"},
			},
		},
		{
			Name: "Rabi", StartMonth: 11, EndMonth: 3,
			Characteristics: "Winter season with moderate temperatures",
			SuitableCrops:   "Wheat,Mustard,Peas,Potato,Chickpea",
			RainfallPattern: "Light winter rainfall (50-250mm)", TemperatureRange: "15-25°C",
			HumidityRange: "40-60%", DaylightHours: "10-11 hours", WindPattern: "Cool dry winds",
			FarmingActivities: entities.FarmingActivities{
				LandPreparation: "October", Sowing: "November", Harvesting: "March-April",
				KeyActivities: []string{"Soil preparation", "Irrigation planning", "Frost protection", "Nutrient management"},
			},
		},
		{
			Name: "Zaid", StartMonth: 4, EndMonth: 5,
			Characteristics: "Summer season between Rabi and Kharif",
			SuitableCrops:   "Vegetables,Fruits,Fodder crops",
			RainfallPattern: "Minimal rainfall (0-100mm)", TemperatureRange: "30-40°C",
			HumidityRange: "30-40%", DaylightHours: "13-14 hours", WindPattern: "Hot dry winds",
			FarmingActivities: entities.FarmingActivities{
				LandPreparation: "February", Sowing: "March", Harvesting: "May-June",
				KeyActivities: []string{"Irrigation management", "Heat protection", "Soil moisture conservation", "Short duration crop planning"},
			},
		},
	}
}
