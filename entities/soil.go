package entities

type SoilType struct {
	ID                  uint              `gorm:"primaryKey" json:"id"`
	Name                string            `gorm:"uniqueIndex;not null" json:"name"`
	Description         string            `json:"description"`
	Texture             string            `json:"texture"`
	Drainage            string            `json:"drainage"`
	WaterRetention      string            `json:"water_retention"`
	NutrientRetention   string            `json:"nutrient_retention"`
	PHMin               float64           `gorm:"column:ph_min" json:"ph_min"`
	PHMax               float64           `gorm:"column:ph_max" json:"ph_max"`
	OrganicMatter       string            `json:"organic_matter"`
	SuitableCrops       string            `json:"suitable_crops"`
	ManagementPractices string            `json:"management_practices"`
	Characteristics     map[string]string `gorm:"serializer:json" json:"characteristics"`
}
