package entities

type Season struct {
	ID                uint              `gorm:"primaryKey" json:"id"`
	Name              string            `gorm:"uniqueIndex;not null" json:"name"`
	StartMonth        int               `json:"start_month"`
	EndMonth          int               `json:"end_month"`
	Characteristics   string            `json:"characteristics"`
	SuitableCrops     string            `json:"suitable_crops"`
	RainfallPattern   string            `json:"rainfall_pattern"`
	TemperatureRange  string            `json:"temperature_range"`
	HumidityRange     string            `json:"humidity_range"`
	DaylightHours     string            `json:"daylight_hours"`
	WindPattern       string            `json:"wind_pattern"`
	FarmingActivities FarmingActivities `gorm:"serializer:json" json:"farming_activities"`
}

type FarmingActivities struct {
	LandPreparation string   `json:"land_preparation"`
	Sowing          string   `json:"sowing"`
	Harvesting      string   `json:"harvesting"`
	KeyActivities   []string `json:"key_activities"`
}
