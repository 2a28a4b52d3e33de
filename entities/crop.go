package entities

import "time"

// Crop is one row of the crop catalog table. Seasons and SoilTypes are comma
// separated; Nutrients holds a JSON object such as {"nitrogen":"high"}.
type Crop struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	RainMin     float64 `json:"rain_min"`
	RainMax     float64 `json:"rain_max"`
	PHMin       float64 `gorm:"column:ph_min" json:"ph_min"`
	PHMax       float64 `gorm:"column:ph_max" json:"ph_max"`
	HumidityMin float64 `json:"humidity_min"`
	HumidityMax float64 `json:"humidity_max"`
	Seasons     string  `json:"seasons"`
	SoilTypes   string  `json:"soil_types"`
	Nutrients   string  `json:"nutrients"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
