package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	Timezone       string
	DBPath         string
	CatalogFile    string
	SeasonCalendar string
	APIRateRPS     float64
	APIRateBurst   int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() AppConfig {
	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		v := get(k, "")
		if v == "" {
			return def
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			log.Printf("[cfg] %s=%q is not a positive number, using %v", k, v, def)
			return def
		}
		return f
	}
	getInt := func(k string, def int) int {
		v := get(k, "")
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Printf("[cfg] %s=%q is not a positive integer, using %d", k, v, def)
			return def
		}
		return n
	}

	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "Asia/Kolkata"),
		DBPath:         get("DB_PATH", "crops.db"),
		CatalogFile:    get("CATALOG_FILE", ""),
		SeasonCalendar: get("SEASON_CALENDAR", "three"),
		APIRateRPS:     getFloat("API_RATE_RPS", 5),
		APIRateBurst:   getInt("API_RATE_BURST", 10),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
