// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"croprec/entities"
)

// Open opens the sqlite file at path and migrates the catalog tables. A
// crops.db written by the older setup script is picked up as-is; AutoMigrate
// only adds the columns and indexes it lacks.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// sqlite serializes writers anyway; one connection keeps :memory: databases intact
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(
		&entities.Crop{},
		&entities.SoilType{},
		&entities.Season{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	log.Printf("[db] opened %s", path)
	return db, nil
}

// MustOpen is Open for process start-up.
func MustOpen(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	return db
}
