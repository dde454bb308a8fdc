package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tourism/models"
)

var DB *gorm.DB

// ConnectDB kết nối Postgres qua DATABASE_URL
func ConnectDB() {
	dsn := GetEnv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Fail to connect to db : %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateDB tạo/cập nhật schema cho toàn bộ model
func MigrateDB() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Tour{},
		&models.Car{},
		&models.TourReview{},
		&models.CarReview{},
		&models.SiteReview{},
		&models.FavoriteTour{},
		&models.FavoriteCar{},
		&models.TourDay{},
		&models.TourDayItem{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}
