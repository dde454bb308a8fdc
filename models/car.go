package models

import (
	"time"

	"github.com/lib/pq"
)

type Car struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Category     string         `gorm:"index" json:"category"`
	Brand        string         `gorm:"index" json:"brand"`
	Model        string         `gorm:"not null" json:"model"`
	Price        float64        `gorm:"not null" json:"price"`
	Capacity     int            `json:"capacity"`
	Drive        string         `json:"drive"`
	Year         int            `json:"year"`
	Places       int            `json:"places"`
	Transmission string         `json:"transmission"`
	FuelType     string         `json:"fuelType"`
	Images       pq.StringArray `gorm:"type:text[]" json:"images"`
	TourID       *uint          `json:"tourId"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`

	Tour      *Tour         `gorm:"foreignKey:TourID" json:"tour,omitempty"`
	Reviews   []CarReview   `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Favorites []FavoriteCar `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}
