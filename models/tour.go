package models

import (
	"time"

	"github.com/lib/pq"
)

type Tour struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Price       float64        `gorm:"not null" json:"price"`
	Description string         `gorm:"type:text" json:"description"`
	City        string         `gorm:"index" json:"city"`
	Category    string         `gorm:"index" json:"category"`
	Date        string         `json:"date"`
	Duration    int            `json:"duration"`
	MaxPeople   int            `json:"maxPeople"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`

	Cars      []Car          `gorm:"foreignKey:TourID;constraint:OnDelete:SET NULL" json:"cars,omitempty"`
	Reviews   []TourReview   `gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Favorites []FavoriteTour `gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	Days      []TourDay      `gorm:"foreignKey:TourID;constraint:OnDelete:CASCADE" json:"days,omitempty"`
}
