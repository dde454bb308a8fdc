package models

import (
	"time"

	"github.com/lib/pq"
)

// TourDay một ngày trong lịch trình tour, sắp xếp theo DayNumber.
type TourDay struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TourID    uint      `gorm:"not null;index" json:"tourId"`
	DayNumber int       `gorm:"not null" json:"dayNumber"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Items []TourDayItem `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TourDayItem một hoạt động trong ngày, sắp xếp theo thứ tự tạo.
type TourDayItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	DayID       uint           `gorm:"not null;index" json:"dayId"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	PointStart  *string        `json:"pointStart"`
	PointEnd    *string        `json:"pointEnd"`
	Location    *string        `json:"location"`
	Price       *float64       `json:"price"`
	Duration    *string        `json:"duration"`
	Complexity  *string        `json:"complexity"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}
