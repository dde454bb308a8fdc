package models

import (
	"time"

	"github.com/lib/pq"
)

// TourReview giữ đánh giá của một user cho một tour.
// Unique index (tour_id, user_id): mỗi user chỉ đánh giá một tour một lần.
type TourReview struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TourID    uint           `gorm:"not null;uniqueIndex:idx_tour_reviews_tour_user" json:"tourId"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_tour_reviews_tour_user" json:"userId"`
	Rating    int            `gorm:"not null" json:"rating"`
	Comment   string         `gorm:"type:text" json:"comment"`
	Images    pq.StringArray `gorm:"type:text[]" json:"images"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tour Tour `gorm:"foreignKey:TourID" json:"tour,omitempty"`
}

type CarReview struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CarID     uint           `gorm:"not null;uniqueIndex:idx_car_reviews_car_user" json:"carId"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_car_reviews_car_user" json:"userId"`
	Rating    int            `gorm:"not null" json:"rating"`
	Comment   string         `gorm:"type:text" json:"comment"`
	Images    pq.StringArray `gorm:"type:text[]" json:"images"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Car  Car  `gorm:"foreignKey:CarID" json:"car,omitempty"`
}

// SiteReview đánh giá chung cho nền tảng, phân loại theo category
// (service, website, support).
type SiteReview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"userId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Category  string    `gorm:"index;not null" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
