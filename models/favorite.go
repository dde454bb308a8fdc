package models

import "time"

// FavoriteTour liên kết user với tour đã lưu.
// Unique index (user_id, tour_id): mỗi tour chỉ được lưu một lần cho mỗi user.
type FavoriteTour struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_tours_user_tour" json:"userId"`
	TourID    uint      `gorm:"not null;uniqueIndex:idx_favorite_tours_user_tour" json:"tourId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tour Tour `gorm:"foreignKey:TourID" json:"tour,omitempty"`
}

type FavoriteCar struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_cars_user_car" json:"userId"`
	CarID     uint      `gorm:"not null;uniqueIndex:idx_favorite_cars_user_car" json:"carId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Car  Car  `gorm:"foreignKey:CarID" json:"car,omitempty"`
}
