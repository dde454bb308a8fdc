package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	TourReviews   []TourReview   `gorm:"foreignKey:UserID" json:"tourReviews,omitempty"`
	CarReviews    []CarReview    `gorm:"foreignKey:UserID" json:"carReviews,omitempty"`
	SiteReviews   []SiteReview   `gorm:"foreignKey:UserID" json:"siteReviews,omitempty"`
	FavoriteTours []FavoriteTour `gorm:"foreignKey:UserID" json:"favoriteTours,omitempty"`
	FavoriteCars  []FavoriteCar  `gorm:"foreignKey:UserID" json:"favoriteCars,omitempty"`
}
