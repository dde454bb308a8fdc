package dto

import (
	"time"

	"tourism/models"
)

// FavoriteTourItem là tour trong danh sách yêu thích, kèm thông tin
// về chính bản ghi favorite
type FavoriteTourItem struct {
	TourResponse
	FavoriteID uint      `json:"favoriteId"`
	AddedAt    time.Time `json:"addedAt"`
}

func NewFavoriteTourItem(fav models.FavoriteTour) FavoriteTourItem {
	return FavoriteTourItem{
		TourResponse: NewTourResponse(fav.Tour),
		FavoriteID:   fav.ID,
		AddedAt:      fav.CreatedAt,
	}
}

// FavoriteCarItem là car trong danh sách yêu thích
type FavoriteCarItem struct {
	CarResponse
	FavoriteID uint      `json:"favoriteId"`
	AddedAt    time.Time `json:"addedAt"`
}

func NewFavoriteCarItem(fav models.FavoriteCar) FavoriteCarItem {
	return FavoriteCarItem{
		CarResponse: NewCarResponse(fav.Car),
		FavoriteID:  fav.ID,
		AddedAt:     fav.CreatedAt,
	}
}
