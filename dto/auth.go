package dto

import (
	"time"

	"tourism/models"
)

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginInput struct {
	Token string `json:"token"`
}

// UserResponse là thông tin user trả về sau đăng ký/đăng nhập,
// không bao giờ chứa password hash
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

// MeCount số lượng favorite và review của user
type MeCount struct {
	FavoriteTours int64 `json:"favoriteTours"`
	FavoriteCars  int64 `json:"favoriteCars"`
	TourReviews   int64 `json:"tourReviews"`
	CarReviews    int64 `json:"carReviews"`
}

// MeResponse là payload của GET /auth/me
type MeResponse struct {
	UserResponse
	Count MeCount `json:"_count"`
}
