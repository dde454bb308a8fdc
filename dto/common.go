package dto

import (
	"github.com/lib/pq"

	"tourism/models"
)

func toStringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

// UserInfo là thông tin công khai của tác giả review
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func NewUserInfo(u models.User) UserInfo {
	return UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

// TourSummary là thông tin rút gọn của tour khi nhúng vào payload khác
type TourSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

// CarSummary là thông tin rút gọn của car khi nhúng vào payload khác
type CarSummary struct {
	ID    uint   `json:"id"`
	Model string `json:"model"`
	Brand string `json:"brand"`
}
