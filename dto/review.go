package dto

import (
	"time"

	"tourism/models"
)

// ReviewInput là body tạo review cho tour hoặc car
type ReviewInput struct {
	Rating  *int     `json:"rating"`
	Comment string   `json:"comment"`
	Images  []string `json:"images"`
}

// SiteReviewInput là body tạo review cho nền tảng
type SiteReviewInput struct {
	Rating   *int   `json:"rating"`
	Comment  string `json:"comment"`
	Category string `json:"category"`
}

// TourReviewCreated là payload review tour vừa tạo, kèm tóm tắt tour
type TourReviewCreated struct {
	TourReviewResponse
	Tour TourSummary `json:"tour"`
}

func NewTourReviewCreated(r models.TourReview) TourReviewCreated {
	return TourReviewCreated{
		TourReviewResponse: NewTourReviewResponse(r),
		Tour: TourSummary{
			ID:   r.Tour.ID,
			Name: r.Tour.Name,
		},
	}
}

// CarReviewCreated là payload review car vừa tạo, kèm tóm tắt car
type CarReviewCreated struct {
	CarReviewResponse
	Car CarSummary `json:"car"`
}

func NewCarReviewCreated(r models.CarReview) CarReviewCreated {
	return CarReviewCreated{
		CarReviewResponse: NewCarReviewResponse(r),
		Car: CarSummary{
			ID:    r.Car.ID,
			Model: r.Car.Model,
			Brand: r.Car.Brand,
		},
	}
}

type SiteReviewResponse struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	User      UserInfo  `json:"user"`
}

func NewSiteReviewResponse(r models.SiteReview) SiteReviewResponse {
	return SiteReviewResponse{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
		User:      NewUserInfo(r.User),
	}
}

// NewSiteReviewResponses map danh sách site review sang response
func NewSiteReviewResponses(reviews []models.SiteReview) []SiteReviewResponse {
	result := make([]SiteReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, NewSiteReviewResponse(r))
	}
	return result
}
