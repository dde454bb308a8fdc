package dto

import (
	"time"

	"tourism/models"
	"tourism/services"
)

type CreateTourInput struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	Category    string   `json:"category"`
	Date        string   `json:"date"`
	Duration    *int     `json:"duration"`
	MaxPeople   *int     `json:"maxPeople"`
	Images      []string `json:"images"`
}

// UpdateTourInput là tập trường cho phép sửa của tour. Trường không có
// trong body giữ nguyên giá trị cũ; trường lạ bị bỏ qua khi bind.
type UpdateTourInput struct {
	Name        *string   `json:"name"`
	Price       *float64  `json:"price"`
	Description *string   `json:"description"`
	City        *string   `json:"city"`
	Category    *string   `json:"category"`
	Date        *string   `json:"date"`
	Duration    *int      `json:"duration"`
	MaxPeople   *int      `json:"maxPeople"`
	Images      *[]string `json:"images"`
}

// Updates build map patch cho gorm từ các trường được set
func (in UpdateTourInput) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.City != nil {
		updates["city"] = *in.City
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Date != nil {
		updates["date"] = *in.Date
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if in.MaxPeople != nil {
		updates["max_people"] = *in.MaxPeople
	}
	if in.Images != nil {
		updates["images"] = toStringArray(*in.Images)
	}
	return updates
}

// TourCount số lượng quan hệ đi kèm payload tour
type TourCount struct {
	Favorites int `json:"favorites"`
	Reviews   int `json:"reviews"`
}

type TourReviewResponse struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
	User      UserInfo  `json:"user"`
}

func NewTourReviewResponse(r models.TourReview) TourReviewResponse {
	return TourReviewResponse{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Images:    r.Images,
		CreatedAt: r.CreatedAt,
		User:      NewUserInfo(r.User),
	}
}

// TourResponse là payload đầy đủ của tour kèm avgRating và counts
type TourResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Price       float64              `json:"price"`
	Description string               `json:"description"`
	City        string               `json:"city"`
	Category    string               `json:"category"`
	Date        string               `json:"date"`
	Duration    int                  `json:"duration"`
	MaxPeople   int                  `json:"maxPeople"`
	Images      []string             `json:"images"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Cars        []CarResponse        `json:"cars,omitempty"`
	Reviews     []TourReviewResponse `json:"reviews"`
	AvgRating   float64              `json:"avgRating"`
	Count       TourCount            `json:"_count"`
}

func NewTourResponse(t models.Tour) TourResponse {
	reviews := make([]TourReviewResponse, 0, len(t.Reviews))
	for _, r := range t.Reviews {
		reviews = append(reviews, NewTourReviewResponse(r))
	}

	cars := make([]CarResponse, 0, len(t.Cars))
	for _, car := range t.Cars {
		cars = append(cars, NewCarResponse(car))
	}

	return TourResponse{
		ID:          t.ID,
		Name:        t.Name,
		Price:       t.Price,
		Description: t.Description,
		City:        t.City,
		Category:    t.Category,
		Date:        t.Date,
		Duration:    t.Duration,
		MaxPeople:   t.MaxPeople,
		Images:      t.Images,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Cars:        cars,
		Reviews:     reviews,
		AvgRating:   services.AverageRating(services.TourReviewRatings(t.Reviews)),
		Count: TourCount{
			Favorites: len(t.Favorites),
			Reviews:   len(t.Reviews),
		},
	}
}

// NewTourResponses map danh sách tour sang response
func NewTourResponses(tours []models.Tour) []TourResponse {
	result := make([]TourResponse, 0, len(tours))
	for _, t := range tours {
		result = append(result, NewTourResponse(t))
	}
	return result
}
