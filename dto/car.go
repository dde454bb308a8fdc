package dto

import (
	"time"

	"tourism/models"
	"tourism/services"
)

type CreateCarInput struct {
	Category     string   `json:"category"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Price        *float64 `json:"price"`
	Capacity     *int     `json:"capacity"`
	Drive        string   `json:"drive"`
	Year         *int     `json:"year"`
	Places       *int     `json:"places"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuelType"`
	Images       []string `json:"images"`
	TourID       *uint    `json:"tourId"`
}

// UpdateCarInput là tập trường cho phép sửa của car.
// TourID = 0 gỡ liên kết với tour.
type UpdateCarInput struct {
	Category     *string   `json:"category"`
	Brand        *string   `json:"brand"`
	Model        *string   `json:"model"`
	Price        *float64  `json:"price"`
	Capacity     *int      `json:"capacity"`
	Drive        *string   `json:"drive"`
	Year         *int      `json:"year"`
	Places       *int      `json:"places"`
	Transmission *string   `json:"transmission"`
	FuelType     *string   `json:"fuelType"`
	Images       *[]string `json:"images"`
	TourID       *uint     `json:"tourId"`
}

// Updates build map patch cho gorm từ các trường được set
func (in UpdateCarInput) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Brand != nil {
		updates["brand"] = *in.Brand
	}
	if in.Model != nil {
		updates["model"] = *in.Model
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Capacity != nil {
		updates["capacity"] = *in.Capacity
	}
	if in.Drive != nil {
		updates["drive"] = *in.Drive
	}
	if in.Year != nil {
		updates["year"] = *in.Year
	}
	if in.Places != nil {
		updates["places"] = *in.Places
	}
	if in.Transmission != nil {
		updates["transmission"] = *in.Transmission
	}
	if in.FuelType != nil {
		updates["fuel_type"] = *in.FuelType
	}
	if in.Images != nil {
		updates["images"] = toStringArray(*in.Images)
	}
	if in.TourID != nil {
		if *in.TourID == 0 {
			updates["tour_id"] = nil
		} else {
			updates["tour_id"] = *in.TourID
		}
	}
	return updates
}

// CarCount số lượng quan hệ đi kèm payload car
type CarCount struct {
	Favorites int `json:"favorites"`
}

type CarReviewResponse struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
	User      UserInfo  `json:"user"`
}

func NewCarReviewResponse(r models.CarReview) CarReviewResponse {
	return CarReviewResponse{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Images:    r.Images,
		CreatedAt: r.CreatedAt,
		User:      NewUserInfo(r.User),
	}
}

// CarResponse là payload đầy đủ của car kèm avgRating và counts
type CarResponse struct {
	ID           uint                `json:"id"`
	Category     string              `json:"category"`
	Brand        string              `json:"brand"`
	Model        string              `json:"model"`
	Price        float64             `json:"price"`
	Capacity     int                 `json:"capacity"`
	Drive        string              `json:"drive"`
	Year         int                 `json:"year"`
	Places       int                 `json:"places"`
	Transmission string              `json:"transmission"`
	FuelType     string              `json:"fuelType"`
	Images       []string            `json:"images"`
	TourID       *uint               `json:"tourId"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	Tour         *TourSummary        `json:"tour,omitempty"`
	Reviews      []CarReviewResponse `json:"reviews"`
	AvgRating    float64             `json:"avgRating"`
	Count        CarCount            `json:"_count"`
}

func NewCarResponse(car models.Car) CarResponse {
	reviews := make([]CarReviewResponse, 0, len(car.Reviews))
	for _, r := range car.Reviews {
		reviews = append(reviews, NewCarReviewResponse(r))
	}

	var tour *TourSummary
	if car.Tour != nil {
		tour = &TourSummary{
			ID:   car.Tour.ID,
			Name: car.Tour.Name,
			City: car.Tour.City,
		}
	}

	return CarResponse{
		ID:           car.ID,
		Category:     car.Category,
		Brand:        car.Brand,
		Model:        car.Model,
		Price:        car.Price,
		Capacity:     car.Capacity,
		Drive:        car.Drive,
		Year:         car.Year,
		Places:       car.Places,
		Transmission: car.Transmission,
		FuelType:     car.FuelType,
		Images:       car.Images,
		TourID:       car.TourID,
		CreatedAt:    car.CreatedAt,
		UpdatedAt:    car.UpdatedAt,
		Tour:         tour,
		Reviews:      reviews,
		AvgRating:    services.AverageRating(services.CarReviewRatings(car.Reviews)),
		Count: CarCount{
			Favorites: len(car.Favorites),
		},
	}
}

// NewCarResponses map danh sách car sang response
func NewCarResponses(cars []models.Car) []CarResponse {
	result := make([]CarResponse, 0, len(cars))
	for _, car := range cars {
		result = append(result, NewCarResponse(car))
	}
	return result
}
