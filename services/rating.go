package services

import (
	"math"

	"tourism/models"
)

// AverageRating tính điểm trung bình của một resource, làm tròn một chữ số
// thập phân theo kiểu half away from zero (2.35 -> 2.4). Slice rỗng trả về 0.
// Chỉ tính trên review của chính resource đó, không gộp giữa các resource.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}

// TourReviewRatings lấy danh sách điểm từ review của tour
func TourReviewRatings(reviews []models.TourReview) []int {
	ratings := make([]int, 0, len(reviews))
	for _, r := range reviews {
		ratings = append(ratings, r.Rating)
	}
	return ratings
}

// CarReviewRatings lấy danh sách điểm từ review của car
func CarReviewRatings(reviews []models.CarReview) []int {
	ratings := make([]int, 0, len(reviews))
	for _, r := range reviews {
		ratings = append(ratings, r.Rating)
	}
	return ratings
}
