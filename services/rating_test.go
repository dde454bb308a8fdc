package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourism/models"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []int
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 4.0},
		{"whole average", []int{3, 5}, 4.0},
		{"rounded down", []int{1, 2, 2}, 1.7},
		{"rounded up", []int{2, 3, 2}, 2.3},
		{"half rounds away from zero", []int{1, 2, 2, 4}, 2.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AverageRating(tt.ratings))
		})
	}
}

func TestReviewRatings(t *testing.T) {
	tourReviews := []models.TourReview{{Rating: 5}, {Rating: 3}}
	assert.Equal(t, []int{5, 3}, TourReviewRatings(tourReviews))

	carReviews := []models.CarReview{{Rating: 1}}
	assert.Equal(t, []int{1}, CarReviewRatings(carReviews))

	assert.Empty(t, TourReviewRatings(nil))
}
