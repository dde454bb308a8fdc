package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/models"
)

func strPtr(s string) *string       { return &s }
func intPtr(n int) *int             { return &n }
func floatPtr(n float64) *float64   { return &n }
func uintPtr(n uint) *uint          { return &n }
func slicePtr(s []string) *[]string { return &s }

func TestUpdateTourInputUpdates(t *testing.T) {
	input := UpdateTourInput{
		Name:      strPtr("New name"),
		Price:     floatPtr(300),
		MaxPeople: intPtr(15),
		Images:    slicePtr([]string{"a.jpg"}),
	}

	updates := input.Updates()

	assert.Len(t, updates, 4)
	assert.Equal(t, "New name", updates["name"])
	assert.Equal(t, 300.0, updates["price"])
	assert.Equal(t, 15, updates["max_people"])
	assert.Contains(t, updates, "images")
	assert.NotContains(t, updates, "description")
	assert.NotContains(t, updates, "city")
}

func TestUpdateTourInputUpdates_Empty(t *testing.T) {
	assert.Empty(t, UpdateTourInput{}.Updates())
}

func TestUpdateCarInputUpdates_TourLink(t *testing.T) {
	linked := UpdateCarInput{TourID: uintPtr(5)}
	assert.Equal(t, uint(5), linked.Updates()["tour_id"])

	// tourId = 0 gỡ liên kết với tour
	detached := UpdateCarInput{TourID: uintPtr(0)}
	updates := detached.Updates()
	require.Contains(t, updates, "tour_id")
	assert.Nil(t, updates["tour_id"])

	untouched := UpdateCarInput{}
	assert.NotContains(t, untouched.Updates(), "tour_id")
}

func TestNewTourResponse(t *testing.T) {
	tour := models.Tour{
		ID:    1,
		Name:  "Issyk-Kul Adventure",
		Price: 250,
		Reviews: []models.TourReview{
			{ID: 1, Rating: 3, User: models.User{ID: 2, Username: "alice"}},
			{ID: 2, Rating: 5, User: models.User{ID: 3, Username: "bob"}},
		},
		Favorites: []models.FavoriteTour{{ID: 1}, {ID: 2}, {ID: 3}},
	}

	resp := NewTourResponse(tour)

	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, 4.0, resp.AvgRating)
	assert.Equal(t, 2, resp.Count.Reviews)
	assert.Equal(t, 3, resp.Count.Favorites)
	require.Len(t, resp.Reviews, 2)
	assert.Equal(t, "alice", resp.Reviews[0].User.Username)
	assert.Empty(t, resp.Cars)
}

func TestNewTourResponse_NoReviews(t *testing.T) {
	resp := NewTourResponse(models.Tour{ID: 1})

	assert.Equal(t, 0.0, resp.AvgRating)
	assert.Equal(t, 0, resp.Count.Reviews)
	assert.NotNil(t, resp.Reviews)
}

func TestNewCarResponse(t *testing.T) {
	tourID := uint(9)
	car := models.Car{
		ID:     4,
		Model:  "Land Cruiser",
		Brand:  "Toyota",
		TourID: &tourID,
		Tour:   &models.Tour{ID: 9, Name: "Issyk-Kul Adventure", City: "Karakol"},
		Reviews: []models.CarReview{
			{ID: 1, Rating: 2, User: models.User{ID: 2, Username: "alice"}},
		},
		Favorites: []models.FavoriteCar{{ID: 1}},
	}

	resp := NewCarResponse(car)

	assert.Equal(t, uint(4), resp.ID)
	assert.Equal(t, 2.0, resp.AvgRating)
	assert.Equal(t, 1, resp.Count.Favorites)
	require.NotNil(t, resp.Tour)
	assert.Equal(t, uint(9), resp.Tour.ID)
	assert.Equal(t, "Karakol", resp.Tour.City)
}

func TestNewCarResponse_NoTour(t *testing.T) {
	resp := NewCarResponse(models.Car{ID: 4})
	assert.Nil(t, resp.Tour)
	assert.Nil(t, resp.TourID)
}

func TestNewFavoriteTourItem(t *testing.T) {
	fav := models.FavoriteTour{
		ID:     11,
		UserID: 2,
		TourID: 1,
		Tour:   models.Tour{ID: 1, Name: "Issyk-Kul Adventure"},
	}

	item := NewFavoriteTourItem(fav)

	assert.Equal(t, uint(11), item.FavoriteID)
	assert.Equal(t, uint(1), item.ID)
	assert.Equal(t, "Issyk-Kul Adventure", item.Name)
	assert.Equal(t, fav.CreatedAt, item.AddedAt)
}
