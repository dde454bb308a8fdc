package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	middlewares "tourism/middleware"
)

func favoriteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/users/favorites/tours", middlewares.AuthMiddleware(), GetFavoriteTours)
	return router
}

func TestGetFavoriteTours_IncludesCars(t *testing.T) {
	mock := setupMockDB(t)
	// Thứ tự các query preload của gorm không cố định
	mock.MatchExpectationsInOrder(false)
	router := favoriteRouter()

	mock.ExpectQuery(`SELECT \* FROM "favorite_tours" WHERE user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "tour_id", "created_at"}).
			AddRow(11, 7, 3, time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "tours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "city"}).
			AddRow(3, "Issyk-Kul Adventure", 250, "Karakol"))
	mock.ExpectQuery(`SELECT \* FROM "tour_reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "favorite_tours" WHERE "favorite_tours"\."tour_id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "cars"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "model", "brand", "tour_id"}).
			AddRow(21, "Land Cruiser", "Toyota", 3))
	mock.ExpectQuery(`SELECT \* FROM "car_reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "favorite_cars"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/favorites/tours", nil)
	req.Header.Set("Authorization", bearerToken(t, 7))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Payload tour trong favorites phải kèm cars như GET /tours
	assert.Contains(t, w.Body.String(), `"favoriteId":11`)
	assert.Contains(t, w.Body.String(), `"Land Cruiser"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
