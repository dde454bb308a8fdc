package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tourism/config"
	"tourism/dto"
	apperrors "tourism/errors"
	"tourism/middleware"
	"tourism/models"
	"tourism/response"
	"tourism/utils"
)

// GetFavoriteTours trả về danh sách tour đã lưu của user, mới nhất trước
func GetFavoriteTours(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	// Preload đủ quan hệ để payload tour giống hệt GET /tours
	var favorites []models.FavoriteTour
	err := config.DB.
		Where("user_id = ?", userID).
		Preload("Tour.Reviews.User").
		Preload("Tour.Favorites").
		Preload("Tour.Cars").
		Preload("Tour.Cars.Reviews.User").
		Preload("Tour.Cars.Favorites").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		utils.LogError("GetFavoriteTours: query favorites: %v", err)
		response.ServerError(c, "favorite.get_tours_error")
		return
	}

	items := make([]dto.FavoriteTourItem, 0, len(favorites))
	for _, fav := range favorites {
		items = append(items, dto.NewFavoriteTourItem(fav))
	}

	response.OK(c, gin.H{
		"favorites": items,
		"count":     len(items),
	})
}

// AddFavoriteTour lưu tour vào danh sách yêu thích của user
func AddFavoriteTour(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	tourID, err := strconv.ParseUint(c.Param("tourId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "favorite.tour_id_required")
		return
	}

	exists, err := tourExists(uint(tourID))
	if err != nil {
		utils.LogError("AddFavoriteTour: check tour %d: %v", tourID, err)
		response.ServerError(c, "favorite.add_error")
		return
	}
	if !exists {
		response.NotFound(c, "favorite.tour_not_found")
		return
	}

	// Pre-check cho UX, unique constraint (user_id, tour_id) mới là
	// nguồn enforce
	var count int64
	err = config.DB.Model(&models.FavoriteTour{}).
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		Count(&count).Error
	if err != nil {
		utils.LogError("AddFavoriteTour: check existing favorite: %v", err)
		response.ServerError(c, "favorite.add_error")
		return
	}
	if count > 0 {
		response.BadRequest(c, "favorite.tour_already_added")
		return
	}

	favorite := models.FavoriteTour{UserID: userID, TourID: uint(tourID)}
	if err := config.DB.Create(&favorite).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			response.Conflict(c, "favorite.tour_already_added")
			return
		}
		utils.LogError("AddFavoriteTour: create favorite: %v", err)
		response.ServerError(c, "favorite.add_error")
		return
	}

	response.Created(c, gin.H{"message": response.Message(c, "favorite.tour_added")})
}

// RemoveFavoriteTour gỡ tour khỏi danh sách yêu thích của user
func RemoveFavoriteTour(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	tourID, err := strconv.ParseUint(c.Param("tourId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "favorite.tour_id_required")
		return
	}

	result := config.DB.
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		Delete(&models.FavoriteTour{})
	if result.Error != nil {
		utils.LogError("RemoveFavoriteTour: delete favorite: %v", result.Error)
		response.ServerError(c, "favorite.remove_error")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "favorite.tour_not_in_favorites")
		return
	}

	response.OK(c, gin.H{"message": response.Message(c, "favorite.tour_removed")})
}

// GetFavoriteCars trả về danh sách car đã lưu của user, mới nhất trước
func GetFavoriteCars(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	var favorites []models.FavoriteCar
	err := config.DB.
		Where("user_id = ?", userID).
		Preload("Car.Tour").
		Preload("Car.Reviews.User").
		Preload("Car.Favorites").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		utils.LogError("GetFavoriteCars: query favorites: %v", err)
		response.ServerError(c, "favorite.get_cars_error")
		return
	}

	items := make([]dto.FavoriteCarItem, 0, len(favorites))
	for _, fav := range favorites {
		items = append(items, dto.NewFavoriteCarItem(fav))
	}

	response.OK(c, gin.H{
		"favorites": items,
		"count":     len(items),
	})
}

// AddFavoriteCar lưu car vào danh sách yêu thích của user
func AddFavoriteCar(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	carID, err := strconv.ParseUint(c.Param("carId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "favorite.car_id_required")
		return
	}

	var carCount int64
	err = config.DB.Model(&models.Car{}).Where("id = ?", carID).Count(&carCount).Error
	if err != nil {
		utils.LogError("AddFavoriteCar: check car %d: %v", carID, err)
		response.ServerError(c, "favorite.add_error")
		return
	}
	if carCount == 0 {
		response.NotFound(c, "favorite.car_not_found")
		return
	}

	var count int64
	err = config.DB.Model(&models.FavoriteCar{}).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Count(&count).Error
	if err != nil {
		utils.LogError("AddFavoriteCar: check existing favorite: %v", err)
		response.ServerError(c, "favorite.add_error")
		return
	}
	if count > 0 {
		response.BadRequest(c, "favorite.car_already_added")
		return
	}

	favorite := models.FavoriteCar{UserID: userID, CarID: uint(carID)}
	if err := config.DB.Create(&favorite).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			response.Conflict(c, "favorite.car_already_added")
			return
		}
		utils.LogError("AddFavoriteCar: create favorite: %v", err)
		response.ServerError(c, "favorite.add_error")
		return
	}

	response.Created(c, gin.H{"message": response.Message(c, "favorite.car_added")})
}

// RemoveFavoriteCar gỡ car khỏi danh sách yêu thích của user
func RemoveFavoriteCar(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	carID, err := strconv.ParseUint(c.Param("carId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "favorite.car_id_required")
		return
	}

	result := config.DB.
		Where("user_id = ? AND car_id = ?", userID, carID).
		Delete(&models.FavoriteCar{})
	if result.Error != nil {
		utils.LogError("RemoveFavoriteCar: delete favorite: %v", result.Error)
		response.ServerError(c, "favorite.remove_error")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "favorite.car_not_in_favorites")
		return
	}

	response.OK(c, gin.H{"message": response.Message(c, "favorite.car_removed")})
}
