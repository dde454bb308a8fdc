package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"tourism/builders"
	"tourism/config"
	"tourism/dto"
	apperrors "tourism/errors"
	"tourism/models"
	"tourism/response"
	"tourism/services"
	"tourism/utils"
	"tourism/validator"
)

// preloadTour gắn các quan hệ cần cho TourResponse
func preloadTour(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Reviews.User").
		Preload("Favorites").
		Preload("Cars").
		Preload("Cars.Reviews.User").
		Preload("Cars.Favorites")
}

// GetAllTours trả về danh sách tour theo filter và sort từ query params
func GetAllTours(c *gin.Context) {
	filter := builders.TourFilterFromQuery(c.Request.URL.Query())

	var tours []models.Tour
	err := preloadTour(config.DB).Scopes(filter.Scope()).Find(&tours).Error
	if err != nil {
		utils.LogError("GetAllTours: query tours: %v", err)
		response.ServerError(c, "tour.get_all_error")
		return
	}

	response.OK(c, gin.H{
		"tours": dto.NewTourResponses(tours),
		"count": len(tours),
	})
}

// GetTourByID trả về một tour kèm cars, reviews và counts
func GetTourByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "tour.id_required")
		return
	}

	var tour models.Tour
	if err := preloadTour(config.DB).First(&tour, id).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "tour.not_found")
			return
		}
		utils.LogError("GetTourByID: query tour %d: %v", id, err)
		response.ServerError(c, "tour.get_one_error")
		return
	}

	response.OK(c, gin.H{"tour": dto.NewTourResponse(tour)})
}

// CreateTour tạo tour mới
func CreateTour(c *gin.Context) {
	var input dto.CreateTourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "tour.fill_required_fields")
		return
	}

	if key := validator.ValidateCreateTour(input); key != "" {
		response.BadRequest(c, key)
		return
	}

	tour := models.Tour{
		Name:        input.Name,
		Price:       *input.Price,
		Description: input.Description,
		City:        input.City,
		Category:    input.Category,
		Date:        input.Date,
		Duration:    *input.Duration,
		MaxPeople:   *input.MaxPeople,
		Images:      pq.StringArray(input.Images),
	}
	if err := config.DB.Create(&tour).Error; err != nil {
		utils.LogError("CreateTour: create tour: %v", err)
		response.ServerError(c, "tour.create_error")
		return
	}

	response.Created(c, gin.H{
		"message": response.Message(c, "tour.created"),
		"tour":    dto.NewTourResponse(tour),
	})
}

// UpdateTour cập nhật một phần tour, trường không gửi giữ nguyên
func UpdateTour(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "tour.id_required")
		return
	}

	var tour models.Tour
	if err := config.DB.First(&tour, id).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "tour.not_found")
			return
		}
		utils.LogError("UpdateTour: query tour %d: %v", id, err)
		response.ServerError(c, "tour.update_error")
		return
	}

	var input dto.UpdateTourInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "tour.fill_required_fields")
		return
	}

	if updates := input.Updates(); len(updates) > 0 {
		if err := config.DB.Model(&tour).Updates(updates).Error; err != nil {
			utils.LogError("UpdateTour: update tour %d: %v", id, err)
			response.ServerError(c, "tour.update_error")
			return
		}
	}

	if err := preloadTour(config.DB).First(&tour, id).Error; err != nil {
		utils.LogError("UpdateTour: reload tour %d: %v", id, err)
		response.ServerError(c, "tour.update_error")
		return
	}

	response.OK(c, gin.H{
		"message": response.Message(c, "tour.updated"),
		"tour":    dto.NewTourResponse(tour),
	})
}

// DeleteTour xoá tour, reviews và favorites xoá theo cascade,
// cars được gỡ liên kết
func DeleteTour(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "tour.id_required")
		return
	}

	result := config.DB.Delete(&models.Tour{}, id)
	if result.Error != nil {
		utils.LogError("DeleteTour: delete tour %d: %v", id, result.Error)
		response.ServerError(c, "tour.delete_error")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "tour.not_found")
		return
	}

	response.OK(c, gin.H{"message": response.Message(c, "tour.deleted")})
}

// SearchTours tìm tour theo query mờ, kết quả xếp theo độ phù hợp
func SearchTours(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "tour.search_query_required")
		return
	}

	var tours []models.Tour
	if err := preloadTour(config.DB).Find(&tours).Error; err != nil {
		utils.LogError("SearchTours: query tours: %v", err)
		response.ServerError(c, "tour.search_error")
		return
	}

	matched := services.SearchTours(tours, query)

	response.OK(c, gin.H{
		"tours": dto.NewTourResponses(matched),
		"count": len(matched),
	})
}
