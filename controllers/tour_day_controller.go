package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tourism/config"
	"tourism/dto"
	apperrors "tourism/errors"
	"tourism/models"
	"tourism/response"
	"tourism/utils"
)

// orderItems sắp xếp item trong ngày theo thứ tự tạo
func orderItems(tx *gorm.DB) *gorm.DB {
	return tx.Order("created_at ASC")
}

// GetTourDays trả về các ngày của tour kèm item, theo thứ tự ngày
func GetTourDays(c *gin.Context) {
	tourID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "day.tour_id_required")
		return
	}

	var days []models.TourDay
	err = config.DB.
		Where("tour_id = ?", tourID).
		Preload("Items", orderItems).
		Order("day_number ASC").
		Find(&days).Error
	if err != nil {
		utils.LogError("GetTourDays: query days: %v", err)
		response.ServerError(c, "day.get_error")
		return
	}

	response.OK(c, gin.H{
		"days":  days,
		"count": len(days),
	})
}

// CreateTourDay thêm một ngày vào lịch trình tour
func CreateTourDay(c *gin.Context) {
	tourID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "day.tour_id_required")
		return
	}

	exists, err := tourExists(uint(tourID))
	if err != nil {
		utils.LogError("CreateTourDay: check tour %d: %v", tourID, err)
		response.ServerError(c, "day.create_error")
		return
	}
	if !exists {
		response.NotFound(c, "tour.not_found")
		return
	}

	var input dto.CreateTourDayInput
	if err := c.ShouldBindJSON(&input); err != nil || input.DayNumber == nil {
		response.BadRequest(c, "day.day_number_required")
		return
	}

	day := models.TourDay{
		TourID:    uint(tourID),
		DayNumber: *input.DayNumber,
		Title:     input.Title,
	}
	if err := config.DB.Create(&day).Error; err != nil {
		utils.LogError("CreateTourDay: create day: %v", err)
		response.ServerError(c, "day.create_error")
		return
	}

	response.Created(c, gin.H{
		"message": response.Message(c, "day.created"),
		"day":     day,
	})
}

// UpdateTourDay cập nhật một phần ngày trong lịch trình
func UpdateTourDay(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("dayId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "day.id_required")
		return
	}

	var day models.TourDay
	if err := config.DB.First(&day, id).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "day.not_found")
			return
		}
		utils.LogError("UpdateTourDay: query day %d: %v", id, err)
		response.ServerError(c, "day.update_error")
		return
	}

	var input dto.UpdateTourDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "day.day_number_required")
		return
	}

	if updates := input.Updates(); len(updates) > 0 {
		if err := config.DB.Model(&day).Updates(updates).Error; err != nil {
			utils.LogError("UpdateTourDay: update day %d: %v", id, err)
			response.ServerError(c, "day.update_error")
			return
		}
	}

	if err := config.DB.Preload("Items", orderItems).First(&day, id).Error; err != nil {
		utils.LogError("UpdateTourDay: reload day %d: %v", id, err)
		response.ServerError(c, "day.update_error")
		return
	}

	response.OK(c, gin.H{
		"message": response.Message(c, "day.updated"),
		"day":     day,
	})
}

// DeleteTourDay xoá ngày khỏi lịch trình, item xoá theo cascade
func DeleteTourDay(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("dayId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "day.id_required")
		return
	}

	result := config.DB.Delete(&models.TourDay{}, id)
	if result.Error != nil {
		utils.LogError("DeleteTourDay: delete day %d: %v", id, result.Error)
		response.ServerError(c, "day.delete_error")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "day.not_found")
		return
	}

	response.OK(c, gin.H{"message": response.Message(c, "day.deleted")})
}
