package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"tourism/config"
	"tourism/dto"
	apperrors "tourism/errors"
	"tourism/models"
	"tourism/response"
	"tourism/utils"
)

// GetTourDayItems trả về các hoạt động của một ngày, theo thứ tự tạo
func GetTourDayItems(c *gin.Context) {
	dayID, err := strconv.ParseUint(c.Param("dayId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "item.day_id_required")
		return
	}

	var items []models.TourDayItem
	err = config.DB.
		Where("day_id = ?", dayID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		utils.LogError("GetTourDayItems: query items: %v", err)
		response.ServerError(c, "item.get_error")
		return
	}

	response.OK(c, gin.H{
		"items": items,
		"count": len(items),
	})
}

// CreateTourDayItem thêm một hoạt động vào ngày
func CreateTourDayItem(c *gin.Context) {
	dayID, err := strconv.ParseUint(c.Param("dayId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "item.day_id_required")
		return
	}

	var dayCount int64
	err = config.DB.Model(&models.TourDay{}).Where("id = ?", dayID).Count(&dayCount).Error
	if err != nil {
		utils.LogError("CreateTourDayItem: check day %d: %v", dayID, err)
		response.ServerError(c, "item.create_error")
		return
	}
	if dayCount == 0 {
		response.NotFound(c, "day.not_found")
		return
	}

	var input dto.CreateTourDayItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "item.title_description_required")
		return
	}
	if input.Title == "" || input.Description == "" {
		response.BadRequest(c, "item.title_description_required")
		return
	}

	item := models.TourDayItem{
		DayID:       uint(dayID),
		Title:       input.Title,
		Description: input.Description,
		Images:      pq.StringArray(input.Images),
		PointStart:  input.PointStart,
		PointEnd:    input.PointEnd,
		Location:    input.Location,
		Price:       input.Price,
		Duration:    input.Duration,
		Complexity:  input.Complexity,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		utils.LogError("CreateTourDayItem: create item: %v", err)
		response.ServerError(c, "item.create_error")
		return
	}

	response.Created(c, gin.H{
		"message": response.Message(c, "item.created"),
		"item":    item,
	})
}

// UpdateTourDayItem cập nhật một phần hoạt động
func UpdateTourDayItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "item.id_required")
		return
	}

	var item models.TourDayItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "item.not_found")
			return
		}
		utils.LogError("UpdateTourDayItem: query item %d: %v", id, err)
		response.ServerError(c, "item.update_error")
		return
	}

	var input dto.UpdateTourDayItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "item.title_description_required")
		return
	}

	if updates := input.Updates(); len(updates) > 0 {
		if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
			utils.LogError("UpdateTourDayItem: update item %d: %v", id, err)
			response.ServerError(c, "item.update_error")
			return
		}
	}

	if err := config.DB.First(&item, id).Error; err != nil {
		utils.LogError("UpdateTourDayItem: reload item %d: %v", id, err)
		response.ServerError(c, "item.update_error")
		return
	}

	response.OK(c, gin.H{
		"message": response.Message(c, "item.updated"),
		"item":    item,
	})
}

// DeleteTourDayItem xoá hoạt động khỏi ngày
func DeleteTourDayItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "item.id_required")
		return
	}

	result := config.DB.Delete(&models.TourDayItem{}, id)
	if result.Error != nil {
		utils.LogError("DeleteTourDayItem: delete item %d: %v", id, result.Error)
		response.ServerError(c, "item.delete_error")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "item.not_found")
		return
	}

	response.OK(c, gin.H{"message": response.Message(c, "item.deleted")})
}
