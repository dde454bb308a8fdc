package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tourism/config"
	"tourism/models"
	"tourism/response"
	"tourism/utils"
)

// GetTourProgram trả về toàn bộ lịch trình tour: các ngày theo thứ tự
// kèm hoạt động của từng ngày
func GetTourProgram(c *gin.Context) {
	tourID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "tour.id_required")
		return
	}

	exists, err := tourExists(uint(tourID))
	if err != nil {
		utils.LogError("GetTourProgram: check tour %d: %v", tourID, err)
		response.ServerError(c, "program.get_error")
		return
	}
	if !exists {
		response.NotFound(c, "tour.not_found")
		return
	}

	var days []models.TourDay
	err = config.DB.
		Where("tour_id = ?", tourID).
		Preload("Items", orderItems).
		Order("day_number ASC").
		Find(&days).Error
	if err != nil {
		utils.LogError("GetTourProgram: query program: %v", err)
		response.ServerError(c, "program.get_error")
		return
	}

	response.OK(c, gin.H{
		"program": days,
		"count":   len(days),
	})
}
