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
	"tourism/utils"
	"tourism/validator"
)

// preloadCar gắn các quan hệ cần cho CarResponse
func preloadCar(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Tour").
		Preload("Reviews.User").
		Preload("Favorites")
}

// tourExists kiểm tra tour tồn tại theo id
func tourExists(id uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Tour{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetAllCars trả về danh sách car theo filter và sort từ query params
func GetAllCars(c *gin.Context) {
	filter := builders.CarFilterFromQuery(c.Request.URL.Query())

	var cars []models.Car
	err := preloadCar(config.DB).Scopes(filter.Scope()).Find(&cars).Error
	if err != nil {
		utils.LogError("GetAllCars: query cars: %v", err)
		response.ServerError(c, "car.get_all_error")
		return
	}

	response.OK(c, gin.H{
		"cars":  dto.NewCarResponses(cars),
		"count": len(cars),
	})
}

// GetCarByID trả về một car kèm tour, reviews và counts
func GetCarByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "car.id_required")
		return
	}

	var car models.Car
	if err := preloadCar(config.DB).First(&car, id).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "car.not_found")
			return
		}
		utils.LogError("GetCarByID: query car %d: %v", id, err)
		response.ServerError(c, "car.get_one_error")
		return
	}

	response.OK(c, gin.H{"car": dto.NewCarResponse(car)})
}

// CreateCar tạo car mới, tourId nếu có phải trỏ tới tour tồn tại
func CreateCar(c *gin.Context) {
	var input dto.CreateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "car.fill_required_fields")
		return
	}

	if key := validator.ValidateCreateCar(input); key != "" {
		response.BadRequest(c, key)
		return
	}

	if input.TourID != nil {
		ok, err := tourExists(*input.TourID)
		if err != nil {
			utils.LogError("CreateCar: check tour %d: %v", *input.TourID, err)
			response.ServerError(c, "car.create_error")
			return
		}
		if !ok {
			response.BadRequest(c, "car.invalid_tour")
			return
		}
	}

	car := models.Car{
		Category:     input.Category,
		Brand:        input.Brand,
		Model:        input.Model,
		Price:        *input.Price,
		Capacity:     *input.Capacity,
		Drive:        input.Drive,
		Year:         *input.Year,
		Places:       *input.Places,
		Transmission: input.Transmission,
		FuelType:     input.FuelType,
		Images:       pq.StringArray(input.Images),
		TourID:       input.TourID,
	}
	if err := config.DB.Create(&car).Error; err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			response.BadRequest(c, "car.invalid_tour")
			return
		}
		utils.LogError("CreateCar: create car: %v", err)
		response.ServerError(c, "car.create_error")
		return
	}

	if err := preloadCar(config.DB).First(&car, car.ID).Error; err != nil {
		utils.LogError("CreateCar: reload car %d: %v", car.ID, err)
		response.ServerError(c, "car.create_error")
		return
	}

	response.Created(c, gin.H{
		"message": response.Message(c, "car.created"),
		"car":     dto.NewCarResponse(car),
	})
}

// UpdateCar cập nhật một phần car, tourId = 0 gỡ liên kết với tour
func UpdateCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "car.id_required")
		return
	}

	var car models.Car
	if err := config.DB.First(&car, id).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "car.not_found")
			return
		}
		utils.LogError("UpdateCar: query car %d: %v", id, err)
		response.ServerError(c, "car.update_error")
		return
	}

	var input dto.UpdateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "car.fill_required_fields")
		return
	}

	if input.TourID != nil && *input.TourID != 0 {
		ok, err := tourExists(*input.TourID)
		if err != nil {
			utils.LogError("UpdateCar: check tour %d: %v", *input.TourID, err)
			response.ServerError(c, "car.update_error")
			return
		}
		if !ok {
			response.BadRequest(c, "car.invalid_tour")
			return
		}
	}

	if updates := input.Updates(); len(updates) > 0 {
		if err := config.DB.Model(&car).Updates(updates).Error; err != nil {
			if apperrors.IsForeignKeyViolation(err) {
				response.BadRequest(c, "car.invalid_tour")
				return
			}
			utils.LogError("UpdateCar: update car %d: %v", id, err)
			response.ServerError(c, "car.update_error")
			return
		}
	}

	if err := preloadCar(config.DB).First(&car, id).Error; err != nil {
		utils.LogError("UpdateCar: reload car %d: %v", id, err)
		response.ServerError(c, "car.update_error")
		return
	}

	response.OK(c, gin.H{
		"message": response.Message(c, "car.updated"),
		"car":     dto.NewCarResponse(car),
	})
}

// DeleteCar xoá car, reviews và favorites xoá theo cascade
func DeleteCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "car.id_required")
		return
	}

	result := config.DB.Delete(&models.Car{}, id)
	if result.Error != nil {
		utils.LogError("DeleteCar: delete car %d: %v", id, result.Error)
		response.ServerError(c, "car.delete_error")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "car.not_found")
		return
	}

	response.OK(c, gin.H{"message": response.Message(c, "car.deleted")})
}
