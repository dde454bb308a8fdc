package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"tourism/config"
	"tourism/constants"
	"tourism/dto"
	apperrors "tourism/errors"
	"tourism/middleware"
	"tourism/models"
	"tourism/response"
	"tourism/utils"
	"tourism/validator"
)

func isSiteReviewCategory(category string) bool {
	for _, known := range constants.SiteReviewCategories {
		if category == known {
			return true
		}
	}
	return false
}

// AddTourReview tạo review cho tour, mỗi user một review cho mỗi tour
func AddTourReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	tourID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "review.tour_id_required")
		return
	}

	var input dto.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "review.rating_comment_required")
		return
	}
	if key := validator.ValidateReview(input); key != "" {
		response.BadRequest(c, key)
		return
	}

	exists, err := tourExists(uint(tourID))
	if err != nil {
		utils.LogError("AddTourReview: check tour %d: %v", tourID, err)
		response.ServerError(c, "review.create_error")
		return
	}
	if !exists {
		response.NotFound(c, "review.tour_not_found")
		return
	}

	// Pre-check cho UX, unique constraint (tour_id, user_id) mới là
	// nguồn enforce
	var count int64
	err = config.DB.Model(&models.TourReview{}).
		Where("tour_id = ? AND user_id = ?", tourID, userID).
		Count(&count).Error
	if err != nil {
		utils.LogError("AddTourReview: check existing review: %v", err)
		response.ServerError(c, "review.create_error")
		return
	}
	if count > 0 {
		response.BadRequest(c, "review.already_left")
		return
	}

	review := models.TourReview{
		TourID:  uint(tourID),
		UserID:  userID,
		Rating:  *input.Rating,
		Comment: input.Comment,
		Images:  pq.StringArray(input.Images),
	}
	if err := config.DB.Create(&review).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			response.Conflict(c, "review.already_left")
			return
		}
		utils.LogError("AddTourReview: create review: %v", err)
		response.ServerError(c, "review.create_error")
		return
	}

	if err := config.DB.Preload("User").Preload("Tour").First(&review, review.ID).Error; err != nil {
		utils.LogError("AddTourReview: reload review %d: %v", review.ID, err)
		response.ServerError(c, "review.create_error")
		return
	}

	response.Created(c, gin.H{
		"message": response.Message(c, "review.created"),
		"review":  dto.NewTourReviewCreated(review),
	})
}

// DeleteTourReview xoá review tour, chỉ tác giả mới xoá được
func DeleteTourReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "review.id_required")
		return
	}

	var review models.TourReview
	if err := config.DB.First(&review, id).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "review.not_found")
			return
		}
		utils.LogError("DeleteTourReview: query review %d: %v", id, err)
		response.ServerError(c, "review.delete_error")
		return
	}

	if review.UserID != userID {
		response.Forbidden(c, "review.forbidden")
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		utils.LogError("DeleteTourReview: delete review %d: %v", id, err)
		response.ServerError(c, "review.delete_error")
		return
	}

	response.OK(c, gin.H{"message": response.Message(c, "review.deleted")})
}

// AddCarReview tạo review cho car, mỗi user một review cho mỗi car
func AddCarReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	carID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "review.car_id_required")
		return
	}

	var input dto.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "review.rating_comment_required")
		return
	}
	if key := validator.ValidateReview(input); key != "" {
		response.BadRequest(c, key)
		return
	}

	var carCount int64
	err = config.DB.Model(&models.Car{}).Where("id = ?", carID).Count(&carCount).Error
	if err != nil {
		utils.LogError("AddCarReview: check car %d: %v", carID, err)
		response.ServerError(c, "review.create_error")
		return
	}
	if carCount == 0 {
		response.NotFound(c, "review.car_not_found")
		return
	}

	var count int64
	err = config.DB.Model(&models.CarReview{}).
		Where("car_id = ? AND user_id = ?", carID, userID).
		Count(&count).Error
	if err != nil {
		utils.LogError("AddCarReview: check existing review: %v", err)
		response.ServerError(c, "review.create_error")
		return
	}
	if count > 0 {
		response.BadRequest(c, "review.already_left")
		return
	}

	review := models.CarReview{
		CarID:   uint(carID),
		UserID:  userID,
		Rating:  *input.Rating,
		Comment: input.Comment,
		Images:  pq.StringArray(input.Images),
	}
	if err := config.DB.Create(&review).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			response.Conflict(c, "review.already_left")
			return
		}
		utils.LogError("AddCarReview: create review: %v", err)
		response.ServerError(c, "review.create_error")
		return
	}

	if err := config.DB.Preload("User").Preload("Car").First(&review, review.ID).Error; err != nil {
		utils.LogError("AddCarReview: reload review %d: %v", review.ID, err)
		response.ServerError(c, "review.create_error")
		return
	}

	response.Created(c, gin.H{
		"message": response.Message(c, "review.created"),
		"review":  dto.NewCarReviewCreated(review),
	})
}

// DeleteCarReview xoá review car, chỉ tác giả mới xoá được
func DeleteCarReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "review.id_required")
		return
	}

	var review models.CarReview
	if err := config.DB.First(&review, id).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "review.not_found")
			return
		}
		utils.LogError("DeleteCarReview: query review %d: %v", id, err)
		response.ServerError(c, "review.delete_error")
		return
	}

	if review.UserID != userID {
		response.Forbidden(c, "review.forbidden")
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		utils.LogError("DeleteCarReview: delete review %d: %v", id, err)
		response.ServerError(c, "review.delete_error")
		return
	}

	response.OK(c, gin.H{"message": response.Message(c, "review.deleted")})
}

// GetAllSiteReviews trả về review nền tảng, lọc theo category nếu có
func GetAllSiteReviews(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !isSiteReviewCategory(category) {
		response.BadRequest(c, "review.invalid_category")
		return
	}

	query := config.DB.Preload("User").Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var reviews []models.SiteReview
	if err := query.Find(&reviews).Error; err != nil {
		utils.LogError("GetAllSiteReviews: query reviews: %v", err)
		response.ServerError(c, "review.get_all_error")
		return
	}

	response.OK(c, gin.H{
		"reviews": dto.NewSiteReviewResponses(reviews),
		"count":   len(reviews),
	})
}

// AddSiteReview tạo review cho nền tảng
func AddSiteReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	var input dto.SiteReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "review.fill_all_fields")
		return
	}
	if key := validator.ValidateSiteReview(input); key != "" {
		response.BadRequest(c, key)
		return
	}

	review := models.SiteReview{
		UserID:   userID,
		Rating:   *input.Rating,
		Comment:  input.Comment,
		Category: input.Category,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		utils.LogError("AddSiteReview: create review: %v", err)
		response.ServerError(c, "review.create_error")
		return
	}

	if err := config.DB.Preload("User").First(&review, review.ID).Error; err != nil {
		utils.LogError("AddSiteReview: reload review %d: %v", review.ID, err)
		response.ServerError(c, "review.create_error")
		return
	}

	response.Created(c, gin.H{
		"message": response.Message(c, "review.created"),
		"review":  dto.NewSiteReviewResponse(review),
	})
}

// DeleteSiteReview xoá review nền tảng, chỉ tác giả mới xoá được
func DeleteSiteReview(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "review.id_required")
		return
	}

	var review models.SiteReview
	if err := config.DB.First(&review, id).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "review.not_found")
			return
		}
		utils.LogError("DeleteSiteReview: query review %d: %v", id, err)
		response.ServerError(c, "review.delete_error")
		return
	}

	if review.UserID != userID {
		response.Forbidden(c, "review.forbidden")
		return
	}

	if err := config.DB.Delete(&review).Error; err != nil {
		utils.LogError("DeleteSiteReview: delete review %d: %v", id, err)
		response.ServerError(c, "review.delete_error")
		return
	}

	response.OK(c, gin.H{"message": response.Message(c, "review.deleted")})
}
