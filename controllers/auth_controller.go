package controllers

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"tourism/config"
	"tourism/dto"
	apperrors "tourism/errors"
	"tourism/middleware"
	"tourism/models"
	"tourism/response"
	"tourism/services"
	"tourism/utils"
	"tourism/validator"
)

// Register xử lý đăng ký tài khoản mới
func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "auth.fill_all_fields")
		return
	}

	if key := validator.ValidateRegister(input); key != "" {
		response.BadRequest(c, key)
		return
	}

	// Pre-check cho UX, unique constraint ở DB mới là nguồn enforce
	var existing models.User
	err := config.DB.Where("email = ? OR username = ?", input.Email, input.Username).First(&existing).Error
	if err == nil {
		response.BadRequest(c, "auth.user_exists")
		return
	}
	if !apperrors.IsNotFound(err) {
		utils.LogError("Register: lookup user: %v", err)
		response.ServerError(c, "auth.register_error")
		return
	}

	hash, err := services.HashPassword(input.Password)
	if err != nil {
		utils.LogError("Register: hash password: %v", err)
		response.ServerError(c, "auth.register_error")
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			response.Conflict(c, "auth.user_exists")
			return
		}
		utils.LogError("Register: create user: %v", err)
		response.ServerError(c, "auth.register_error")
		return
	}

	token, err := services.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.LogError("Register: generate token: %v", err)
		response.ServerError(c, "auth.register_error")
		return
	}

	response.Created(c, gin.H{
		"message": response.Message(c, "auth.register_success"),
		"user":    dto.NewUserResponse(user),
		"token":   token,
	})
}

// Login xử lý đăng nhập bằng email và mật khẩu
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "auth.enter_email_password")
		return
	}

	if key := validator.ValidateLogin(input); key != "" {
		response.BadRequest(c, key)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "auth.user_not_found")
			return
		}
		utils.LogError("Login: lookup user: %v", err)
		response.ServerError(c, "auth.login_error")
		return
	}

	if !services.CheckPassword(input.Password, user.Password) {
		response.Unauthorized(c, "auth.invalid_password")
		return
	}

	token, err := services.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.LogError("Login: generate token: %v", err)
		response.ServerError(c, "auth.login_error")
		return
	}

	response.OK(c, gin.H{
		"message": response.Message(c, "auth.login_success"),
		"user":    dto.NewUserResponse(user),
		"token":   token,
	})
}

// GetMe trả về profile của user đã đăng nhập kèm số lượng favorite và review
func GetMe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "auth.not_authorized")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if apperrors.IsNotFound(err) {
			response.NotFound(c, "auth.user_not_found")
			return
		}
		utils.LogError("GetMe: lookup user: %v", err)
		response.ServerError(c, "auth.getme_error")
		return
	}

	me := dto.MeResponse{UserResponse: dto.NewUserResponse(user)}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.FavoriteTour{}, &me.Count.FavoriteTours},
		{&models.FavoriteCar{}, &me.Count.FavoriteCars},
		{&models.TourReview{}, &me.Count.TourReviews},
		{&models.CarReview{}, &me.Count.CarReviews},
	}
	for _, count := range counts {
		if err := config.DB.Model(count.model).Where("user_id = ?", userID).Count(count.dest).Error; err != nil {
			utils.LogError("GetMe: count relations: %v", err)
			response.ServerError(c, "auth.getme_error")
			return
		}
	}

	response.OK(c, gin.H{"user": me})
}

// AuthGoogle xử lý đăng nhập qua Google ID token, tự tạo tài khoản
// nếu email chưa tồn tại
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Token == "" {
		response.BadRequest(c, "auth.google_token_required")
		return
	}

	payload, err := idtoken.Validate(c.Request.Context(), input.Token, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c, "auth.invalid_google_token")
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	if email == "" {
		response.Unauthorized(c, "auth.invalid_google_token")
		return
	}

	var user models.User
	err = config.DB.Where("email = ?", email).First(&user).Error
	if apperrors.IsNotFound(err) {
		// Tài khoản Google không có mật khẩu, sinh chuỗi ngẫu nhiên để
		// không ai đăng nhập được bằng form thường
		hash, hashErr := services.HashPassword(randomPassword())
		if hashErr != nil {
			utils.LogError("AuthGoogle: hash password: %v", hashErr)
			response.ServerError(c, "auth.google_error")
			return
		}

		if name == "" {
			name = email
		}
		user = models.User{
			Username: name,
			Email:    email,
			Password: hash,
			Avatar:   picture,
		}
		err = config.DB.Create(&user).Error
	}
	if err != nil {
		utils.LogError("AuthGoogle: upsert user: %v", err)
		response.ServerError(c, "auth.google_error")
		return
	}

	token, err := services.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.LogError("AuthGoogle: generate token: %v", err)
		response.ServerError(c, "auth.google_error")
		return
	}

	response.OK(c, gin.H{
		"message": response.Message(c, "auth.login_success"),
		"user":    dto.NewUserResponse(user),
		"token":   token,
	})
}

func randomPassword() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return hex.EncodeToString([]byte("fallback-google-account"))
	}
	return hex.EncodeToString(buf)
}
