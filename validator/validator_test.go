package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourism/dto"
)

func ptrInt(n int) *int           { return &n }
func ptrFloat(n float64) *float64 { return &n }

func TestValidateRegister(t *testing.T) {
	valid := dto.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"}
	assert.Empty(t, ValidateRegister(valid))

	assert.Equal(t, "auth.fill_all_fields", ValidateRegister(dto.RegisterInput{}))
	assert.Equal(t, "auth.fill_all_fields", ValidateRegister(dto.RegisterInput{Username: "alice", Password: "secret1"}))
	assert.Equal(t, "auth.invalid_email", ValidateRegister(dto.RegisterInput{Username: "alice", Email: "not-an-email", Password: "secret1"}))
	assert.Equal(t, "auth.password_too_short", ValidateRegister(dto.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "short"}))
}

func TestValidateLogin(t *testing.T) {
	assert.Empty(t, ValidateLogin(dto.LoginInput{Email: "a@b.com", Password: "x"}))
	assert.Equal(t, "auth.enter_email_password", ValidateLogin(dto.LoginInput{Email: "a@b.com"}))
	assert.Equal(t, "auth.enter_email_password", ValidateLogin(dto.LoginInput{}))
}

func TestValidateCreateTour(t *testing.T) {
	valid := dto.CreateTourInput{
		Name:        "Issyk-Kul Adventure",
		Price:       ptrFloat(250),
		Description: "Three days at the lake",
		City:        "Karakol",
		Category:    "adventure",
		Date:        "2026-07-01",
		Duration:    ptrInt(3),
		MaxPeople:   ptrInt(12),
	}
	assert.Empty(t, ValidateCreateTour(valid))

	missing := valid
	missing.Price = nil
	assert.Equal(t, "tour.fill_required_fields", ValidateCreateTour(missing))

	negative := valid
	negative.Price = ptrFloat(-1)
	assert.Equal(t, "tour.fill_required_fields", ValidateCreateTour(negative))
}

func TestValidateCreateCar(t *testing.T) {
	valid := dto.CreateCarInput{
		Category:     "suv",
		Brand:        "Toyota",
		Model:        "Land Cruiser",
		Price:        ptrFloat(90),
		Capacity:     ptrInt(5),
		Drive:        "4wd",
		Year:         ptrInt(2021),
		Places:       ptrInt(7),
		Transmission: "automatic",
		FuelType:     "diesel",
	}
	assert.Empty(t, ValidateCreateCar(valid))

	missing := valid
	missing.Brand = ""
	assert.Equal(t, "car.fill_required_fields", ValidateCreateCar(missing))
}

func TestValidateReview(t *testing.T) {
	assert.Empty(t, ValidateReview(dto.ReviewInput{Rating: ptrInt(5), Comment: "great"}))

	assert.Equal(t, "review.rating_comment_required", ValidateReview(dto.ReviewInput{Comment: "great"}))
	assert.Equal(t, "review.rating_comment_required", ValidateReview(dto.ReviewInput{Rating: ptrInt(5)}))
	assert.Equal(t, "review.rating_range", ValidateReview(dto.ReviewInput{Rating: ptrInt(0), Comment: "x"}))
	assert.Equal(t, "review.rating_range", ValidateReview(dto.ReviewInput{Rating: ptrInt(6), Comment: "x"}))
}

func TestValidateSiteReview(t *testing.T) {
	assert.Empty(t, ValidateSiteReview(dto.SiteReviewInput{Rating: ptrInt(4), Comment: "ok", Category: "service"}))
	assert.Empty(t, ValidateSiteReview(dto.SiteReviewInput{Rating: ptrInt(4), Comment: "ok", Category: "website"}))
	assert.Empty(t, ValidateSiteReview(dto.SiteReviewInput{Rating: ptrInt(4), Comment: "ok", Category: "support"}))

	assert.Equal(t, "review.fill_all_fields", ValidateSiteReview(dto.SiteReviewInput{Rating: ptrInt(4), Comment: "ok"}))
	assert.Equal(t, "review.rating_range", ValidateSiteReview(dto.SiteReviewInput{Rating: ptrInt(9), Comment: "ok", Category: "service"}))
	assert.Equal(t, "review.invalid_category", ValidateSiteReview(dto.SiteReviewInput{Rating: ptrInt(4), Comment: "ok", Category: "other"}))
}
