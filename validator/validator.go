package validator

import (
	"regexp"

	"tourism/constants"
	"tourism/dto"
)

// Mỗi hàm validate trả về message key cho response lỗi, chuỗi rỗng
// nghĩa là input hợp lệ. Key được dịch theo ngôn ngữ request ở tầng response.

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateRegister validate thông tin đăng ký
func ValidateRegister(in dto.RegisterInput) string {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return "auth.fill_all_fields"
	}
	if !emailRegex.MatchString(in.Email) {
		return "auth.invalid_email"
	}
	if len(in.Password) < 6 {
		return "auth.password_too_short"
	}
	return ""
}

// ValidateLogin validate thông tin đăng nhập
func ValidateLogin(in dto.LoginInput) string {
	if in.Email == "" || in.Password == "" {
		return "auth.enter_email_password"
	}
	return ""
}

// ValidateCreateTour kiểm tra các trường bắt buộc của tour
func ValidateCreateTour(in dto.CreateTourInput) string {
	if in.Name == "" || in.Description == "" || in.City == "" ||
		in.Category == "" || in.Date == "" ||
		in.Price == nil || in.Duration == nil || in.MaxPeople == nil {
		return "tour.fill_required_fields"
	}
	if *in.Price < 0 {
		return "tour.fill_required_fields"
	}
	return ""
}

// ValidateCreateCar kiểm tra các trường bắt buộc của car
func ValidateCreateCar(in dto.CreateCarInput) string {
	if in.Category == "" || in.Brand == "" || in.Model == "" ||
		in.Drive == "" || in.Transmission == "" || in.FuelType == "" ||
		in.Price == nil || in.Capacity == nil || in.Year == nil || in.Places == nil {
		return "car.fill_required_fields"
	}
	if *in.Price < 0 {
		return "car.fill_required_fields"
	}
	return ""
}

// ValidateReview kiểm tra rating và comment của review tour/car
func ValidateReview(in dto.ReviewInput) string {
	if in.Rating == nil || in.Comment == "" {
		return "review.rating_comment_required"
	}
	if *in.Rating < 1 || *in.Rating > 5 {
		return "review.rating_range"
	}
	return ""
}

// ValidateSiteReview kiểm tra review nền tảng, category thuộc tập cố định
func ValidateSiteReview(in dto.SiteReviewInput) string {
	if in.Rating == nil || in.Comment == "" || in.Category == "" {
		return "review.fill_all_fields"
	}
	if *in.Rating < 1 || *in.Rating > 5 {
		return "review.rating_range"
	}
	for _, category := range constants.SiteReviewCategories {
		if in.Category == category {
			return ""
		}
	}
	return "review.invalid_category"
}
