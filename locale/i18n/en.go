package i18n

var en = map[string]string{
	"common.server_error": "Internal server error",

	"auth.fill_all_fields":       "Please fill in all required fields",
	"auth.user_exists":           "A user with this email or username already exists",
	"auth.register_success":      "Registration successful",
	"auth.register_error":        "Registration failed",
	"auth.enter_email_password":  "Please enter email and password",
	"auth.user_not_found":        "User not found",
	"auth.invalid_password":      "Invalid password",
	"auth.login_success":         "Login successful",
	"auth.login_error":           "Login failed",
	"auth.not_authorized":        "Authorization required",
	"auth.invalid_token":         "Invalid or expired token",
	"auth.getme_error":           "Failed to load profile",
	"auth.google_token_required": "Google ID token is required",
	"auth.invalid_google_token":  "Invalid Google token",
	"auth.google_error":          "Google sign-in failed",
	"auth.invalid_email":         "Invalid email address",
	"auth.password_too_short":    "Password must be at least 6 characters",

	"tour.get_all_error":         "Failed to fetch tours",
	"tour.id_required":           "Tour ID is required",
	"tour.not_found":             "Tour not found",
	"tour.get_one_error":         "Failed to fetch tour",
	"tour.fill_required_fields":  "Please fill in all required fields",
	"tour.created":               "Tour created successfully",
	"tour.create_error":          "Failed to create tour",
	"tour.updated":               "Tour updated successfully",
	"tour.update_error":          "Failed to update tour",
	"tour.deleted":               "Tour deleted successfully",
	"tour.delete_error":          "Failed to delete tour",
	"tour.search_query_required": "Search query is required",
	"tour.search_error":          "Tour search failed",

	"car.get_all_error":        "Failed to fetch cars",
	"car.id_required":          "Car ID is required",
	"car.not_found":            "Car not found",
	"car.get_one_error":        "Failed to fetch car",
	"car.fill_required_fields": "Please fill in all required fields",
	"car.invalid_tour":         "Referenced tour does not exist",
	"car.created":              "Car created successfully",
	"car.create_error":         "Failed to create car",
	"car.updated":              "Car updated successfully",
	"car.update_error":         "Failed to update car",
	"car.deleted":              "Car deleted successfully",
	"car.delete_error":         "Failed to delete car",

	"review.tour_id_required":        "Tour ID is required",
	"review.car_id_required":         "Car ID is required",
	"review.rating_comment_required": "Rating and comment are required",
	"review.rating_range":            "Rating must be between 1 and 5",
	"review.tour_not_found":          "Tour not found",
	"review.car_not_found":           "Car not found",
	"review.already_left":            "You have already left a review",
	"review.created":                 "Review created successfully",
	"review.create_error":            "Failed to create review",
	"review.id_required":             "Review ID is required",
	"review.not_found":               "Review not found",
	"review.forbidden":               "You can only delete your own reviews",
	"review.deleted":                 "Review deleted successfully",
	"review.delete_error":            "Failed to delete review",
	"review.get_all_error":           "Failed to fetch reviews",
	"review.fill_all_fields":         "Please fill in all required fields",
	"review.invalid_category":        "Invalid review category",

	"favorite.get_tours_error":       "Failed to fetch favorite tours",
	"favorite.get_cars_error":        "Failed to fetch favorite cars",
	"favorite.tour_id_required":      "Tour ID is required",
	"favorite.car_id_required":       "Car ID is required",
	"favorite.tour_not_found":        "Tour not found",
	"favorite.car_not_found":         "Car not found",
	"favorite.tour_already_added":    "Tour is already in favorites",
	"favorite.car_already_added":     "Car is already in favorites",
	"favorite.tour_added":            "Tour added to favorites",
	"favorite.car_added":             "Car added to favorites",
	"favorite.tour_removed":          "Tour removed from favorites",
	"favorite.car_removed":           "Car removed from favorites",
	"favorite.tour_not_in_favorites": "Tour is not in favorites",
	"favorite.car_not_in_favorites":  "Car is not in favorites",
	"favorite.add_error":             "Failed to add to favorites",
	"favorite.remove_error":          "Failed to remove from favorites",

	"day.day_number_required": "Day number is required",
	"day.created":             "Tour day created",
	"day.create_error":        "Failed to create tour day",
	"day.get_error":           "Failed to fetch tour days",
	"day.id_required":         "Day ID is required",
	"day.not_found":           "Tour day not found",
	"day.updated":             "Tour day updated",
	"day.update_error":        "Failed to update tour day",
	"day.deleted":             "Tour day deleted",
	"day.delete_error":        "Failed to delete tour day",
	"day.tour_id_required":    "Tour ID is required",

	"item.day_id_required":            "Day ID is required",
	"item.title_description_required": "Title and description are required",
	"item.created":                    "Itinerary item created",
	"item.create_error":               "Failed to create itinerary item",
	"item.get_error":                  "Failed to fetch itinerary items",
	"item.id_required":                "Item ID is required",
	"item.not_found":                  "Itinerary item not found",
	"item.updated":                    "Itinerary item updated",
	"item.update_error":               "Failed to update itinerary item",
	"item.deleted":                    "Itinerary item deleted",
	"item.delete_error":               "Failed to delete itinerary item",

	"program.get_error": "Failed to fetch tour program",

	"upload.no_file":    "No file provided",
	"upload.file_error": "Failed to open file",
	"upload.failed":     "Upload failed",
	"upload.success":    "Upload successful",
}
