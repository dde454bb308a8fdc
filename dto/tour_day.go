package dto

type CreateTourDayInput struct {
	DayNumber *int    `json:"dayNumber"`
	Title     *string `json:"title"`
}

type UpdateTourDayInput struct {
	DayNumber *int    `json:"dayNumber"`
	Title     *string `json:"title"`
}

// Updates build map patch cho gorm từ các trường được set
func (in UpdateTourDayInput) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.DayNumber != nil {
		updates["day_number"] = *in.DayNumber
	}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	return updates
}

type CreateTourDayItemInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	PointStart  *string  `json:"pointStart"`
	PointEnd    *string  `json:"pointEnd"`
	Location    *string  `json:"location"`
	Price       *float64 `json:"price"`
	Duration    *string  `json:"duration"`
	Complexity  *string  `json:"complexity"`
}

type UpdateTourDayItemInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	PointStart  *string   `json:"pointStart"`
	PointEnd    *string   `json:"pointEnd"`
	Location    *string   `json:"location"`
	Price       *float64  `json:"price"`
	Duration    *string   `json:"duration"`
	Complexity  *string   `json:"complexity"`
}

// Updates build map patch cho gorm từ các trường được set
func (in UpdateTourDayItemInput) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Images != nil {
		updates["images"] = toStringArray(*in.Images)
	}
	if in.PointStart != nil {
		updates["point_start"] = *in.PointStart
	}
	if in.PointEnd != nil {
		updates["point_end"] = *in.PointEnd
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if in.Complexity != nil {
		updates["complexity"] = *in.Complexity
	}
	return updates
}
