package builders

import (
	"net/url"

	"gorm.io/gorm"

	"tourism/constants"
)

// TourFilter là đặc tả filter/sort cho danh sách tour. Chỉ các trường
// được set mới tham gia vào query; hai biên giá độc lập với nhau.
type TourFilter struct {
	City     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

// TourFilterBuilder giúp tạo TourFilter theo từng bước
type TourFilterBuilder struct {
	filter TourFilter
}

// NewTourFilterBuilder tạo instance mới của TourFilterBuilder
func NewTourFilterBuilder() *TourFilterBuilder {
	return &TourFilterBuilder{}
}

// WithCity thêm filter thành phố, bỏ qua giá trị rỗng
func (b *TourFilterBuilder) WithCity(city string) *TourFilterBuilder {
	b.filter.City = city
	return b
}

// WithCategory thêm filter category
func (b *TourFilterBuilder) WithCategory(category string) *TourFilterBuilder {
	b.filter.Category = category
	return b
}

// WithPriceRange thêm biên giá, mỗi biên có thể nil
func (b *TourFilterBuilder) WithPriceRange(min, max *float64) *TourFilterBuilder {
	b.filter.MinPrice = min
	b.filter.MaxPrice = max
	return b
}

// WithSort thêm tuỳ chọn sort
func (b *TourFilterBuilder) WithSort(sort string) *TourFilterBuilder {
	b.filter.Sort = sort
	return b
}

// Build tạo filter hoàn chỉnh
func (b *TourFilterBuilder) Build() TourFilter {
	return b.filter
}

// TourFilterFromQuery map query params thành filter. Hàm thuần: cùng
// input luôn cho cùng filter, không I/O, không thể fail.
func TourFilterFromQuery(q url.Values) TourFilter {
	return NewTourFilterBuilder().
		WithCity(q.Get("city")).
		WithCategory(q.Get("category")).
		WithPriceRange(parseNumber(q.Get("minPrice")), parseNumber(q.Get("maxPrice"))).
		WithSort(q.Get("sort")).
		Build()
}

// Scope áp filter vào query gorm
func (f TourFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if f.City != "" {
			tx = tx.Where("city = ?", f.City)
		}
		if f.Category != "" {
			tx = tx.Where("category = ?", f.Category)
		}
		if f.MinPrice != nil {
			tx = tx.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			tx = tx.Where("price <= ?", *f.MaxPrice)
		}
		return tx.Order(f.orderClause())
	}
}

func (f TourFilter) orderClause() string {
	switch f.Sort {
	case constants.SortPriceAsc:
		return "price ASC"
	case constants.SortPriceDesc:
		return "price DESC"
	default:
		return "created_at DESC"
	}
}
