package builders

import (
	"net/url"

	"gorm.io/gorm"

	"tourism/constants"
)

// CarFilter là đặc tả filter/sort cho danh sách car
type CarFilter struct {
	Category     string
	Brand        string
	Transmission string
	Year         *int
	MinPrice     *float64
	MaxPrice     *float64
	Sort         string
}

// CarFilterBuilder giúp tạo CarFilter theo từng bước
type CarFilterBuilder struct {
	filter CarFilter
}

// NewCarFilterBuilder tạo instance mới của CarFilterBuilder
func NewCarFilterBuilder() *CarFilterBuilder {
	return &CarFilterBuilder{}
}

// WithCategory thêm filter category
func (b *CarFilterBuilder) WithCategory(category string) *CarFilterBuilder {
	b.filter.Category = category
	return b
}

// WithBrand thêm filter hãng xe
func (b *CarFilterBuilder) WithBrand(brand string) *CarFilterBuilder {
	b.filter.Brand = brand
	return b
}

// WithTransmission thêm filter hộp số
func (b *CarFilterBuilder) WithTransmission(transmission string) *CarFilterBuilder {
	b.filter.Transmission = transmission
	return b
}

// WithYear thêm filter năm sản xuất
func (b *CarFilterBuilder) WithYear(year *int) *CarFilterBuilder {
	b.filter.Year = year
	return b
}

// WithPriceRange thêm biên giá, mỗi biên có thể nil
func (b *CarFilterBuilder) WithPriceRange(min, max *float64) *CarFilterBuilder {
	b.filter.MinPrice = min
	b.filter.MaxPrice = max
	return b
}

// WithSort thêm tuỳ chọn sort
func (b *CarFilterBuilder) WithSort(sort string) *CarFilterBuilder {
	b.filter.Sort = sort
	return b
}

// Build tạo filter hoàn chỉnh
func (b *CarFilterBuilder) Build() CarFilter {
	return b.filter
}

// CarFilterFromQuery map query params thành filter, thuần như bên tour
func CarFilterFromQuery(q url.Values) CarFilter {
	return NewCarFilterBuilder().
		WithCategory(q.Get("category")).
		WithBrand(q.Get("brand")).
		WithTransmission(q.Get("transmission")).
		WithYear(parseInt(q.Get("year"))).
		WithPriceRange(parseNumber(q.Get("minPrice")), parseNumber(q.Get("maxPrice"))).
		WithSort(q.Get("sort")).
		Build()
}

// Scope áp filter vào query gorm
func (f CarFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if f.Category != "" {
			tx = tx.Where("category = ?", f.Category)
		}
		if f.Brand != "" {
			tx = tx.Where("brand = ?", f.Brand)
		}
		if f.Transmission != "" {
			tx = tx.Where("transmission = ?", f.Transmission)
		}
		if f.Year != nil {
			tx = tx.Where("year = ?", *f.Year)
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

func (f CarFilter) orderClause() string {
	switch f.Sort {
	case constants.SortPriceAsc:
		return "price ASC"
	case constants.SortPriceDesc:
		return "price DESC"
	default:
		return "created_at DESC"
	}
}
