package constants

// Các category hợp lệ cho site review
const (
	SiteReviewService = "service"
	SiteReviewWebsite = "website"
	SiteReviewSupport = "support"
)

// SiteReviewCategories danh sách category hợp lệ
var SiteReviewCategories = []string{SiteReviewService, SiteReviewWebsite, SiteReviewSupport}

// Các tuỳ chọn sort cho danh sách tour/car; giá trị khác fallback về mới nhất trước
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)
