package builders

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourFilterFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("city", "Karakol")
	q.Set("category", "adventure")
	q.Set("minPrice", "100")
	q.Set("maxPrice", "500")
	q.Set("sort", "price_asc")

	filter := TourFilterFromQuery(q)

	assert.Equal(t, "Karakol", filter.City)
	assert.Equal(t, "adventure", filter.Category)
	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, 100.0, *filter.MinPrice)
	require.NotNil(t, filter.MaxPrice)
	assert.Equal(t, 500.0, *filter.MaxPrice)
	assert.Equal(t, "price_asc", filter.Sort)
}

func TestTourFilterFromQuery_InvalidBoundDropped(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "100")
	q.Set("maxPrice", "abc")

	filter := TourFilterFromQuery(q)

	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, 100.0, *filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
}

func TestTourFilterFromQuery_Empty(t *testing.T) {
	filter := TourFilterFromQuery(url.Values{})

	assert.Empty(t, filter.City)
	assert.Empty(t, filter.Category)
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Empty(t, filter.Sort)
}

func TestTourFilterFromQuery_Pure(t *testing.T) {
	q := url.Values{}
	q.Set("city", "Naryn")
	q.Set("minPrice", "50")

	first := TourFilterFromQuery(q)
	second := TourFilterFromQuery(q)

	assert.Equal(t, first.City, second.City)
	assert.Equal(t, *first.MinPrice, *second.MinPrice)
}

func TestTourFilterOrderClause(t *testing.T) {
	assert.Equal(t, "price ASC", TourFilter{Sort: "price_asc"}.orderClause())
	assert.Equal(t, "price DESC", TourFilter{Sort: "price_desc"}.orderClause())
	assert.Equal(t, "created_at DESC", TourFilter{Sort: ""}.orderClause())
	assert.Equal(t, "created_at DESC", TourFilter{Sort: "unknown"}.orderClause())
}

func TestCarFilterFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("category", "suv")
	q.Set("brand", "Toyota")
	q.Set("transmission", "automatic")
	q.Set("year", "2020")
	q.Set("minPrice", "30")
	q.Set("sort", "price_desc")

	filter := CarFilterFromQuery(q)

	assert.Equal(t, "suv", filter.Category)
	assert.Equal(t, "Toyota", filter.Brand)
	assert.Equal(t, "automatic", filter.Transmission)
	require.NotNil(t, filter.Year)
	assert.Equal(t, 2020, *filter.Year)
	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, 30.0, *filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Equal(t, "price_desc", filter.Sort)
}

func TestCarFilterFromQuery_InvalidYearDropped(t *testing.T) {
	q := url.Values{}
	q.Set("year", "not-a-year")

	filter := CarFilterFromQuery(q)
	assert.Nil(t, filter.Year)
}

func TestParseNumber(t *testing.T) {
	require.NotNil(t, parseNumber("12.5"))
	assert.Equal(t, 12.5, *parseNumber("12.5"))
	assert.Nil(t, parseNumber(""))
	assert.Nil(t, parseNumber("abc"))
}

func TestParseInt(t *testing.T) {
	require.NotNil(t, parseInt("7"))
	assert.Equal(t, 7, *parseInt("7"))
	assert.Nil(t, parseInt(""))
	assert.Nil(t, parseInt("7.5"))
}
