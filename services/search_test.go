package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/models"
)

func searchFixtures() []models.Tour {
	return []models.Tour{
		{ID: 1, Name: "Issyk-Kul Adventure", City: "Karakol", Category: "adventure"},
		{ID: 2, Name: "Song-Kul Horse Trek", City: "Naryn", Category: "trekking"},
		{ID: 3, Name: "Bishkek City Walk", City: "Bishkek", Category: "city"},
	}
}

func TestSearchTours_ByName(t *testing.T) {
	results := SearchTours(searchFixtures(), "issyk-kul")
	require.NotEmpty(t, results)
	assert.Equal(t, uint(1), results[0].ID)
}

func TestSearchTours_Typo(t *testing.T) {
	// Sai một ký tự vẫn phải tìm ra tour theo similarity
	results := SearchTours(searchFixtures(), "bishkek sity walk")
	require.NotEmpty(t, results)
	assert.Equal(t, uint(3), results[0].ID)
}

func TestSearchTours_NoMatch(t *testing.T) {
	results := SearchTours(searchFixtures(), "zzzzzzzz")
	assert.Empty(t, results)
}

func TestSearchTours_EmptyQuery(t *testing.T) {
	assert.Empty(t, SearchTours(searchFixtures(), ""))
	assert.Empty(t, SearchTours(searchFixtures(), "   "))
}

func TestSearchTours_DoesNotMutateInput(t *testing.T) {
	tours := searchFixtures()
	SearchTours(tours, "karakol")
	assert.Equal(t, searchFixtures(), tours)
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "karakol", normalizeInput("  KARAKOL  "))
	assert.Equal(t, "issyk-kul", normalizeInput("Issyk-Kul"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("abc", "abc"))
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.InDelta(t, 0.75, calculateSimilarity("abcd", "abcx"), 0.001)
}
