package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"tourism/models"
)

// Tìm kiếm tour mờ: query được chuẩn hóa bỏ dấu, so khớp gần đúng với
// tên, thành phố và category của tour rồi xếp hạng theo điểm phù hợp.

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tạo danh sách thành phố duy nhất cho closestmatch
func uniqueCities(tours []models.Tour) []string {
	seen := make(map[string]bool)
	for _, tour := range tours {
		city := normalizeInput(tour.City)
		if city != "" {
			seen[city] = true
		}
	}

	cities := make([]string, 0, len(seen))
	for city := range seen {
		cities = append(cities, city)
	}
	return cities
}

// Tính điểm phù hợp của tour với query
func scoreTour(query string, tour models.Tour, cityMatcher *closestmatch.ClosestMatch) int {
	score := 0

	name := normalizeInput(tour.Name)
	city := normalizeInput(tour.City)
	category := normalizeInput(tour.Category)

	if name != "" {
		if strings.Contains(name, query) || strings.Contains(query, name) {
			score += 30
		} else if calculateSimilarity(name, query) >= 0.6 {
			score += 15
		}
	}

	if city != "" {
		if closest := cityMatcher.Closest(query); closest == city {
			if strings.Contains(query, closest) || calculateSimilarity(closest, query) >= 0.5 {
				score += 20
			}
		}
		if strings.Contains(query, city) {
			score += 20
		}
	}

	if category != "" && strings.Contains(query, category) {
		score += 10
	}

	return score
}

// SearchTours xếp hạng tours theo độ phù hợp với query, loại bỏ tour
// không khớp. Hàm thuần: không truy vấn I/O, thứ tự ổn định theo điểm.
func SearchTours(tours []models.Tour, query string) []models.Tour {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return nil
	}

	cityMatcher := createMatcher(uniqueCities(tours))

	type scored struct {
		tour  models.Tour
		score int
	}

	matches := make([]scored, 0, len(tours))
	for _, tour := range tours {
		if s := scoreTour(normalizedQuery, tour, cityMatcher); s > 0 {
			matches = append(matches, scored{tour: tour, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]models.Tour, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.tour)
	}
	return result
}
