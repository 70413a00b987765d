package services

import (
	"sort"
	"strings"

	"trova/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// normalizeInput bỏ dấu và chuẩn hóa chuỗi tìm kiếm
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// createMatcher tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity tính độ tương đồng giữa hai chuỗi
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

// SearchProperties tìm chỗ ở theo tên, chấp nhận gõ sai chính tả và thiếu dấu.
// Kết quả xếp theo độ tương đồng giảm dần, tối đa limit phần tử.
func SearchProperties(properties []models.Property, query string, limit int) []models.Property {
	if limit <= 0 {
		limit = 10
	}
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return nil
	}

	keywords := make([]string, 0, len(properties))
	byKeyword := make(map[string][]models.Property)
	for _, property := range properties {
		key := normalizeInput(property.Name)
		if key == "" {
			continue
		}
		keywords = append(keywords, key)
		byKeyword[key] = append(byKeyword[key], property)
	}
	if len(keywords) == 0 {
		return nil
	}

	matcher := createMatcher(keywords)
	candidates := matcher.ClosestN(normalizedQuery, limit*2)

	type scored struct {
		key   string
		score float64
	}
	var ranked []scored
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		ranked = append(ranked, scored{key: candidate, score: calculateSimilarity(normalizedQuery, candidate)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	var results []models.Property
	for _, entry := range ranked {
		for _, property := range byKeyword[entry.key] {
			results = append(results, property)
			if len(results) >= limit {
				return results
			}
		}
	}
	return results
}
