package services

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const QuestionsPerPage = 5

// ParsePage reads a 1-based page number. Absent, non-numeric and
// non-positive values all yield page 1. Positive numbers too large for an int
// saturate to math.MaxInt so they still land past the last page.
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	page, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return math.MaxInt
	}
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns the QuestionsPerPage items of the given page, or an empty
// slice when the page lies past the end.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
