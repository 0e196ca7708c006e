// Package trail defines the trail record, the closed category and
// difficulty sets, and the compiled-in sample catalog browsed by
// Trailhead.
//
// The catalog is static data. Nothing in this package creates,
// mutates or destroys trails at runtime; Catalog hands out a fresh
// copy on every call so callers can never disturb the source.
package trail

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned by ParseCategory for names outside
// the closed category set.
var ErrUnknownCategory = errors.New("unknown category")

// ErrUnknownDifficulty is returned by ParseDifficulty for grades
// outside Easy, Moderate and Hard.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ============================================================
// Categories
// ============================================================

// Category is a filter tag on trails. All is the no-filter sentinel.
type Category string

const (
	All       Category = "All"
	Hiking    Category = "Hiking"
	Mountains Category = "Mountains"
	Rivers    Category = "Rivers"
	Caves     Category = "Caves"
)

// categories is the display order of the category pills.
var categories = []Category{All, Hiking, Mountains, Rivers, Caves}

// Categories returns the closed category set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("parsing %q: %w", s, ErrUnknownCategory)
}

// Index returns the display position of c, or -1 when c is not one
// of the known categories.
func (c Category) Index() int {
	for i, known := range categories {
		if known == c {
			return i
		}
	}
	return -1
}

// ============================================================
// Difficulty
// ============================================================

// Difficulty grades how demanding a trail is.
type Difficulty string

const (
	Easy     Difficulty = "Easy"
	Moderate Difficulty = "Moderate"
	Hard     Difficulty = "Hard"
)

var difficulties = []Difficulty{Easy, Moderate, Hard}

// Difficulties returns the difficulty grades from easiest to hardest.
func Difficulties() []Difficulty {
	out := make([]Difficulty, len(difficulties))
	copy(out, difficulties)
	return out
}

// ParseDifficulty resolves a case-insensitive difficulty grade.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range difficulties {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("parsing %q: %w", s, ErrUnknownDifficulty)
}

// ============================================================
// Trail
// ============================================================

// Trail describes one hiking route. Values are treated as immutable.
type Trail struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Location   string     `json:"location"`
	Image      string     `json:"image"`
	Rating     float64    `json:"rating"`
	Difficulty Difficulty `json:"difficulty"`
	Category   Category   `json:"category"`
}

// Filter returns the trails whose category equals category, in their
// input order. Filtering by All returns every trail unchanged.
// The input slice is never modified.
func Filter(trails []Trail, category Category) []Trail {
	if category == All {
		out := make([]Trail, len(trails))
		copy(out, trails)
		return out
	}

	out := make([]Trail, 0, len(trails))
	for _, t := range trails {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}
