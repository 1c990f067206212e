package model

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty is the closed set of preparation difficulty levels. It is
// stored as a short uppercase string in the `meals.difficulty` column.
type Difficulty string

// Recognized difficulty levels, from easiest to hardest.
const (
	DifficultyLow  Difficulty = "LOW"
	DifficultyMed  Difficulty = "MED"
	DifficultyHigh Difficulty = "HIGH"
)

// ErrInvalidDifficulty is returned when a difficulty value is not one of
// LOW, MED or HIGH.
var ErrInvalidDifficulty = errors.New("difficulty must be LOW, MED or HIGH")

// ParseDifficulty normalizes raw input (case-insensitive, surrounding
// spaces ignored) into a Difficulty, or reports ErrInvalidDifficulty.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch d := Difficulty(strings.ToUpper(strings.TrimSpace(raw))); d {
	case DifficultyLow, DifficultyMed, DifficultyHigh:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, raw)
	}
}

// Valid reports whether d is one of the recognized levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyLow, DifficultyMed, DifficultyHigh:
		return true
	}
	return false
}
