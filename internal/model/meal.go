package model

import (
	"errors"
	"fmt"
	"strings"
)

// Meal represents a dish that can be staged for battles. Each field
// corresponds to a column in the `meals` table. Battles and Wins are
// lifetime counters updated after every battle. Deleted implements soft
// deletion: rows are never physically removed, only hidden.
//
// Fields:
//
//	ID         – primary key identifier.
//	Name       – unique meal name (column `meal`).
//	Cuisine    – cuisine type of the meal.
//	Price      – price of the meal, always positive.
//	Difficulty – preparation difficulty (LOW, MED or HIGH).
//	Battles    – number of battles fought.
//	Wins       – number of battles won.
//	Deleted    – soft-delete flag; deleted rows are hidden from lookups.
type Meal struct {
	ID         uint64     // meals.id
	Name       string     // meals.meal
	Cuisine    string     // meals.cuisine
	Price      float64    // meals.price
	Difficulty Difficulty // meals.difficulty
	Battles    uint64     // meals.battles
	Wins       uint64     // meals.wins
	Deleted    bool       // meals.deleted
}

// ErrEmptyName is returned when a meal's name is blank.
var ErrEmptyName = errors.New("meal name is required")

// ErrInvalidPrice is returned when a meal's price is zero or negative.
var ErrInvalidPrice = errors.New("price must be a positive number")

// Validate checks the invariants every stored meal must satisfy: a
// non-empty name, a positive price and a recognized difficulty.
func (m *Meal) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if m.Price <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidPrice, m.Price)
	}
	if !m.Difficulty.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, m.Difficulty)
	}
	return nil
}
