// Package battle implements the one-on-one meal comparison engine.
// Meals are staged into an arena, scored deterministically, and a single
// random draw decides the winner, so a stronger score raises the odds
// without guaranteeing the outcome.
package battle

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/iliyamo/meal-battle-arena/internal/model"
	"github.com/iliyamo/meal-battle-arena/internal/random"
)

// maxCombatants is the arena capacity: battles are strictly one on one.
const maxCombatants = 2

// ErrArenaFull is returned when staging a combatant while two are
// already staged.
var ErrArenaFull = errors.New("combatant list is full")

// ErrNotEnoughCombatants is returned when a battle starts with fewer
// than two staged combatants.
var ErrNotEnoughCombatants = errors.New("two combatants must be prepped")

// difficultyModifier is subtracted from the raw score. LOW carries the
// largest handicap, HIGH the smallest.
var difficultyModifier = map[model.Difficulty]float64{
	model.DifficultyLow:  3,
	model.DifficultyMed:  2,
	model.DifficultyHigh: 1,
}

// StatsRecorder persists one battle outcome per combatant. It is the
// arena's only write path into the meal store.
type StatsRecorder interface {
	UpdateStats(ctx context.Context, id uint64, outcome model.Outcome) error
}

// Arena holds the combatants staged for the next battle. One instance
// is shared by all HTTP handlers, so the slot set is guarded by a
// mutex. The randomness source and the stats recorder are injected at
// construction.
type Arena struct {
	mu         sync.Mutex
	combatants []model.Meal
	source     random.Source
	stats      StatsRecorder
}

// NewArena constructs an Arena and panics if a dependency is nil.
func NewArena(source random.Source, stats StatsRecorder) *Arena {
	if source == nil || stats == nil {
		panic("nil dependency passed to NewArena")
	}
	return &Arena{source: source, stats: stats}
}

// Prep stages a meal for the next battle. At most two meals can be
// staged at a time; a third is rejected with ErrArenaFull.
func (a *Arena) Prep(m model.Meal) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.combatants) >= maxCombatants {
		return fmt.Errorf("%w: cannot add %q", ErrArenaFull, m.Name)
	}
	a.combatants = append(a.combatants, m)
	return nil
}

// Clear removes all staged combatants. It succeeds from any state.
func (a *Arena) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.combatants = nil
}

// Combatants returns the staged meals in insertion order. The slice is
// a copy; mutating it does not affect the arena.
func (a *Arena) Combatants() []model.Meal {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]model.Meal, len(a.combatants))
	copy(out, a.combatants)
	return out
}

// Score computes a meal's deterministic battle strength: price times
// the cuisine length in runes, minus the difficulty handicap. Equal
// inputs always produce equal scores.
func Score(m model.Meal) (float64, error) {
	mod, ok := difficultyModifier[m.Difficulty]
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidDifficulty, m.Difficulty)
	}
	return m.Price*float64(utf8.RuneCountInString(m.Cuisine)) - mod, nil
}

// Fight resolves one battle between the two staged combatants and
// returns the winner's name. The first staged combatant wins when the
// random draw falls below 1/(1+e^(-(scoreA-scoreB)/100)). Outcomes are
// recorded winner first, then loser. On success the loser leaves the
// arena and the winner stays staged for the next challenger; on any
// error the slot set is left untouched.
func (a *Arena) Fight(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.combatants) < maxCombatants {
		return "", ErrNotEnoughCombatants
	}
	first, second := a.combatants[0], a.combatants[1]

	scoreFirst, err := Score(first)
	if err != nil {
		return "", err
	}
	scoreSecond, err := Score(second)
	if err != nil {
		return "", err
	}

	// Logistic transform of the score difference. It saturates smoothly
	// toward 0 and 1, so no clamping is needed for lopsided matchups.
	delta := (scoreFirst - scoreSecond) / 100
	probFirst := 1 / (1 + math.Exp(-delta))

	draw, err := a.source.Float(ctx)
	if err != nil {
		return "", err
	}

	winner, loser := first, second
	if draw >= probFirst {
		winner, loser = second, first
	}

	if err := a.stats.UpdateStats(ctx, winner.ID, model.OutcomeWin); err != nil {
		return "", err
	}
	if err := a.stats.UpdateStats(ctx, loser.ID, model.OutcomeLoss); err != nil {
		return "", err
	}

	// The loser is removed; the winner remains staged as the champion
	// awaiting the next challenger.
	a.combatants = []model.Meal{winner}
	return winner.Name, nil
}
