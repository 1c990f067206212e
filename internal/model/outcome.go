package model

import "errors"

// Outcome is the result recorded against a single meal after a battle.
type Outcome string

// Every battle records a win for one combatant and a loss for the other.
const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// ErrInvalidOutcome is returned when an outcome is neither win nor loss.
var ErrInvalidOutcome = errors.New(`outcome must be "win" or "loss"`)

// Valid reports whether o is a recognized battle outcome.
func (o Outcome) Valid() bool {
	return o == OutcomeWin || o == OutcomeLoss
}
