// Package repository contains data access logic for meals, separated
// from HTTP handlers. This file defines the error values shared by the
// repository so handlers can distinguish failure classes with errors.Is
// instead of parsing messages.
package repository

import "errors"

// ErrMealNotFound is returned when a meal id or name matches no visible
// row. Soft-deleted rows are reported as not found on purpose: deleting
// the same meal twice must fail, and deleted meals must stay invisible
// to every read path.
var ErrMealNotFound = errors.New("meal not found")

// ErrMealExists is returned when creating a meal whose name is already
// taken.
var ErrMealExists = errors.New("meal already exists")

// ErrInvalidSortKey is returned by Leaderboard for sort keys other than
// wins and win_pct.
var ErrInvalidSortKey = errors.New("invalid leaderboard sort key")
