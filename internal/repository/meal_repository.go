package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/meal-battle-arena/internal/model"
)

// mealColumns is the column list every meal SELECT uses, in Scan order.
const mealColumns = "id, meal, cuisine, price, difficulty, battles, wins, deleted"

// MealRepo encapsulates all database queries related to meals. It holds
// a sql.DB connection pool configured at startup; each operation
// acquires a connection for just its own statement and releases it on
// every exit path, so no connection outlives a single call.
type MealRepo struct {
	db *sql.DB
}

// NewMealRepo constructs a MealRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewMealRepo(db *sql.DB) *MealRepo {
	return &MealRepo{db: db}
}

// Create validates the meal and inserts a new row with zeroed counters
// and the deleted flag off. On success the meal's ID and DB-defaulted
// fields are populated from the stored row. A name collision is
// reported as ErrMealExists.
func (r *MealRepo) Create(ctx context.Context, m *model.Meal) error {
	if err := m.Validate(); err != nil {
		return err
	}

	const qInsert = "INSERT INTO meals (meal, cuisine, price, difficulty) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, m.Name, m.Cuisine, m.Price, string(m.Difficulty))
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w: %q", ErrMealExists, m.Name)
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	const qDefaults = "SELECT battles, wins, deleted FROM meals WHERE id = ?"
	return r.db.QueryRowContext(ctx, qDefaults, m.ID).Scan(&m.Battles, &m.Wins, &m.Deleted)
}

// GetByID fetches a single meal by primary key. Missing and
// soft-deleted rows both yield ErrMealNotFound.
func (r *MealRepo) GetByID(ctx context.Context, id uint64) (*model.Meal, error) {
	const q = "SELECT " + mealColumns + " FROM meals WHERE id = ?"

	var m model.Meal
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&m.ID, &m.Name, &m.Cuisine, &m.Price, &m.Difficulty, &m.Battles, &m.Wins, &m.Deleted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrMealNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if m.Deleted {
		return nil, fmt.Errorf("%w: id %d", ErrMealNotFound, id)
	}
	return &m, nil
}

// GetByName fetches a single meal by its unique name. Missing and
// soft-deleted rows both yield ErrMealNotFound.
func (r *MealRepo) GetByName(ctx context.Context, name string) (*model.Meal, error) {
	const q = "SELECT " + mealColumns + " FROM meals WHERE meal = ?"

	var m model.Meal
	err := r.db.QueryRowContext(ctx, q, name).Scan(
		&m.ID, &m.Name, &m.Cuisine, &m.Price, &m.Difficulty, &m.Battles, &m.Wins, &m.Deleted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrMealNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	if m.Deleted {
		return nil, fmt.Errorf("%w: %q", ErrMealNotFound, name)
	}
	return &m, nil
}

// SoftDelete marks the meal as deleted without removing the row. Both a
// missing id and an already-deleted row come back as ErrMealNotFound,
// so repeating a delete fails instead of silently succeeding twice.
func (r *MealRepo) SoftDelete(ctx context.Context, id uint64) error {
	if err := r.checkVisible(ctx, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, "UPDATE meals SET deleted = TRUE WHERE id = ?", id)
	return err
}

// UpdateStats records one battle outcome for the meal: battles always
// increments, wins only on a win. Counters of missing or soft-deleted
// meals are never touched.
func (r *MealRepo) UpdateStats(ctx context.Context, id uint64, outcome model.Outcome) error {
	if !outcome.Valid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidOutcome, outcome)
	}
	if err := r.checkVisible(ctx, id); err != nil {
		return err
	}

	q := "UPDATE meals SET battles = battles + 1 WHERE id = ?"
	if outcome == model.OutcomeWin {
		q = "UPDATE meals SET battles = battles + 1, wins = wins + 1 WHERE id = ?"
	}
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// checkVisible verifies that a row exists and is not soft deleted
// before a mutation proceeds.
func (r *MealRepo) checkVisible(ctx context.Context, id uint64) error {
	var deleted bool
	err := r.db.QueryRowContext(ctx, "SELECT deleted FROM meals WHERE id = ?", id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: id %d", ErrMealNotFound, id)
	}
	if err != nil {
		return err
	}
	if deleted {
		return fmt.Errorf("%w: id %d", ErrMealNotFound, id)
	}
	return nil
}

// isDuplicate reports whether err is a unique-constraint violation.
// MySQL signals these as error 1062; sqlite, which backs the tests,
// reports a "UNIQUE constraint failed" message.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "1062") || strings.Contains(msg, "UNIQUE constraint")
}
