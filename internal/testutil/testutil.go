// Package testutil provides shared helpers for tests that need a real
// database. Tests run against an in-memory sqlite database whose schema
// mirrors the MySQL one, so no external server is required.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/iliyamo/meal-battle-arena/internal/model"
	"github.com/iliyamo/meal-battle-arena/internal/repository"
)

// OpenTestDB opens a fresh in-memory database with the meals schema and
// registers cleanup. The pool is capped at a single connection because
// every in-memory sqlite connection is its own separate database.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	const schema = `
	CREATE TABLE meals (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		meal       TEXT NOT NULL UNIQUE,
		cuisine    TEXT NOT NULL,
		price      REAL NOT NULL,
		difficulty TEXT NOT NULL,
		battles    INTEGER NOT NULL DEFAULT 0,
		wins       INTEGER NOT NULL DEFAULT 0,
		deleted    BOOLEAN NOT NULL DEFAULT FALSE
	)`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}
	return db
}

// CreateTestMeal inserts a meal through the repository and returns the
// stored row with its assigned id.
func CreateTestMeal(t *testing.T, repo *repository.MealRepo, name, cuisine string, price float64, difficulty model.Difficulty) *model.Meal {
	t.Helper()

	m := &model.Meal{Name: name, Cuisine: cuisine, Price: price, Difficulty: difficulty}
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("failed to create test meal %q: %v", name, err)
	}
	return m
}

// SetStats forces battle counters on a row directly, bypassing the
// repository, so leaderboard fixtures do not need to replay battles.
func SetStats(t *testing.T, db *sql.DB, id uint64, battles, wins uint64) {
	t.Helper()

	if _, err := db.Exec("UPDATE meals SET battles = ?, wins = ? WHERE id = ?", battles, wins, id); err != nil {
		t.Fatalf("failed to set stats for meal %d: %v", id, err)
	}
}
