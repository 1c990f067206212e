package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the DDL for the meals table. Soft deletion means rows
// only ever flip the deleted flag, so no archive table exists.
const schema = `
CREATE TABLE IF NOT EXISTS meals (
	id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
	meal       VARCHAR(255) NOT NULL,
	cuisine    VARCHAR(255) NOT NULL,
	price      DOUBLE NOT NULL,
	difficulty VARCHAR(8) NOT NULL,
	battles    INT UNSIGNED NOT NULL DEFAULT 0,
	wins       INT UNSIGNED NOT NULL DEFAULT 0,
	deleted    BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (id),
	UNIQUE KEY uq_meals_meal (meal)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// CreateSchema provisions the meals table. It is safe to call on every
// start: the statement is IF NOT EXISTS and existing columns are never
// migrated.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
