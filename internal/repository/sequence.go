package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// nextSequentialID returns the next "<prefix>NNN" id for table. The caller must run
// inside tx so the advisory lock is held until the insert commits. Ids that do not
// follow the prefix+digits shape are ignored.
func nextSequentialID(ctx context.Context, tx *sqlx.Tx, table, column, prefix string) (string, error) {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, table); err != nil {
		return "", fmt.Errorf("lock %s sequence: %w", table, err)
	}

	query := fmt.Sprintf(`SELECT COALESCE(MAX(CAST(SUBSTRING(%s FROM %d) AS BIGINT)), 0) FROM %s WHERE %s ~ $1`,
		column, len(prefix)+1, table, column)
	var last int64
	if err := tx.GetContext(ctx, &last, query, "^"+prefix+"[0-9]+$"); err != nil {
		return "", fmt.Errorf("read %s sequence: %w", table, err)
	}
	return fmt.Sprintf("%s%03d", prefix, last+1), nil
}

// insertWithSequentialID assigns a fresh id via assign and runs insert in one transaction.
func insertWithSequentialID(ctx context.Context, db *sqlx.DB, table, column, prefix string, assign func(id string), insert func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert %s: %w", table, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	id, err := nextSequentialID(ctx, tx, table, column, prefix)
	if err != nil {
		return err
	}
	assign(id)

	if err = insert(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit insert %s: %w", table, err)
	}
	return nil
}
