package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resistance-accounts/internal/logger"
	"github.com/MKhiriev/resistance-accounts/migrations"
)

// DB wraps a *sql.DB together with the dialect-specific pieces every
// repository needs: the error classifier, the squirrel placeholder format
// and the per-transaction timeout.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	queryTimeout       time.Duration
	logger             *logger.Logger
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// WithinTx implements [Transactor].
//
// If ctx already carries a transaction, fn joins it and the outer call keeps
// control of commit and rollback. Otherwise a new transaction is started,
// bounded by the configured query timeout.
func (db *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	if db.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.queryTimeout)
		defer cancel()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "DB.WithinTx").
			Str("classification", db.errorClassificator.Classify(err).String()).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	// no-op after a successful commit
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "DB.WithinTx").
			Str("classification", db.errorClassificator.Classify(err).String()).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// run executes fn against the transaction carried by ctx, or inside a fresh
// one when there is none.
func (db *DB) run(ctx context.Context, fn func(ctx context.Context, q querier) error) error {
	if tx, ok := txFromContext(ctx); ok {
		return fn(ctx, tx)
	}

	return db.WithinTx(ctx, func(ctx context.Context) error {
		tx, _ := txFromContext(ctx)
		return fn(ctx, tx)
	})
}

// classify runs err through the dialect classifier and logs the verdict.
func (db *DB) classify(ctx context.Context, err error, fn string) ErrorClassification {
	verdict := db.errorClassificator.Classify(err)

	logger.FromContext(ctx).Debug().
		Str("func", fn).
		Str("dialect", db.dialect).
		Str("sqlstate", postgresError(err)).
		Str("classification", verdict.String()).
		Msg("classified database error")

	return verdict
}
