// Package db provides database utilities including transaction management.
package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "airadmin/internal/shared/errors"
)

// txKey is the context key for storing transaction.
type txKey struct{}

// TransactionManager manages database transactions. Every lifecycle
// operation runs inside exactly one transaction opened here; repositories
// never commit on their own.
type TransactionManager struct {
	db        *gorm.DB
	opts      *sql.TxOptions
	opTimeout time.Duration
}

// NewTransactionManager creates a TransactionManager with read-committed
// isolation and a bounded per-operation timeout. A timeout of zero disables
// the deadline.
func NewTransactionManager(db *gorm.DB, opTimeout time.Duration) *TransactionManager {
	return &TransactionManager{
		db:        db,
		opts:      &sql.TxOptions{Isolation: sql.LevelReadCommitted},
		opTimeout: opTimeout,
	}
}

// NewTransactionManagerWithOptions creates a TransactionManager with custom
// transaction options. Pass nil opts for the driver default isolation
// (sqlite in tests does not accept read-committed).
func NewTransactionManagerWithOptions(db *gorm.DB, opts *sql.TxOptions, opTimeout time.Duration) *TransactionManager {
	return &TransactionManager{db: db, opts: opts, opTimeout: opTimeout}
}

// RunInTransaction executes the given function within a database transaction.
// If the function returns an error, the transaction will be rolled back.
// If the function completes successfully, the transaction will be committed.
// A deadline overrun surfaces as a storage timeout after the implicit rollback.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tm.opTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, tm.opTimeout)
		defer cancel()
	}

	run := func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	}

	var err error
	if tm.opts != nil {
		err = tm.db.WithContext(ctx).Transaction(run, tm.opts)
	} else {
		err = tm.db.WithContext(ctx).Transaction(run)
	}

	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStorageTimeoutError("operation exceeded the database deadline", err)
	}
	return err
}

// GetTx returns the transaction from context if available, otherwise returns the default DB.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return tm.db.WithContext(ctx)
}

// GetTxFromContext returns the transaction from context if available.
// This is a standalone function for use in repositories.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
