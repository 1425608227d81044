package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

//go:generate mockgen -source=txmanager.go -destination=mock_txmanager.go -package=pg

const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
	numericOutOfRange    = "22003"

	defaultMaxRetries = 3
	defaultBackoff    = 10 * time.Millisecond
)

type txKey struct{}

type TransactionalFn func(ctx context.Context) error

type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type Manager struct {
	db         Beginner
	opts       pgx.TxOptions
	maxRetries int
	backoff    time.Duration
}

type Option func(*Manager)

// ParseIsoLevel maps a TX_ISOLATION value such as "repeatable read" to
// the pgx level.
func ParseIsoLevel(s string) (pgx.TxIsoLevel, error) {
	switch level := pgx.TxIsoLevel(strings.ToLower(strings.TrimSpace(s))); level {
	case pgx.ReadCommitted, pgx.RepeatableRead, pgx.Serializable:
		return level, nil
	default:
		return "", fmt.Errorf("unsupported isolation level %q", s)
	}
}

func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(m *Manager) {
		m.opts.IsoLevel = level
	}
}

func WithMaxRetries(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxRetries = n
		}
	}
}

func WithBackoff(d time.Duration) Option {
	return func(m *Manager) {
		m.backoff = d
	}
}

func NewTXManager(db Beginner, opts ...Option) *Manager {
	m := &Manager{
		db:         db,
		opts:       pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		maxRetries: defaultMaxRetries,
		backoff:    defaultBackoff,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Begin runs fn in a transaction and commits when fn returns nil. A nested
// call joins the transaction already bound to ctx. The whole unit is rerun
// on serialization failures and deadlocks, up to the configured attempts.
func (m *Manager) Begin(ctx context.Context, fn TransactionalFn) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.maxRetries; attempt++ {
		err = m.run(ctx, fn)
		if err == nil || !IsConflict(err) {
			return err
		}
		zap.L().Warn("transaction conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
		if attempt == m.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.backoff * time.Duration(attempt)):
		}
	}
	return err
}

func (m *Manager) run(ctx context.Context, fn TransactionalFn) error {
	tx, err := m.db.BeginTx(ctx, m.opts)
	if err != nil {
		zap.L().Error("can't begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zap.L().Error("can't rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		zap.L().Error("can't commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// IsConflict reports whether err is a serialization failure or a deadlock.
func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == serializationFailure || pgErr.Code == deadlockDetected
}

// IsOutOfRange reports whether a value did not fit its column type.
func IsOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == numericOutOfRange
}
