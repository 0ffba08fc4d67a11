package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/university/internal/pkg/logger"
)

const defaultTxTimeout = 30 * time.Second

type pgTransactor struct {
	db TxBeginner
}

// WithinTransaction begins a transaction, binds fresh repositories to it and
// runs fn. Nested calls from inside fn reuse the same transaction.
func (t *pgTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTxTimeout)
		defer cancel()
	}

	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	repos := bind(tx)
	repos.tx = nestedTransactor{repos: repos}

	if err := fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type nestedTransactor struct {
	repos *Repositories
}

func (n nestedTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	return fn(ctx, n.repos)
}
