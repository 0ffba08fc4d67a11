package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTransaction_Commit(t *testing.T) {
	mock := newMockPool(t)
	repos := NewRepositories(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`pg_advisory_xact_lock`).
		WithArgs("enrollment:1:2").
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectCommit()

	err := repos.WithinTransaction(context.Background(), func(ctx context.Context, tx *Repositories) error {
		return tx.Enrollments.LockPair(ctx, 1, 2)
	})
	require.NoError(t, err)
}

func TestWithinTransaction_RollbackOnError(t *testing.T) {
	mock := newMockPool(t)
	repos := NewRepositories(mock)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repos.WithinTransaction(context.Background(), func(ctx context.Context, tx *Repositories) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestWithinTransaction_Nested(t *testing.T) {
	mock := newMockPool(t)
	repos := NewRepositories(mock)

	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := repos.WithinTransaction(context.Background(), func(ctx context.Context, outer *Repositories) error {
		return outer.WithinTransaction(ctx, func(ctx context.Context, inner *Repositories) error {
			calls++
			assert.Same(t, outer, inner)
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithinTransaction_RollbackOnPanic(t *testing.T) {
	mock := newMockPool(t)
	repos := NewRepositories(mock)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = repos.WithinTransaction(context.Background(), func(ctx context.Context, tx *Repositories) error {
			panic("kaboom")
		})
	})
}
