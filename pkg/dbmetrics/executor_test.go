package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor_WithoutTransaction(t *testing.T) {
	db := Wrap(&sql.DB{}, nil)

	assert.Same(t, db, GetExecutor(context.Background(), db))
	assert.False(t, IsInTransaction(context.Background()))
}

func TestGetExecutor_WithTransaction(t *testing.T) {
	db := Wrap(&sql.DB{}, nil)
	tx := &fakeTx{}
	ctx := WithTx(context.Background(), tx)

	assert.True(t, IsInTransaction(ctx))
	assert.Equal(t, TxExecutor(tx), GetExecutor(ctx, db))
}
