package tx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithTxNilLeavesContextUntouched(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithTx(ctx, nil))
	_, ok := From(ctx)
	assert.False(t, ok)
}

func TestExecutorFromFallsBackToDB(t *testing.T) {
	db := &sql.DB{}
	assert.Same(t, db, ExecutorFrom(context.Background(), db))

	sqlTx := &sql.Tx{}
	ctx := WithTx(context.Background(), sqlTx)
	got, ok := From(ctx)
	assert.True(t, ok)
	assert.Same(t, sqlTx, got)
	assert.Same(t, sqlTx, ExecutorFrom(ctx, db))
}

func TestRunReusesContextTransaction(t *testing.T) {
	sqlTx := &sql.Tx{}
	ctx := WithTx(context.Background(), sqlTx)

	called := false
	err := Run(ctx, nil, func(inner context.Context) error {
		called = true
		got, _ := From(inner)
		assert.Same(t, sqlTx, got)
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}
