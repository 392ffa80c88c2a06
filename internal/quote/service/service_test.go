package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assurance/internal/quote/models"
	"assurance/internal/quote/store"
	dErrors "assurance/pkg/domain-errors"
)

func TestService(t *testing.T) {
	st := store.NewInMemoryStore()
	require.NoError(t, st.Seed([]models.Quote{{ID: "q1", QuoteNumber: "Q-1"}}))
	svc := NewService(st)
	ctx := context.Background()

	q, err := svc.FindByID(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "Q-1", q.QuoteNumber)

	_, err = svc.FindByID(ctx, "q2")
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))

	_, err = svc.FindByID(ctx, "")
	assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
