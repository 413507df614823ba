package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"warmintro-backend/domain/contact"
	"warmintro-backend/infrastructure/persistence/memory"
	pkgerrors "warmintro-backend/pkg/errors"
)

func TestResilientContactStore_PassesThroughOnSuccess(t *testing.T) {
	inner := memory.NewStore()
	c, err := contact.NewContact(contact.NewID(), "user123", "Alice")
	require.NoError(t, err)
	inner.AddContact(c)

	store := NewResilientContactStore(inner, zap.NewNop())

	contacts, err := store.ListContactsByOwner(context.Background(), "user123")
	require.NoError(t, err)
	assert.Len(t, contacts, 1)

	got, err := store.GetContact(context.Background(), c.ID())
	require.NoError(t, err)
	assert.True(t, got.ID().Equals(c.ID()))
}

func TestResilientContactStore_NotFoundDoesNotTrip(t *testing.T) {
	inner := memory.NewStore()
	store := NewResilientContactStore(inner, zap.NewNop())

	for i := 0; i < 10; i++ {
		_, err := store.GetContact(context.Background(), contact.NewID())
		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
	}
}

func TestResilientContactStore_OpensAfterRepeatedFailures(t *testing.T) {
	inner := memory.NewStore()
	inner.ContactsErr = errors.New("table offline")
	store := NewResilientContactStore(inner, zap.NewNop())

	var lastErr error
	for i := 0; i < 10; i++ {
		_, lastErr = store.ListContactsByOwner(context.Background(), "user123")
		require.Error(t, lastErr)
	}

	assert.True(t, pkgerrors.IsUnavailable(lastErr))
	assert.True(t, pkgerrors.IsRetryable(lastErr))
}
