package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"warmintro-backend/application/queries"
	"warmintro-backend/application/services"
	"warmintro-backend/domain/suggestion"
	"warmintro-backend/infrastructure/persistence/memory"
	pkgerrors "warmintro-backend/pkg/errors"
)

func newPathHandler(store *memory.Store) *GetConnectionPathHandler {
	logger := zap.NewNop()
	return NewGetConnectionPathHandler(services.NewPathResolver(store, logger), logger)
}

func TestGetConnectionPathHandler_ResolvesPath(t *testing.T) {
	store := memory.NewStore()
	alice := seedContact(t, store, "user123", "Alice", "", "")
	carol := seedContact(t, store, "other-owner", "Carol", "Acme", "")
	store.AddEdge(alice.ID(), carol.ID())

	handler := newPathHandler(store)
	path, err := handler.Handle(context.Background(), queries.GetConnectionPathQuery{
		UserID:      "user123",
		CandidateID: carol.ID().String(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Carol", path.Candidate.Name)
	require.Len(t, path.DirectPath, 1)
	assert.Equal(t, "Alice", path.DirectPath[0].Name)
}

func TestGetConnectionPathHandler_AnchorWithoutMutuals(t *testing.T) {
	store := memory.NewStore()
	seedContact(t, store, "user123", "Alice", "", "")
	carol := seedContact(t, store, "other-owner", "Carol", "", "")

	handler := newPathHandler(store)
	path, err := handler.Handle(context.Background(), queries.GetConnectionPathQuery{
		UserID:      "user123",
		CandidateID: carol.ID().String(),
	})

	require.NoError(t, err)
	require.Len(t, path.DirectPath, 1)
	assert.Equal(t, suggestion.PathAnchor, path.DirectPath[0].Name)
}

func TestGetConnectionPathHandler_UnknownCandidate(t *testing.T) {
	handler := newPathHandler(memory.NewStore())

	_, err := handler.Handle(context.Background(), queries.GetConnectionPathQuery{
		UserID:      "user123",
		CandidateID: "no-such-contact",
	})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestGetConnectionPathHandler_ValidatesQuery(t *testing.T) {
	handler := newPathHandler(memory.NewStore())

	_, err := handler.Handle(context.Background(), queries.GetConnectionPathQuery{UserID: "user123"})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}
