package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"warmintro-backend/domain/contact"
	"warmintro-backend/infrastructure/persistence/memory"
	"warmintro-backend/pkg/observability"
)

func addContact(t *testing.T, store *memory.Store, owner, name string) *contact.Contact {
	t.Helper()
	c, err := contact.NewContact(contact.NewID(), owner, name)
	require.NoError(t, err)
	store.AddContact(c)
	return c
}

func newDiscovery(store *memory.Store) *CandidateDiscovery {
	return NewCandidateDiscovery(store, zap.NewNop(), observability.NewCollector("warmintro"), 4)
}

func TestDiscoverCandidates_EmptyNetwork(t *testing.T) {
	store := memory.NewStore()
	svc := newDiscovery(store)

	result, err := svc.DiscoverCandidates(context.Background(), "user123")

	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
	assert.Empty(t, result.FirstDegree)
}

func TestDiscoverCandidates_SecondDegreeOnly(t *testing.T) {
	store := memory.NewStore()
	alice := addContact(t, store, "user123", "Alice")
	bob := addContact(t, store, "user123", "Bob")
	carol := addContact(t, store, "other-owner", "Carol")

	// Alice knows Carol; Alice also knows Bob, who is already first-degree.
	store.AddEdge(alice.ID(), carol.ID())
	store.AddEdge(alice.ID(), bob.ID())

	svc := newDiscovery(store)
	result, err := svc.DiscoverCandidates(context.Background(), "user123")

	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.True(t, result.Candidates[0].Contact.ID().Equals(carol.ID()))
	assert.Len(t, result.FirstDegree, 2)
}

func TestDiscoverCandidates_ExcludesOwnContacts(t *testing.T) {
	store := memory.NewStore()
	alice := addContact(t, store, "user123", "Alice")

	// Dave is owned by the requesting user but only reachable through
	// Alice's edge; he must still be excluded from the candidate set.
	dave, err := contact.NewContact(contact.NewID(), "user123", "Dave")
	require.NoError(t, err)
	store.AddUnlistedContact(dave)
	store.AddEdge(alice.ID(), dave.ID())

	svc := newDiscovery(store)
	result, err := svc.DiscoverCandidates(context.Background(), "user123")

	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
}

func TestDiscoverCandidates_MergesIntermediaries(t *testing.T) {
	store := memory.NewStore()
	alice := addContact(t, store, "user123", "Alice")
	bob := addContact(t, store, "user123", "Bob")
	carol := addContact(t, store, "other-owner", "Carol")

	store.AddEdge(alice.ID(), carol.ID())
	store.AddEdge(bob.ID(), carol.ID())

	svc := newDiscovery(store)
	result, err := svc.DiscoverCandidates(context.Background(), "user123")

	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	cand := result.Candidates[0]
	assert.Equal(t, 2, cand.MutualCount())
	assert.True(t, cand.FirstIntermediary().Equals(alice.ID()))
}

func TestDiscoverCandidates_ParallelEdgesCountOnce(t *testing.T) {
	store := memory.NewStore()
	alice := addContact(t, store, "user123", "Alice")
	carol := addContact(t, store, "other-owner", "Carol")

	store.AddEdge(alice.ID(), carol.ID())
	store.AddEdge(alice.ID(), carol.ID())

	svc := newDiscovery(store)
	result, err := svc.DiscoverCandidates(context.Background(), "user123")

	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, 1, result.Candidates[0].MutualCount())
}

func TestDiscoverCandidates_SkipsBrokenEdgeTarget(t *testing.T) {
	store := memory.NewStore()
	alice := addContact(t, store, "user123", "Alice")
	carol := addContact(t, store, "other-owner", "Carol")
	ghost := addContact(t, store, "other-owner", "Ghost")

	store.AddEdge(alice.ID(), carol.ID())
	store.AddEdge(alice.ID(), ghost.ID())
	store.RemoveContact(ghost.ID())

	svc := newDiscovery(store)
	result, err := svc.DiscoverCandidates(context.Background(), "user123")

	require.NoError(t, err)
	require.Len(t, result.Candidates, 1)
	assert.True(t, result.Candidates[0].Contact.ID().Equals(carol.ID()))
}

func TestDiscoverCandidates_FirstDegreeFetchFailureIsFatal(t *testing.T) {
	store := memory.NewStore()
	store.ContactsErr = errors.New("table offline")

	svc := newDiscovery(store)
	_, err := svc.DiscoverCandidates(context.Background(), "user123")

	assert.Error(t, err)
}

func TestDiscoverCandidates_EdgeFetchFailureIsFatal(t *testing.T) {
	store := memory.NewStore()
	addContact(t, store, "user123", "Alice")
	store.EdgesErr = errors.New("index offline")

	svc := newDiscovery(store)
	_, err := svc.DiscoverCandidates(context.Background(), "user123")

	assert.Error(t, err)
}

func TestDiscoverCandidates_RequiresUserID(t *testing.T) {
	svc := newDiscovery(memory.NewStore())

	_, err := svc.DiscoverCandidates(context.Background(), "")

	assert.Error(t, err)
}
