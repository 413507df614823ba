package memory

import (
	"context"
	"sync"

	"warmintro-backend/domain/action"
	"warmintro-backend/domain/contact"
	pkgerrors "warmintro-backend/pkg/errors"
)

// Store is an in-memory implementation of the contact graph and action
// stores, used by tests and local development. All methods are safe for
// concurrent use.
//
// The error fields inject failures for specific operations so tests can
// exercise the partial-data policy.
type Store struct {
	mu sync.RWMutex

	contacts        map[string]*contact.Contact // by contact ID
	byOwner         map[string][]contact.ID     // first-degree IDs per user, insertion order
	edges           []contact.Edge              // insertion order is discovery order
	industries      map[string]string           // by user ID
	targetCompanies map[string][]string         // by user ID
	actions         []*action.SuggestionAction

	// failure injection
	ContactsErr  error // ListContactsByOwner
	EdgesErr     error // ListEdgesBySource / ListEdgesByTarget
	IndustryErr  error // GetUserIndustry
	CompaniesErr error // ListTargetCompanies
	ActionsErr   error // SaveAction
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		contacts:        make(map[string]*contact.Contact),
		byOwner:         make(map[string][]contact.ID),
		industries:      make(map[string]string),
		targetCompanies: make(map[string][]string),
	}
}

// AddContact registers a contact under its owner
func (s *Store) AddContact(c *contact.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[c.ID().String()] = c
	s.byOwner[c.OwnerUserID()] = append(s.byOwner[c.OwnerUserID()], c.ID())
}

// AddEdge registers a directed connection edge
func (s *Store) AddEdge(sourceID, targetID contact.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges = append(s.edges, contact.Edge{SourceID: sourceID, TargetID: targetID})
}

// AddUnlistedContact registers a contact by ID without indexing it under
// its owner, so owner listings never return it. This simulates a contact
// that surfaces only through somebody else's edge.
func (s *Store) AddUnlistedContact(c *contact.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[c.ID().String()] = c
}

// RemoveContact deletes a contact record but leaves edges pointing at it,
// simulating a broken edge reference
func (s *Store) RemoveContact(id contact.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contacts, id.String())
}

// SetIndustry sets a user's declared industry
func (s *Store) SetIndustry(userID, industry string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.industries[userID] = industry
}

// SetTargetCompanies sets a user's target company list
func (s *Store) SetTargetCompanies(userID string, companies []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targetCompanies[userID] = companies
}

// Actions returns a snapshot of the recorded actions
func (s *Store) Actions() []*action.SuggestionAction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*action.SuggestionAction, len(s.actions))
	copy(out, s.actions)
	return out
}

// ListContactsByOwner implements ports.ContactGraphStore
func (s *Store) ListContactsByOwner(ctx context.Context, userID string) ([]*contact.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ContactsErr != nil {
		return nil, s.ContactsErr
	}
	ids := s.byOwner[userID]
	contacts := make([]*contact.Contact, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.contacts[id.String()]; ok {
			contacts = append(contacts, c)
		}
	}
	return contacts, nil
}

// GetContact implements ports.ContactGraphStore
func (s *Store) GetContact(ctx context.Context, id contact.ID) (*contact.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contacts[id.String()]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("contact")
	}
	return c, nil
}

// ListEdgesBySource implements ports.ContactGraphStore
func (s *Store) ListEdgesBySource(ctx context.Context, sourceIDs []contact.ID) ([]contact.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.EdgesErr != nil {
		return nil, s.EdgesErr
	}
	inSet := make(map[string]bool, len(sourceIDs))
	for _, id := range sourceIDs {
		inSet[id.String()] = true
	}
	var out []contact.Edge
	for _, edge := range s.edges {
		if inSet[edge.SourceID.String()] {
			out = append(out, edge)
		}
	}
	return out, nil
}

// ListEdgesByTarget implements ports.ContactGraphStore
func (s *Store) ListEdgesByTarget(ctx context.Context, targetID contact.ID, sourceFilter []contact.ID) ([]contact.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.EdgesErr != nil {
		return nil, s.EdgesErr
	}
	allowed := make(map[string]bool, len(sourceFilter))
	for _, id := range sourceFilter {
		allowed[id.String()] = true
	}
	var out []contact.Edge
	for _, edge := range s.edges {
		if !edge.TargetID.Equals(targetID) {
			continue
		}
		if len(sourceFilter) > 0 && !allowed[edge.SourceID.String()] {
			continue
		}
		out = append(out, edge)
	}
	return out, nil
}

// GetUserIndustry implements ports.ContactGraphStore
func (s *Store) GetUserIndustry(ctx context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.IndustryErr != nil {
		return "", s.IndustryErr
	}
	return s.industries[userID], nil
}

// ListTargetCompanies implements ports.ContactGraphStore
func (s *Store) ListTargetCompanies(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.CompaniesErr != nil {
		return nil, s.CompaniesErr
	}
	return s.targetCompanies[userID], nil
}

// SaveAction implements ports.ActionStore
func (s *Store) SaveAction(ctx context.Context, record *action.SuggestionAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ActionsErr != nil {
		return s.ActionsErr
	}
	s.actions = append(s.actions, record)
	return nil
}
