package ports

import (
	"context"

	"warmintro-backend/domain/action"
	"warmintro-backend/domain/contact"
)

// ContactGraphStore is the engine's read-only view of the contact graph.
// This is a port in hexagonal architecture - the engine never writes
// through it, and tests substitute it with an in-memory fake.
type ContactGraphStore interface {
	// ListContactsByOwner retrieves the user's first-degree contacts
	ListContactsByOwner(ctx context.Context, userID string) ([]*contact.Contact, error)

	// GetContact retrieves a single contact by ID
	GetContact(ctx context.Context, id contact.ID) (*contact.Contact, error)

	// ListEdgesBySource retrieves all edges whose source is one of the given contacts
	ListEdgesBySource(ctx context.Context, sourceIDs []contact.ID) ([]contact.Edge, error)

	// ListEdgesByTarget retrieves edges pointing at a contact, restricted to
	// sources in the filter set when one is given
	ListEdgesByTarget(ctx context.Context, targetID contact.ID, sourceFilter []contact.ID) ([]contact.Edge, error)

	// GetUserIndustry retrieves the user's declared industry; empty when unset
	GetUserIndustry(ctx context.Context, userID string) (string, error)

	// ListTargetCompanies retrieves the user's declared target companies
	ListTargetCompanies(ctx context.Context, userID string) ([]string, error)
}

// ActionStore persists suggestion feedback. Pure append: no read-modify-write
// and no idempotence guarantee.
type ActionStore interface {
	// SaveAction appends one audit record
	SaveAction(ctx context.Context, record *action.SuggestionAction) error
}
