package services

import (
	"context"

	"go.uber.org/zap"

	"warmintro-backend/application/ports"
	"warmintro-backend/domain/contact"
	"warmintro-backend/domain/suggestion"
	pkgerrors "warmintro-backend/pkg/errors"
)

// PathResolver reconstructs a presentable introduction path for a single
// candidate. Only one hop is ever resolved: the direct path holds the
// first mutual connection in edge-fetch order, regardless of how many
// intermediaries exist. This mirrors the product's first-found semantics
// and is deliberately not a shortest-path search.
type PathResolver struct {
	store  ports.ContactGraphStore
	logger *zap.Logger
}

// NewPathResolver creates a path resolver
func NewPathResolver(store ports.ContactGraphStore, logger *zap.Logger) *PathResolver {
	return &PathResolver{store: store, logger: logger}
}

// Resolve computes the introduction path from the user to the candidate.
// Unknown candidate IDs fail with a not-found error.
func (r *PathResolver) Resolve(ctx context.Context, userID string, candidateID contact.ID) (*suggestion.ConnectionPath, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if candidateID.IsZero() {
		return nil, pkgerrors.NewValidationError("candidate ID cannot be empty")
	}

	candidate, err := r.store.GetContact(ctx, candidateID)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.NewNotFoundError("candidate contact")
		}
		return nil, pkgerrors.Wrap(err, "failed to load candidate contact")
	}

	firstDegree, err := r.store.ListContactsByOwner(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to load first-degree contacts")
	}

	byID := make(map[string]*contact.Contact, len(firstDegree))
	sourceIDs := make([]contact.ID, 0, len(firstDegree))
	for _, c := range firstDegree {
		byID[c.ID().String()] = c
		sourceIDs = append(sourceIDs, c.ID())
	}

	path := &suggestion.ConnectionPath{
		Candidate:            suggestion.NodeFromContact(candidate),
		DirectPath:           []suggestion.PathNode{},
		AllMutualConnections: []suggestion.PathNode{},
	}

	if len(sourceIDs) > 0 {
		edges, err := r.store.ListEdgesByTarget(ctx, candidateID, sourceIDs)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "failed to load edges to candidate")
		}

		seen := make(map[string]bool, len(edges))
		for _, edge := range edges {
			key := edge.SourceID.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			mutual, ok := byID[key]
			if !ok {
				// The store returned an edge outside the filter set.
				r.logger.Warn("Edge source is not a first-degree contact, skipping",
					zap.String("userID", userID),
					zap.String("sourceID", key),
					zap.String("candidateID", candidateID.String()),
				)
				continue
			}
			path.AllMutualConnections = append(path.AllMutualConnections, suggestion.NodeFromContact(mutual))
		}
	}

	if len(path.AllMutualConnections) > 0 {
		// First mutual connection found, by the edge-fetch's natural order.
		path.DirectPath = []suggestion.PathNode{path.AllMutualConnections[0]}
	} else {
		path.DirectPath = []suggestion.PathNode{suggestion.AnchorNode()}
	}

	return path, nil
}
