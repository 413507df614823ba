package handlers

import (
	"context"

	"go.uber.org/zap"

	"warmintro-backend/application/queries"
	"warmintro-backend/application/services"
	"warmintro-backend/domain/contact"
	"warmintro-backend/domain/suggestion"
)

// GetConnectionPathHandler resolves the introduction path for a single
// candidate on demand.
type GetConnectionPathHandler struct {
	resolver *services.PathResolver
	logger   *zap.Logger
}

// NewGetConnectionPathHandler creates a new connection path handler
func NewGetConnectionPathHandler(resolver *services.PathResolver, logger *zap.Logger) *GetConnectionPathHandler {
	return &GetConnectionPathHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle executes the connection path query
func (h *GetConnectionPathHandler) Handle(ctx context.Context, query queries.GetConnectionPathQuery) (*suggestion.ConnectionPath, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidateID, err := contact.ParseID(query.CandidateID)
	if err != nil {
		return nil, err
	}

	path, err := h.resolver.Resolve(ctx, query.UserID, candidateID)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Resolved connection path",
		zap.String("userID", query.UserID),
		zap.String("candidateID", query.CandidateID),
		zap.Int("mutualConnections", len(path.AllMutualConnections)),
	)

	return path, nil
}
