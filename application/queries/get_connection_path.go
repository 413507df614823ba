package queries

import (
	pkgerrors "warmintro-backend/pkg/errors"
)

// GetConnectionPathQuery requests the introduction path for one candidate.
type GetConnectionPathQuery struct {
	UserID      string
	CandidateID string
}

// Validate implements bus.Query
func (q GetConnectionPathQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("userID is required")
	}
	if q.CandidateID == "" {
		return pkgerrors.NewValidationError("candidate ID is required")
	}
	return nil
}
