package commands

import (
	pkgerrors "warmintro-backend/pkg/errors"
)

// RecordActionCommand records user feedback on a suggested candidate.
// Recording is append-only: sending the same command twice produces two
// audit records.
type RecordActionCommand struct {
	UserID      string
	CandidateID string
	Action      string
	Notes       string
}

// Validate implements bus.Command
func (c RecordActionCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("userID is required")
	}
	if c.CandidateID == "" {
		return pkgerrors.NewValidationError("candidate ID is required")
	}
	if c.Action == "" {
		return pkgerrors.NewValidationError("action is required")
	}
	return nil
}
