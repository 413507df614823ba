package action

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"warmintro-backend/domain/contact"
	pkgerrors "warmintro-backend/pkg/errors"
)

// Kind is the closed enumeration of things a user can do with a suggestion.
type Kind string

const (
	KindViewed    Kind = "viewed"
	KindAccepted  Kind = "accepted"
	KindIgnored   Kind = "ignored"
	KindContacted Kind = "contacted"
)

const maxNotesLength = 2000

// ParseKind validates a raw action string against the closed enumeration.
func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindViewed:
		return KindViewed, nil
	case KindAccepted:
		return KindAccepted, nil
	case KindIgnored:
		return KindIgnored, nil
	case KindContacted:
		return KindContacted, nil
	default:
		return "", pkgerrors.NewValidationError(fmt.Sprintf("unknown action kind: %q", raw))
	}
}

// SuggestionAction is one audit record of user feedback on a suggested
// candidate. Records are append-only: created once, never mutated, never
// deleted, and recording the same action twice produces two records.
// Nothing reads these back into scoring.
type SuggestionAction struct {
	ID          string
	UserID      string
	CandidateID contact.ID
	Kind        Kind
	Notes       string
	CreatedAt   time.Time
}

// NewSuggestionAction validates inputs and builds a new audit record.
func NewSuggestionAction(userID string, candidateID contact.ID, kind string, notes string) (*SuggestionAction, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if candidateID.IsZero() {
		return nil, pkgerrors.NewValidationError("candidate ID cannot be empty")
	}
	parsed, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	notes = strings.TrimSpace(notes)
	if len(notes) > maxNotesLength {
		return nil, pkgerrors.NewValidationError(fmt.Sprintf("notes exceed %d characters", maxNotesLength))
	}

	return &SuggestionAction{
		ID:          uuid.New().String(),
		UserID:      userID,
		CandidateID: candidateID,
		Kind:        parsed,
		Notes:       notes,
		CreatedAt:   time.Now(),
	}, nil
}
