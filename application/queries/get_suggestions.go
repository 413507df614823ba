package queries

import (
	"warmintro-backend/domain/contact"
	"warmintro-backend/domain/suggestion"
	pkgerrors "warmintro-backend/pkg/errors"
)

// GetSuggestionsQuery requests the ranked suggestion list for a user.
// The list is a view recomputed on every request; it has no lifecycle.
type GetSuggestionsQuery struct {
	UserID string
}

// Validate implements bus.Query
func (q GetSuggestionsQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("userID is required")
	}
	return nil
}

// ContactView is the candidate's presentable slice of a contact record.
type ContactView struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Headline    string `json:"headline,omitempty"`
	Company     string `json:"company,omitempty"`
	Role        string `json:"role,omitempty"`
	Industry    string `json:"industry,omitempty"`
	ProfileURL  string `json:"profile_url,omitempty"`
}

// NewContactView projects a contact onto its view.
func NewContactView(c *contact.Contact) ContactView {
	return ContactView{
		ID:          c.ID().String(),
		DisplayName: c.DisplayName(),
		Headline:    c.Headline(),
		Company:     c.Company(),
		Role:        c.Role(),
		Industry:    c.Industry(),
		ProfileURL:  c.ProfileURL(),
	}
}

// SuggestionView is one ranked entry of the suggestion list.
type SuggestionView struct {
	Candidate     ContactView              `json:"candidate"`
	Score         int                      `json:"score"`
	MutualCount   int                      `json:"mutual_count"`
	Path          []suggestion.PathNode    `json:"path"`
	ScoringDetail suggestion.ScoringDetail `json:"scoring_detail"`
}

// GetSuggestionsResult is the ranked suggestion list, sorted by score
// descending with stable discovery order between equal scores.
type GetSuggestionsResult struct {
	Suggestions []SuggestionView `json:"suggestions"`
	Total       int              `json:"total"`
}
