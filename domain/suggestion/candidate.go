package suggestion

import (
	"warmintro-backend/domain/contact"
)

// Candidate is a second-degree contact discovered through the user's
// first-degree network: reachable via exactly one connection edge, not
// already first-degree, and not owned by the requesting user.
//
// IntermediaryIDs lists the distinct first-degree contacts that have an
// edge to this candidate, in discovery order. Its length is the mutual
// connection count and its first element is the default introduction path.
type Candidate struct {
	Contact         *contact.Contact
	IntermediaryIDs []contact.ID
}

// MutualCount returns the number of distinct first-degree intermediaries
// pointing at this candidate.
func (c *Candidate) MutualCount() int {
	return len(c.IntermediaryIDs)
}

// FirstIntermediary returns the first-discovered intermediary, or a zero
// ID when the candidate has none (which discovery never produces, but
// path resolution guards against anyway).
func (c *Candidate) FirstIntermediary() contact.ID {
	if len(c.IntermediaryIDs) == 0 {
		return contact.ID{}
	}
	return c.IntermediaryIDs[0]
}

// AddIntermediary records another first-degree contact pointing at this
// candidate. Duplicate intermediaries are ignored so that parallel edges
// from the same contact never inflate the mutual count.
func (c *Candidate) AddIntermediary(id contact.ID) {
	for _, existing := range c.IntermediaryIDs {
		if existing.Equals(id) {
			return
		}
	}
	c.IntermediaryIDs = append(c.IntermediaryIDs, id)
}
