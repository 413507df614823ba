package contact

import "errors"

// Edge is a directed connection between two contacts: the source contact
// knows the target contact. Edges carry no weight. Multiple edges may
// converge on the same target from different sources; deduplication of
// those is the suggestion engine's concern, not the edge's.
type Edge struct {
	SourceID ID
	TargetID ID
}

// NewEdge builds a connection edge.
func NewEdge(sourceID, targetID ID) (Edge, error) {
	if sourceID.IsZero() || targetID.IsZero() {
		return Edge{}, errors.New("edge requires both source and target IDs")
	}
	if sourceID.Equals(targetID) {
		return Edge{}, errors.New("edge cannot point at its own source")
	}
	return Edge{SourceID: sourceID, TargetID: targetID}, nil
}
