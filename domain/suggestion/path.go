package suggestion

import "warmintro-backend/domain/contact"

// PathAnchor is the literal shown when a candidate has no mutual
// connection: the path starts and ends at the requesting user.
const PathAnchor = "You"

// PathNode is one hop of an introduction path, with the display attributes
// the UI presents. The anchor node carries no contact ID.
type PathNode struct {
	ContactID string `json:"contact_id,omitempty"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
	Role      string `json:"role,omitempty"`
}

// AnchorNode returns the path node representing the requesting user.
func AnchorNode() PathNode {
	return PathNode{Name: PathAnchor}
}

// NodeFromContact builds a path node from a contact's display attributes.
func NodeFromContact(c *contact.Contact) PathNode {
	return PathNode{
		ContactID: c.ID().String(),
		Name:      c.DisplayName(),
		Company:   c.Company(),
		Role:      c.Role(),
	}
}

// ConnectionPath is the resolved introduction path for one candidate.
//
// DirectPath holds only the first mutual connection found, in edge-fetch
// order; only one hop is ever resolved no matter how many intermediaries
// exist. When no mutual connection exists it degrades to the bare anchor.
// AllMutualConnections lists every distinct first-degree contact with an
// edge to the candidate.
type ConnectionPath struct {
	Candidate            PathNode   `json:"candidate"`
	DirectPath           []PathNode `json:"direct_path"`
	AllMutualConnections []PathNode `json:"all_mutual_connections"`
}
