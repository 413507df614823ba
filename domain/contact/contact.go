package contact

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ID is a value object identifying a single contact.
// Value objects are immutable and have no identity beyond their value.
type ID struct {
	value string
}

// NewID creates a new random contact ID.
func NewID() ID {
	return ID{value: uuid.New().String()}
}

// ParseID creates an ID from an existing string.
func ParseID(id string) (ID, error) {
	if strings.TrimSpace(id) == "" {
		return ID{}, errors.New("contact ID cannot be empty")
	}
	return ID{value: id}, nil
}

// String returns the string representation of the ID.
func (id ID) String() string {
	return id.value
}

// Equals checks if two IDs are equal.
func (id ID) Equals(other ID) bool {
	return id.value == other.value
}

// IsZero checks if the ID is the zero value.
func (id ID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("contact ID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}

// Contact is a person in a user's professional network. Each contact is
// owned by exactly one user; the recommendation engine only ever reads
// contacts, it never mutates them.
//
// Optional attributes use the empty string as their explicit unset state.
// Callers must go through the Has* accessors instead of comparing fields
// against "" so that unset never leaks into signal computation.
type Contact struct {
	id          ID
	ownerUserID string
	displayName string
	headline    string
	company     string
	role        string
	industry    string
	profileURL  string
	email       string
	phone       string
}

// NewContact validates and builds a contact record at the store boundary.
func NewContact(id ID, ownerUserID, displayName string) (*Contact, error) {
	if id.IsZero() {
		return nil, errors.New("contact requires an ID")
	}
	if ownerUserID == "" {
		return nil, errors.New("contact requires an owner")
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, errors.New("contact requires a display name")
	}
	return &Contact{
		id:          id,
		ownerUserID: ownerUserID,
		displayName: strings.TrimSpace(displayName),
	}, nil
}

func (c *Contact) ID() ID              { return c.id }
func (c *Contact) OwnerUserID() string { return c.ownerUserID }
func (c *Contact) DisplayName() string { return c.displayName }
func (c *Contact) Headline() string    { return c.headline }
func (c *Contact) Company() string     { return c.company }
func (c *Contact) Role() string        { return c.role }
func (c *Contact) Industry() string    { return c.industry }
func (c *Contact) ProfileURL() string  { return c.profileURL }
func (c *Contact) Email() string       { return c.email }
func (c *Contact) Phone() string       { return c.phone }

// HasIndustry reports whether the contact declared an industry.
func (c *Contact) HasIndustry() bool { return c.industry != "" }

// HasCompany reports whether the contact declared a company.
func (c *Contact) HasCompany() bool { return c.company != "" }

// WithProfile sets the optional descriptive attributes. Empty values stay unset.
func (c *Contact) WithProfile(headline, company, role, industry string) *Contact {
	c.headline = strings.TrimSpace(headline)
	c.company = strings.TrimSpace(company)
	c.role = strings.TrimSpace(role)
	c.industry = strings.TrimSpace(industry)
	return c
}

// WithChannels sets the optional contact channels. Empty values stay unset.
func (c *Contact) WithChannels(profileURL, email, phone string) *Contact {
	c.profileURL = strings.TrimSpace(profileURL)
	c.email = strings.TrimSpace(email)
	c.phone = strings.TrimSpace(phone)
	return c
}
