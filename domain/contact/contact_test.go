package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact_Success(t *testing.T) {
	id := NewID()

	c, err := NewContact(id, "user123", "  Ada Lovelace  ")

	require.NoError(t, err)
	assert.True(t, c.ID().Equals(id))
	assert.Equal(t, "user123", c.OwnerUserID())
	assert.Equal(t, "Ada Lovelace", c.DisplayName())
	assert.False(t, c.HasIndustry())
	assert.False(t, c.HasCompany())
}

func TestNewContact_RequiresOwnerAndName(t *testing.T) {
	id := NewID()

	_, err := NewContact(id, "", "Ada")
	assert.Error(t, err)

	_, err = NewContact(id, "user123", "   ")
	assert.Error(t, err)

	_, err = NewContact(ID{}, "user123", "Ada")
	assert.Error(t, err)
}

func TestContact_WithProfile_EmptyStaysUnset(t *testing.T) {
	c, err := NewContact(NewID(), "user123", "Ada")
	require.NoError(t, err)

	c.WithProfile("Engineer at Acme", "Acme", "Engineer", "")

	assert.True(t, c.HasCompany())
	assert.False(t, c.HasIndustry())
	assert.Equal(t, "Acme", c.Company())
}

func TestParseID_RejectsEmpty(t *testing.T) {
	_, err := ParseID("   ")
	assert.Error(t, err)

	id, err := ParseID("abc-123")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id.String())
}

func TestNewEdge_RejectsSelfLoop(t *testing.T) {
	id := NewID()

	_, err := NewEdge(id, id)
	assert.Error(t, err)
}

func TestNewEdge_RejectsZeroIDs(t *testing.T) {
	id := NewID()

	_, err := NewEdge(ID{}, id)
	assert.Error(t, err)

	_, err = NewEdge(id, ID{})
	assert.Error(t, err)
}

func TestNewEdge_Success(t *testing.T) {
	source := NewID()
	target := NewID()

	edge, err := NewEdge(source, target)

	require.NoError(t, err)
	assert.True(t, edge.SourceID.Equals(source))
	assert.True(t, edge.TargetID.Equals(target))
}
