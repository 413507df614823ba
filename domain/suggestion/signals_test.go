package suggestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warmintro-backend/domain/contact"
)

func profiledCandidate(t *testing.T, company, industry string, intermediaries int) *Candidate {
	t.Helper()
	c, err := contact.NewContact(contact.NewID(), "owner", "Candidate")
	require.NoError(t, err)
	c.WithProfile("", company, "", industry)
	cand := &Candidate{Contact: c}
	for i := 0; i < intermediaries; i++ {
		cand.AddIntermediary(contact.NewID())
	}
	return cand
}

func TestCollectSignals_SameIndustryCaseInsensitive(t *testing.T) {
	profile := NewUserProfile("FinTech", nil)
	cand := profiledCandidate(t, "", "fintech", 0)

	signals := CollectSignals(profile, cand)

	assert.True(t, signals.SameIndustry)
}

func TestCollectSignals_UnsetIndustryNeverMatches(t *testing.T) {
	// Neither side declared an industry; unset must not match unset.
	profile := NewUserProfile("", nil)
	cand := profiledCandidate(t, "", "", 0)

	signals := CollectSignals(profile, cand)

	assert.False(t, signals.SameIndustry)
}

func TestCollectSignals_CandidateIndustryUnset(t *testing.T) {
	profile := NewUserProfile("FinTech", nil)
	cand := profiledCandidate(t, "", "", 0)

	signals := CollectSignals(profile, cand)

	assert.False(t, signals.SameIndustry)
}

func TestCollectSignals_TargetCompanyCaseInsensitive(t *testing.T) {
	profile := NewUserProfile("", []string{"Acme Corp", "  Globex  "})
	cand := profiledCandidate(t, "ACME CORP", "", 0)

	signals := CollectSignals(profile, cand)

	assert.True(t, signals.InTargetCompany)
}

func TestCollectSignals_CompanyUnsetNeverMatches(t *testing.T) {
	profile := NewUserProfile("", []string{"Acme Corp"})
	cand := profiledCandidate(t, "", "", 0)

	signals := CollectSignals(profile, cand)

	assert.False(t, signals.InTargetCompany)
}

func TestCollectSignals_MutualCountCarriedThrough(t *testing.T) {
	profile := NewUserProfile("", nil)
	cand := profiledCandidate(t, "", "", 3)

	signals := CollectSignals(profile, cand)

	assert.Equal(t, 3, signals.MutualCount)
}

func TestNewUserProfile_DropsBlankCompanies(t *testing.T) {
	profile := NewUserProfile("", []string{"  ", "Acme"})
	cand := profiledCandidate(t, "acme", "", 0)

	signals := CollectSignals(profile, cand)

	assert.True(t, signals.InTargetCompany)
}
