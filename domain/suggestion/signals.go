package suggestion

import (
	"strings"
)

// Signals holds the independent relevance signals gathered for one
// candidate. Each signal is computed without side effects, so collection
// for different candidates can run concurrently.
type Signals struct {
	SameIndustry    bool `json:"same_industry"`
	MutualCount     int  `json:"mutual_count"`
	InTargetCompany bool `json:"in_target_company"`
}

// UserProfile is the slice of the requesting user's profile the signals
// need: their declared industry and case-folded target company set. A
// failed profile fetch degrades to the zero value, which turns both
// profile-driven signals off rather than failing the request.
type UserProfile struct {
	industry        string
	targetCompanies map[string]struct{}
}

// NewUserProfile builds a profile, case-folding the target company list
// once at load time.
func NewUserProfile(industry string, targetCompanies []string) UserProfile {
	p := UserProfile{industry: strings.TrimSpace(industry)}
	if len(targetCompanies) > 0 {
		p.targetCompanies = make(map[string]struct{}, len(targetCompanies))
		for _, name := range targetCompanies {
			name = strings.ToLower(strings.TrimSpace(name))
			if name != "" {
				p.targetCompanies[name] = struct{}{}
			}
		}
	}
	return p
}

// HasIndustry reports whether the user declared an industry.
func (p UserProfile) HasIndustry() bool { return p.industry != "" }

// CollectSignals computes the relevance signals for one candidate.
//
// Same-industry fires only when both sides declared an industry and the
// values match case-insensitively. Target-company matching compares the
// candidate's company against the case-folded target set.
func CollectSignals(profile UserProfile, candidate *Candidate) Signals {
	s := Signals{MutualCount: candidate.MutualCount()}

	c := candidate.Contact
	if profile.HasIndustry() && c.HasIndustry() {
		s.SameIndustry = strings.EqualFold(profile.industry, c.Industry())
	}
	if c.HasCompany() && len(profile.targetCompanies) > 0 {
		_, s.InTargetCompany = profile.targetCompanies[strings.ToLower(c.Company())]
	}
	return s
}
