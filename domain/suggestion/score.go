package suggestion

import "sort"

// BaseScore is the score every candidate starts from before any signal fires.
const BaseScore = 1

// ScoringDetail records which signals fired for a candidate and the
// resulting score. It exists only for the duration of one scoring pass and
// is surfaced so callers can explain a ranking.
type ScoringDetail struct {
	SameIndustry         bool `json:"same_industry"`
	HasMutualConnections bool `json:"has_mutual_connections"`
	InTargetCompany      bool `json:"in_target_company"`
	Score                int  `json:"score"`
}

// Score combines the signals into a single ordinal score.
//
// Each signal contributes exactly +1 on top of the base. Mutual
// connections are a presence test: five mutuals score the same increment
// as one. That is deliberate policy, not an oversight.
func Score(signals Signals) ScoringDetail {
	detail := ScoringDetail{
		SameIndustry:         signals.SameIndustry,
		HasMutualConnections: signals.MutualCount > 0,
		InTargetCompany:      signals.InTargetCompany,
		Score:                BaseScore,
	}
	if detail.SameIndustry {
		detail.Score++
	}
	if detail.HasMutualConnections {
		detail.Score++
	}
	if detail.InTargetCompany {
		detail.Score++
	}
	return detail
}

// Scored pairs a candidate with its collected signals and scoring detail.
type Scored struct {
	Candidate *Candidate
	Signals   Signals
	Detail    ScoringDetail
}

// Rank sorts scored candidates by score descending, in place. The sort is
// stable, so candidates with equal scores keep their discovery order; no
// secondary tiebreak key is defined and callers must not assume one.
func Rank(scored []Scored) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Detail.Score > scored[j].Detail.Score
	})
}
