package values

// The report pipeline works with three ordinal classifications that share
// German wire values (the source language of the rule tables). Each enum
// carries exactly one canonical ordering so ranking and sorting never fall
// back to ad hoc string comparisons.

// RelevanceTier classifies how applicable a regulation is to a company
// profile. "hoch" is the highest tier.
type RelevanceTier string

const (
	RelevanceHoch    RelevanceTier = "hoch"
	RelevanceMittel  RelevanceTier = "mittel"
	RelevanceNiedrig RelevanceTier = "niedrig"
)

var relevanceWeight = map[RelevanceTier]int{
	RelevanceHoch:    2,
	RelevanceMittel:  1,
	RelevanceNiedrig: 0,
}

// Weight returns the ordinal weight, higher = more relevant
func (t RelevanceTier) Weight() int {
	return relevanceWeight[t]
}

// Compare returns -1/0/1 with the more relevant tier sorting first
func (t RelevanceTier) Compare(other RelevanceTier) int {
	switch {
	case t.Weight() > other.Weight():
		return -1
	case t.Weight() < other.Weight():
		return 1
	default:
		return 0
	}
}

func (t RelevanceTier) String() string {
	return string(t)
}

// RiskLevel classifies a critical risk. "kritisch" sorts first.
type RiskLevel string

const (
	RiskKritisch RiskLevel = "kritisch"
	RiskHoch     RiskLevel = "hoch"
	RiskMittel   RiskLevel = "mittel"
)

var riskRank = map[RiskLevel]int{
	RiskKritisch: 0,
	RiskHoch:     1,
	RiskMittel:   2,
}

// Rank returns the sort rank, lower = more severe
func (l RiskLevel) Rank() int {
	return riskRank[l]
}

// Compare returns -1/0/1 with the more severe level sorting first
func (l RiskLevel) Compare(other RiskLevel) int {
	switch {
	case l.Rank() < other.Rank():
		return -1
	case l.Rank() > other.Rank():
		return 1
	default:
		return 0
	}
}

func (l RiskLevel) String() string {
	return string(l)
}

// EffortTier classifies the implementation effort of a roadmap action.
type EffortTier string

const (
	EffortNiedrig EffortTier = "niedrig"
	EffortMittel  EffortTier = "mittel"
	EffortHoch    EffortTier = "hoch"
)

var effortOrder = map[EffortTier]int{
	EffortNiedrig: 0,
	EffortMittel:  1,
	EffortHoch:    2,
}

// Ord returns the ordinal position, higher = more effort
func (e EffortTier) Ord() int {
	return effortOrder[e]
}

func (e EffortTier) String() string {
	return string(e)
}
