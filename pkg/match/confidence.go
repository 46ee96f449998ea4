package match

// scoreInputs are the independent sub-scores feeding the confidence
// combination policy.
type scoreInputs struct {
	alignment  float64
	similarity float64
	exactValue bool
	semantic   bool
}

// confidenceTier is one guard/formula pair. Tiers are evaluated in order and
// each owns a disjoint confidence band, so rank order is stable across
// match categories. Threshold tuning is a data change, not control flow.
type confidenceTier struct {
	applies func(scoreInputs) bool
	score   func(scoreInputs) float64
}

const (
	strongAlignment  = 0.8
	strongSimilarity = 0.9
)

var confidenceTiers = []confidenceTier{
	// Tier 1: aligned name and exact value, the ideal replacement.
	{
		applies: func(in scoreInputs) bool {
			return in.alignment >= strongAlignment && in.exactValue
		},
		score: func(in scoreInputs) float64 {
			s := 0.95
			if in.semantic {
				s += 0.05
			}
			return capAt(s, 1.0)
		},
	},
	// Tier 2: aligned name, near-exact value.
	{
		applies: func(in scoreInputs) bool {
			return in.alignment >= strongAlignment && in.similarity >= strongSimilarity
		},
		score: func(in scoreInputs) float64 {
			s := 0.8
			if in.semantic {
				s += 0.1
			}
			s -= (1 - in.similarity) * 0.3
			return floorAt(s, 0.8)
		},
	},
	// Tier 3: exact value but weakly aligned name.
	{
		applies: func(in scoreInputs) bool {
			return in.exactValue
		},
		score: func(in scoreInputs) float64 {
			s := 0.7 + in.alignment*0.1
			if in.semantic {
				s += 0.15
			}
			return capAt(s, 0.89)
		},
	},
	// Tier 4: near-exact value, weakly aligned name.
	{
		applies: func(in scoreInputs) bool {
			return in.similarity >= strongSimilarity
		},
		score: func(in scoreInputs) float64 {
			s := 0.4 + (in.similarity-strongSimilarity)*0.5 + in.alignment*0.2
			if in.semantic {
				s += 0.2
			}
			return capAt(s, 0.69)
		},
	},
	// Fallback: approximate value only.
	{
		applies: func(in scoreInputs) bool {
			return in.similarity >= 0.8
		},
		score: func(in scoreInputs) float64 {
			s := 0.3 + in.alignment*0.1
			if in.semantic {
				s += 0.1
			}
			return capAt(s, 0.5)
		},
	},
	// Fallback: weak signal everywhere.
	{
		applies: func(scoreInputs) bool { return true },
		score: func(in scoreInputs) float64 {
			return in.similarity*0.2 + in.alignment*0.1
		},
	},
}

// Confidence combines the sub-scores through the tiered-band policy.
func Confidence(in scoreInputs) float64 {
	for _, tier := range confidenceTiers {
		if tier.applies(in) {
			s := tier.score(in)
			if s < 0 {
				return 0
			}
			return s
		}
	}
	return 0
}

// classify derives the display match type. It re-uses the inputs, it never
// re-scores.
func classify(confidence float64, semantic bool) MatchType {
	switch {
	case confidence >= 0.95:
		return MatchExact
	case confidence >= 0.8 && semantic:
		return MatchSemantic
	case confidence >= 0.7:
		return MatchSimilar
	default:
		return MatchBase
	}
}

func capAt(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}

func floorAt(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}
