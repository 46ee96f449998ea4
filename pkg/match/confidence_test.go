package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidence_Tier1(t *testing.T) {
	in := scoreInputs{alignment: 0.9, similarity: 1.0, exactValue: true}
	assert.Equal(t, 0.95, Confidence(in))

	in.semantic = true
	assert.Equal(t, 1.0, Confidence(in))
}

func TestConfidence_Tier2(t *testing.T) {
	// Aligned name, near-exact value: band floor is 0.8.
	in := scoreInputs{alignment: 0.9, similarity: 0.92}
	assert.Equal(t, 0.8, Confidence(in))

	in.semantic = true
	assert.InDelta(t, 0.876, Confidence(in), 0.001)
}

func TestConfidence_Tier3(t *testing.T) {
	in := scoreInputs{alignment: 0.4, similarity: 1.0, exactValue: true}
	assert.InDelta(t, 0.74, Confidence(in), 0.001)

	// Semantic bonus, capped below tier 2's band.
	in.semantic = true
	assert.InDelta(t, 0.89, Confidence(in), 0.001)
}

func TestConfidence_Tier4(t *testing.T) {
	in := scoreInputs{alignment: 0.4, similarity: 0.95}
	assert.InDelta(t, 0.505, Confidence(in), 0.001)

	in.semantic = true
	assert.InDelta(t, 0.69, Confidence(in), 0.001)
}

func TestConfidence_Fallbacks(t *testing.T) {
	// Similarity in [0.8, 0.9): approximate-value fallback.
	in := scoreInputs{alignment: 0.3, similarity: 0.85}
	assert.InDelta(t, 0.33, Confidence(in), 0.001)

	// Weak everything.
	weak := scoreInputs{alignment: 0.3, similarity: 0.0}
	assert.InDelta(t, 0.03, Confidence(weak), 0.001)

	nothing := scoreInputs{}
	assert.Equal(t, 0.0, Confidence(nothing))
}

func TestConfidence_TierBandsAreOrdered(t *testing.T) {
	tier1 := Confidence(scoreInputs{alignment: 0.9, similarity: 1.0, exactValue: true})
	tier2 := Confidence(scoreInputs{alignment: 0.9, similarity: 0.95})
	tier3 := Confidence(scoreInputs{alignment: 0.4, similarity: 1.0, exactValue: true, semantic: true})
	tier4 := Confidence(scoreInputs{alignment: 0.4, similarity: 0.95, semantic: true})

	assert.Greater(t, tier1, 0.94)
	assert.GreaterOrEqual(t, tier2, 0.8)
	assert.Less(t, tier2, tier1)
	assert.LessOrEqual(t, tier3, 0.89)
	assert.LessOrEqual(t, tier4, 0.69)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, MatchExact, classify(0.97, false))
	assert.Equal(t, MatchSemantic, classify(0.85, true))
	assert.Equal(t, MatchSimilar, classify(0.85, false))
	assert.Equal(t, MatchSimilar, classify(0.72, false))
	assert.Equal(t, MatchBase, classify(0.6, true))
}
