package match

// ValueType classifies an observed hardcoded value by the design property it
// was found on.
type ValueType string

const (
	TypeFill         ValueType = "fill"
	TypeStroke       ValueType = "stroke"
	TypeSpacing      ValueType = "spacing"
	TypePadding      ValueType = "padding"
	TypeTypography   ValueType = "typography"
	TypeBorderRadius ValueType = "border-radius"
)

// MatchType is a coarse display classification of a candidate.
type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchSemantic MatchType = "semantic"
	MatchSimilar  MatchType = "similar"
	MatchBase     MatchType = "base"
)

// ObservedValue is one hardcoded value found in a design artifact, supplied
// by the external extraction layer.
type ObservedValue struct {
	Type    ValueType `json:"type"`
	Value   string    `json:"value"`
	Count   int       `json:"count"`
	NodeIDs []string  `json:"nodeIds,omitempty"`
}

// MatchCandidate is one scored token candidate for an observed value.
type MatchCandidate struct {
	TokenName         string    `json:"tokenName"`
	TokenValue        string    `json:"tokenValue"`
	Confidence        float64   `json:"confidence"`
	IsSemanticToken   bool      `json:"isSemanticToken"`
	MatchType         MatchType `json:"matchType"`
	ReferenceChain    []string  `json:"referenceChain,omitempty"`
	OriginalReference string    `json:"originalReference,omitempty"`

	// Sort keys; computed once per candidate, never serialized.
	alignment  float64
	exactValue bool
	quality    float64
}

// TokenMatch is the emitted recommendation for one observed value: the top
// candidate plus a bounded list of alternates.
type TokenMatch struct {
	Value        string           `json:"value"`
	Type         ValueType        `json:"type"`
	Count        int              `json:"count"`
	NodeIDs      []string         `json:"nodeIds,omitempty"`
	Recommended  MatchCandidate   `json:"recommended"`
	Alternatives []MatchCandidate `json:"alternatives,omitempty"`
	Suggestions  []string         `json:"suggestions"`
}

// UnmatchedValue is an observed value for which no candidate cleared the
// confidence floor.
type UnmatchedValue struct {
	Value string    `json:"value"`
	Type  ValueType `json:"type"`
	Count int       `json:"count"`
}

// Result is the outcome of matching a whole observed-value batch.
type Result struct {
	TokenMatches    []TokenMatch     `json:"tokenMatches"`
	UnmatchedValues []UnmatchedValue `json:"unmatchedValues"`
}
