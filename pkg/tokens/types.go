package tokens

// SetStatus is a theme's inclusion status for one token set.
type SetStatus string

const (
	StatusEnabled  SetStatus = "enabled"
	StatusSource   SetStatus = "source"
	StatusDisabled SetStatus = "disabled"
)

// Theme selects which token sets participate in a resolution run.
type Theme struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	SelectedTokenSets map[string]SetStatus `json:"selectedTokenSets"`
}

// ResolvedToken is a token after all {path} references have been substituted.
type ResolvedToken struct {
	Value             string   `json:"value"`
	IsReference       bool     `json:"isReference"`
	OriginalReference string   `json:"originalReference,omitempty"`
	ReferenceChain    []string `json:"referenceChain,omitempty"`
	Type              string   `json:"tokenType,omitempty"`
}

// ResolveSummary is a debug summary of one resolution run.
type ResolveSummary struct {
	TotalResolvedTokens int `json:"totalResolvedTokens"`
	SemanticTokensCount int `json:"semanticTokensCount"`
	RawTokensCount      int `json:"rawTokensCount"`
}
