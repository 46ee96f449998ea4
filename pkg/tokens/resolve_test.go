package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(value any, typ string) map[string]any {
	return map[string]any{"value": value, "type": typ}
}

func dollarLeaf(value any, typ string) map[string]any {
	return map[string]any{"$value": value, "$type": typ}
}

func TestResolve_BaseAndSemantic(t *testing.T) {
	raw := map[string]any{
		"Base": map[string]any{
			"radius": map[string]any{
				"md": leaf("8px", "dimension"),
			},
		},
		"Semantic": map[string]any{
			"radius": map[string]any{
				"md": leaf("{Base.radius.md}", "dimension"),
			},
		},
	}

	resolved, summary := Resolve(raw, nil, nil)

	require.Len(t, resolved, 2)
	assert.Equal(t, 2, summary.TotalResolvedTokens)
	assert.Equal(t, 1, summary.SemanticTokensCount)
	assert.Equal(t, 1, summary.RawTokensCount)

	base := resolved["Base.radius.md"]
	assert.Equal(t, "8px", base.Value)
	assert.False(t, base.IsReference)
	assert.Equal(t, "dimension", base.Type)

	semantic := resolved["Semantic.radius.md"]
	assert.Equal(t, "8px", semantic.Value)
	assert.True(t, semantic.IsReference)
	assert.Equal(t, "{Base.radius.md}", semantic.OriginalReference)
	assert.Equal(t, []string{"Base.radius.md"}, semantic.ReferenceChain)
}

func TestResolve_DollarFieldConvention(t *testing.T) {
	raw := map[string]any{
		"Base": map[string]any{
			"space": map[string]any{
				"sm": dollarLeaf("4px", "dimension"),
			},
		},
	}

	resolved, _ := Resolve(raw, nil, nil)

	require.Contains(t, resolved, "Base.space.sm")
	assert.Equal(t, "4px", resolved["Base.space.sm"].Value)
	assert.Equal(t, "dimension", resolved["Base.space.sm"].Type)
}

func TestResolve_NumericValue(t *testing.T) {
	raw := map[string]any{
		"Base": map[string]any{
			"weight": map[string]any{
				"bold": leaf(float64(700), "fontWeight"),
			},
		},
	}

	resolved, _ := Resolve(raw, nil, nil)
	assert.Equal(t, "700", resolved["Base.weight.bold"].Value)
}

func TestResolve_SuffixReference(t *testing.T) {
	// The reference omits the set name; suffix matching finds it.
	raw := map[string]any{
		"Core Tokens": map[string]any{
			"space": map[string]any{
				"lg": leaf("24px", "dimension"),
			},
		},
		"Semantic": map[string]any{
			"section": map[string]any{
				"gap": leaf("{space.lg}", "dimension"),
			},
		},
	}

	resolved, _ := Resolve(raw, nil, nil)

	gap := resolved["Semantic.section.gap"]
	assert.Equal(t, "24px", gap.Value)
	assert.True(t, gap.IsReference)
	assert.Equal(t, []string{"Core Tokens.space.lg"}, gap.ReferenceChain)
}

func TestResolve_SuffixPrefersBaseSet(t *testing.T) {
	// Both sets define space.md; "Base" style set names win the tie.
	raw := map[string]any{
		"Alias": map[string]any{
			"space": map[string]any{"md": leaf("99px", "dimension")},
		},
		"Primitives": map[string]any{
			"space": map[string]any{"md": leaf("16px", "dimension")},
		},
		"Semantic": map[string]any{
			"card": map[string]any{"padding": leaf("{space.md}", "dimension")},
		},
	}

	resolved, _ := Resolve(raw, nil, nil)
	assert.Equal(t, "16px", resolved["Semantic.card.padding"].Value)
}

func TestResolve_MultiplePlaceholders(t *testing.T) {
	raw := map[string]any{
		"Base": map[string]any{
			"space": map[string]any{
				"sm": leaf("4px", "dimension"),
				"lg": leaf("24px", "dimension"),
			},
		},
		"Semantic": map[string]any{
			"inset": leaf("{Base.space.sm} {Base.space.lg}", "dimension"),
		},
	}

	resolved, _ := Resolve(raw, nil, nil)

	inset := resolved["Semantic.inset"]
	assert.Equal(t, "4px 24px", inset.Value)
	assert.ElementsMatch(t, []string{"Base.space.sm", "Base.space.lg"}, inset.ReferenceChain)
}

func TestResolve_NestedChain(t *testing.T) {
	raw := map[string]any{
		"Base": map[string]any{
			"blue": leaf("#0000ff", "color"),
		},
		"Alias": map[string]any{
			"primary": leaf("{Base.blue}", "color"),
		},
		"Semantic": map[string]any{
			"button": map[string]any{
				"bg": leaf("{Alias.primary}", "color"),
			},
		},
	}

	resolved, _ := Resolve(raw, nil, nil)

	bg := resolved["Semantic.button.bg"]
	assert.Equal(t, "#0000ff", bg.Value)
	assert.Equal(t, []string{"Alias.primary", "Base.blue"}, bg.ReferenceChain)
}

func TestResolve_UnresolvableReferenceLeftVerbatim(t *testing.T) {
	raw := map[string]any{
		"Semantic": map[string]any{
			"ghost": leaf("{does.not.exist}", "color"),
		},
	}

	resolved, _ := Resolve(raw, nil, nil)

	ghost := resolved["Semantic.ghost"]
	assert.Equal(t, "{does.not.exist}", ghost.Value)
	assert.True(t, ghost.IsReference)
}

func TestResolve_CycleSafety(t *testing.T) {
	raw := map[string]any{
		"Set": map[string]any{
			"a": leaf("{Set.b}", "dimension"),
			"b": leaf("{Set.a}", "dimension"),
		},
	}

	// Must terminate; both tokens present, placeholders degrade verbatim
	// somewhere along the broken chain.
	resolved, _ := Resolve(raw, nil, nil)

	require.Contains(t, resolved, "Set.a")
	require.Contains(t, resolved, "Set.b")
	values := resolved["Set.a"].Value + resolved["Set.b"].Value
	assert.Contains(t, values, "{Set.")
}

func TestResolve_Idempotent(t *testing.T) {
	raw := map[string]any{
		"Base": map[string]any{
			"radius": map[string]any{"md": leaf("8px", "dimension")},
		},
		"Semantic": map[string]any{
			"radius": map[string]any{"md": leaf("{Base.radius.md}", "dimension")},
		},
	}

	first, firstSummary := Resolve(raw, nil, nil)
	second, secondSummary := Resolve(raw, nil, nil)

	assert.Equal(t, first, second)
	assert.Equal(t, firstSummary, secondSummary)
}

func TestResolve_MalformedLeafSkipped(t *testing.T) {
	raw := map[string]any{
		"Base": map[string]any{
			"good": leaf("8px", "dimension"),
			"bad":  map[string]any{"value": []any{"not", "scalar"}},
			"text": "bare string, not a leaf object",
		},
	}

	resolved, _ := Resolve(raw, nil, nil)

	assert.Len(t, resolved, 1)
	assert.Contains(t, resolved, "Base.good")
}

func TestResolve_MetadataKeysExcluded(t *testing.T) {
	raw := map[string]any{
		"$themes":   []any{},
		"$metadata": map[string]any{"tokenSetOrder": []any{"Base"}},
		"Base": map[string]any{
			"radius": map[string]any{"md": leaf("8px", "dimension")},
		},
	}

	resolved, _ := Resolve(raw, nil, nil)
	assert.Len(t, resolved, 1)
}

func TestResolve_ThemeSetSelection(t *testing.T) {
	raw := map[string]any{
		"Light": map[string]any{
			"bg": leaf("#ffffff", "color"),
		},
		"Dark": map[string]any{
			"bg": leaf("#000000", "color"),
		},
		"Semantic": map[string]any{
			"surface": leaf("{Light.bg}", "color"),
		},
	}
	theme := &Theme{
		ID:   "light",
		Name: "Light Mode",
		SelectedTokenSets: map[string]SetStatus{
			"Light": StatusEnabled,
			"Dark":  StatusDisabled,
		},
	}

	resolved, _ := Resolve(raw, theme, nil)

	assert.Contains(t, resolved, "Light.bg")
	assert.NotContains(t, resolved, "Dark.bg")
	// Semantic was unlisted but is appended by default.
	assert.Contains(t, resolved, "Semantic.surface")
	assert.Equal(t, "#ffffff", resolved["Semantic.surface"].Value)
}

func TestResolve_ThemeWithUnknownSet(t *testing.T) {
	raw := map[string]any{
		"Base": map[string]any{
			"radius": map[string]any{"md": leaf("8px", "dimension")},
		},
	}
	theme := &Theme{
		ID:   "t",
		Name: "Broken",
		SelectedTokenSets: map[string]SetStatus{
			"Nope": StatusEnabled,
		},
	}

	// Logged and skipped; the run never aborts.
	resolved, _ := Resolve(raw, theme, nil)
	assert.Contains(t, resolved, "Base.radius.md")
}
