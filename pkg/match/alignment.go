package match

import (
	"regexp"
	"strings"

	"github.com/gnana997/tokenlens/pkg/tokens"
)

// keywordTiers holds the per-property keyword vocabulary used by the name
// alignment ladder. Exact keywords are the property's own names, high
// keywords strong synonyms, medium keywords weaker associations.
type keywordTiers struct {
	exact  []string
	high   []string
	medium []string
}

// alignmentKeywords maps a property type to its keyword tiers. Keys cover
// the six observed-value types plus the finer typography fields.
var alignmentKeywords = map[string]keywordTiers{
	"border-radius": {
		exact:  []string{"radius", "radii", "border-radius"},
		high:   []string{"corner", "rounded"},
		medium: []string{"round", "curve"},
	},
	"spacing": {
		exact:  []string{"spacing", "space", "gap"},
		high:   []string{"margin", "inset"},
		medium: []string{"offset", "gutter"},
	},
	"padding": {
		exact:  []string{"padding", "pad"},
		high:   []string{"inset", "spacing"},
		medium: []string{"space", "gap"},
	},
	"fill": {
		exact:  []string{"fill", "color", "colour", "background", "bg"},
		high:   []string{"surface", "brand", "accent"},
		medium: []string{"tint", "shade", "hue"},
	},
	"stroke": {
		exact:  []string{"stroke", "border", "outline"},
		high:   []string{"divider", "line"},
		medium: []string{"edge", "ring"},
	},
	"typography": {
		exact:  []string{"typography", "font", "text"},
		high:   []string{"type", "heading"},
		medium: []string{"label", "display"},
	},
	"font-size": {
		exact:  []string{"font-size", "fontsize", "fontsizes"},
		high:   []string{"size", "text"},
		medium: []string{"scale", "type"},
	},
	"font-family": {
		exact:  []string{"font-family", "fontfamily", "family"},
		high:   []string{"font", "typeface"},
		medium: []string{"face", "type"},
	},
	"font-weight": {
		exact:  []string{"font-weight", "fontweight", "weight"},
		high:   []string{"bold", "font"},
		medium: []string{"emphasis", "thickness"},
	},
}

var (
	sizeQualifiers = map[string]bool{
		"xs": true, "sm": true, "md": true, "lg": true, "xl": true,
		"xxs": true, "xxl": true, "2xl": true, "3xl": true, "4xl": true, "5xl": true,
	}
	stepScaleNumbers = map[string]bool{
		"100": true, "200": true, "300": true, "400": true, "500": true,
		"600": true, "700": true, "800": true, "900": true,
	}
	magnitudeWords = []string{"size", "width", "height", "value", "amount", "level", "scale"}
	baseMarkers    = []string{"base.", "core.", "foundation.", "primitive."}

	numericName = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	digitsOnly  = regexp.MustCompile(`^[0-9]+$`)
)

// NameAlignment scores how well a token's name semantically matches a
// property type, in [0,1]. The candidate name is stripped of any leading
// set-name segment first; then the ladder runs top down and the highest
// applicable rung wins.
func NameAlignment(tokenName, propertyType string) float64 {
	name := strings.ToLower(tokens.CleanName(tokenName))
	propertyType = strings.ToLower(propertyType)

	if name == propertyType {
		return 1.0
	}

	tiers := alignmentKeywords[propertyType]
	if score, ok := tierScore(name, tiers.exact, 0.95, 0.9, 0); ok {
		return score
	}
	if score, ok := tierScore(name, tiers.high, 0.85, 0.8, 0.7); ok {
		return score
	}
	if score, ok := tierScore(name, tiers.medium, 0.6, 0.55, 0.5); ok {
		return score
	}

	segments := strings.Split(name, ".")
	last := segments[len(segments)-1]

	if sizeQualifiers[last] {
		return 0.4
	}
	if stepScaleNumbers[last] {
		return 0.35
	}
	for _, word := range magnitudeWords {
		if strings.Contains(name, word) {
			return 0.3
		}
	}
	if numericName.MatchString(name) || digitsOnly.MatchString(last) {
		return 0.1
	}
	for _, marker := range baseMarkers {
		if strings.Contains(name, marker) {
			return 0.05
		}
	}
	return 0.0
}

// tierScore checks one keyword tier: whole-name equality first, then
// dot-delimited segment containment, then plain substring containment.
// A substring score of 0 means the tier does not award substring matches.
func tierScore(name string, keywords []string, eq, segment, substring float64) (float64, bool) {
	for _, kw := range keywords {
		if name == kw {
			return eq, true
		}
	}
	for _, kw := range keywords {
		if hasSegment(name, kw) {
			return segment, true
		}
	}
	if substring > 0 {
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				return substring, true
			}
		}
	}
	return 0, false
}

func hasSegment(name, keyword string) bool {
	for _, seg := range strings.Split(name, ".") {
		if seg == keyword {
			return true
		}
	}
	return false
}

// alignmentPropertyTypes returns the keyword tables consulted for one
// observed value. Typography values consult the finer font tables too,
// picked by whether the literal is numeric.
func alignmentPropertyTypes(v ObservedValue) []string {
	if v.Type != TypeTypography {
		return []string{string(v.Type)}
	}
	if _, ok := parseDimension(v.Value); ok {
		return []string{"typography", "font-size", "font-weight"}
	}
	return []string{"typography", "font-family"}
}

// bestAlignment scores a token name against every table relevant to the
// observed value and keeps the best rung.
func bestAlignment(tokenName string, v ObservedValue) float64 {
	best := 0.0
	for _, pt := range alignmentPropertyTypes(v) {
		if s := NameAlignment(tokenName, pt); s > best {
			best = s
		}
	}
	return best
}
