package match

import "strings"

// nameQualityFamilies groups the property-family markers; each group present
// in a name is worth one family bonus regardless of which variant matched.
var nameQualityFamilies = [][]string{
	{"space.", "spacing."},
	{"radius.", "radii."},
	{"padding.", "pad."},
	{"margin."},
	{"font.", "typography."},
	{"color.", "colour."},
	{"border."},
	{"stroke."},
}

var qualityBaseMarkers = []string{"base", "core", "foundation", "primitive"}

// nameQuality is a secondary heuristic ordering otherwise-tied candidates:
// it rewards well-structured semantic names and penalizes raw primitive
// scales. It never feeds the confidence number itself.
func nameQuality(tokenName string) float64 {
	name := strings.ToLower(tokenName)
	score := 0.0

	for _, family := range nameQualityFamilies {
		for _, marker := range family {
			if strings.Contains(name, marker) {
				score += 4
				break
			}
		}
	}

	segments := strings.Split(name, ".")
	last := segments[len(segments)-1]
	if sizeQualifiers[last] {
		score += 3
	}
	if stepScaleNumbers[last] {
		score += 2
	}

	if strings.Contains(name, "semantic.") {
		score += 3
	}
	if strings.Contains(name, "component.") {
		score += 2
	}
	if strings.Contains(name, "ui.") {
		score += 2
	}

	for _, marker := range qualityBaseMarkers {
		if strings.Contains(name, marker) {
			score -= 5
			break
		}
	}

	if numericName.MatchString(name) || digitsOnly.MatchString(last) {
		score -= 3
	}

	if len(name) > 30 {
		score -= 2
	}
	if len(name) < 15 {
		score += float64(15-len(name)) * 0.2
	}

	return score
}
