package match

import (
	"strconv"
	"strings"
)

// numericSimilarityFloor is the minimum reportable numeric similarity.
const numericSimilarityFloor = 0.8

// unitSuffixes are stripped before numeric comparison.
var unitSuffixes = []string{"px", "rem", "em"}

// ValueSimilarity scores how close a candidate token's resolved value is to
// an observed value, in [0,1]. Verbatim equality always short-circuits to
// 1.0 regardless of type; otherwise the comparison is type-dependent.
// Values that cannot be compared under the observed type score 0.0.
func ValueSimilarity(observed string, observedType ValueType, tokenValue string) float64 {
	if observed == tokenValue {
		return 1.0
	}

	switch observedType {
	case TypeFill, TypeStroke:
		return colorSimilarity(observed, tokenValue)
	case TypeSpacing, TypePadding, TypeBorderRadius:
		return numericSimilarity(observed, tokenValue)
	case TypeTypography:
		// Typography mixes numeric fields (size, weight, line height) with
		// string fields (family). Compare numerically when both sides parse.
		if _, okA := parseDimension(observed); okA {
			if _, okB := parseDimension(tokenValue); okB {
				return numericSimilarity(observed, tokenValue)
			}
		}
		return stringSimilarity(observed, tokenValue)
	default:
		return stringSimilarity(observed, tokenValue)
	}
}

// parseDimension strips a unit suffix and parses the remaining float.
func parseDimension(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, unit := range unitSuffixes {
		if strings.HasSuffix(s, unit) {
			s = strings.TrimSpace(strings.TrimSuffix(s, unit))
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// numericSimilarity compares two dimension literals: identical numbers score
// 1.0, otherwise 1 − |diff|/average, reported only above the 0.8 floor.
func numericSimilarity(a, b string) float64 {
	va, okA := parseDimension(a)
	vb, okB := parseDimension(b)
	if !okA || !okB {
		return 0
	}
	if va == vb {
		return 1.0
	}

	diff := va - vb
	if diff < 0 {
		diff = -diff
	}
	avg := (abs(va) + abs(vb)) / 2
	if avg == 0 {
		return 0
	}

	sim := 1 - diff/avg
	if sim <= numericSimilarityFloor {
		return 0
	}
	return sim
}

// stringSimilarity is a case-insensitive edit-distance ratio.
func stringSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	dist := levenshtein(a, b)
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	return 1 - float64(dist)/float64(longer)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
