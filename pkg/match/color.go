package match

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxRGBDistance is the Euclidean distance between black and white,
// √(255²·3), used to normalize color distance into [0,1].
var maxRGBDistance = math.Sqrt(3 * 255 * 255)

// colorSimilarityFloor is the minimum reportable color similarity. Nearby
// but clearly different colors must never count as similar.
const colorSimilarityFloor = 0.9

type rgba struct {
	r, g, b, a uint8
}

// parseColor normalizes a color literal. Accepted forms: #rgb, #rgba,
// #rrggbb, #rrggbbaa, rgb(...) and rgba(...).
func parseColor(s string) (rgba, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunc(s)
	}
	if !strings.HasPrefix(s, "#") {
		return rgba{}, false
	}

	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		var expanded strings.Builder
		for _, c := range hex {
			expanded.WriteRune(c)
			expanded.WriteRune(c)
		}
		hex = expanded.String()
	case 6, 8:
	default:
		return rgba{}, false
	}

	c := rgba{a: 0xff}
	parts := []*uint8{&c.r, &c.g, &c.b, &c.a}
	for i := 0; i*2 < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return rgba{}, false
		}
		*parts[i] = uint8(v)
	}
	return c, true
}

func parseRGBFunc(s string) (rgba, bool) {
	open := strings.Index(s, "(")
	if open < 0 || !strings.HasSuffix(s, ")") {
		return rgba{}, false
	}
	fields := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(fields) < 3 {
		return rgba{}, false
	}

	c := rgba{a: 0xff}
	channels := []*uint8{&c.r, &c.g, &c.b}
	for i, ch := range channels {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || v < 0 || v > 255 {
			return rgba{}, false
		}
		*ch = uint8(math.Round(v))
	}
	if len(fields) >= 4 {
		alpha, err := strconv.ParseFloat(fields[3], 64)
		if err != nil || alpha < 0 || alpha > 1 {
			return rgba{}, false
		}
		c.a = uint8(math.Round(alpha * 255))
	}
	return c, true
}

// canonicalHex renders a color in its canonical "#rrggbb" form, with the
// alpha byte appended only when it is not fully opaque.
func canonicalHex(c rgba) string {
	if c.a != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, c.a)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// colorSimilarity scores two color literals. Identical canonical forms score
// 1.0; otherwise similarity is derived from Euclidean RGB distance and only
// reported when it clears the 0.9 floor, else 0.0.
func colorSimilarity(a, b string) float64 {
	ca, okA := parseColor(a)
	cb, okB := parseColor(b)
	if !okA || !okB {
		return 0
	}
	if canonicalHex(ca) == canonicalHex(cb) {
		return 1.0
	}

	dr := float64(ca.r) - float64(cb.r)
	dg := float64(ca.g) - float64(cb.g)
	db := float64(ca.b) - float64(cb.b)
	dist := math.Sqrt(dr*dr + dg*dg + db*db)

	sim := 1 - dist/maxRGBDistance
	if sim < colorSimilarityFloor {
		return 0
	}
	return sim
}
