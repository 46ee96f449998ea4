package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueSimilarity_ExactTextShortCircuits(t *testing.T) {
	assert.Equal(t, 1.0, ValueSimilarity("whatever", TypeSpacing, "whatever"))
	assert.Equal(t, 1.0, ValueSimilarity("#ffffff", TypeFill, "#ffffff"))
}

func TestColorSimilarity_IdenticalAfterNormalization(t *testing.T) {
	assert.Equal(t, 1.0, ValueSimilarity("#FFF", TypeFill, "#ffffff"))
	assert.Equal(t, 1.0, ValueSimilarity("rgb(255, 255, 255)", TypeFill, "#ffffff"))
	assert.Equal(t, 1.0, ValueSimilarity("#ff0000ff", TypeStroke, "#ff0000"))
}

func TestColorSimilarity_Boundary(t *testing.T) {
	// 28 per channel: similarity 0.890, below the 0.9 floor.
	assert.Equal(t, 0.0, ValueSimilarity("#ffffff", TypeFill, "#e3e3e3"))

	// 23 per channel: similarity ~0.91, above the floor.
	sim := ValueSimilarity("#ffffff", TypeFill, "#e8e8e8")
	assert.InDelta(t, 0.91, sim, 0.005)
}

func TestColorSimilarity_NotAColor(t *testing.T) {
	assert.Equal(t, 0.0, ValueSimilarity("#ffffff", TypeFill, "8px"))
	assert.Equal(t, 0.0, ValueSimilarity("blue-ish", TypeFill, "#0000ff"))
}

func TestNumericSimilarity_UnitsStripped(t *testing.T) {
	assert.Equal(t, 1.0, ValueSimilarity("8px", TypeSpacing, "8PX"))
	assert.Equal(t, 1.0, ValueSimilarity("8px", TypeBorderRadius, "8"))
	assert.Equal(t, 1.0, ValueSimilarity("1.5rem", TypePadding, "1.5em"))
}

func TestNumericSimilarity_Floor(t *testing.T) {
	// 8 vs 9: 1 − 1/8.5 ≈ 0.88, above the 0.8 floor.
	sim := ValueSimilarity("8px", TypeSpacing, "9px")
	assert.InDelta(t, 0.882, sim, 0.005)

	// 8 vs 10: 1 − 2/9 ≈ 0.78, below the floor.
	assert.Equal(t, 0.0, ValueSimilarity("8px", TypeSpacing, "10px"))
}

func TestNumericSimilarity_TypeMismatchIsZero(t *testing.T) {
	assert.Equal(t, 0.0, ValueSimilarity("8px", TypeSpacing, "#ffffff"))
	assert.Equal(t, 0.0, ValueSimilarity("not-a-number", TypePadding, "8px"))
}

func TestTypographySimilarity(t *testing.T) {
	// Numeric fields compare numerically.
	assert.Equal(t, 1.0, ValueSimilarity("16px", TypeTypography, "16px"))
	assert.InDelta(t, 0.938, ValueSimilarity("16px", TypeTypography, "17px"), 0.005)

	// String fields fall back to edit-distance ratio.
	assert.Equal(t, 1.0, ValueSimilarity("Inter", TypeTypography, "inter"))
	assert.Greater(t, ValueSimilarity("Helvetica", TypeTypography, "Helvetika"), 0.8)
	assert.Less(t, ValueSimilarity("Inter", TypeTypography, "Georgia"), 0.3)
}
