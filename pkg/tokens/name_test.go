package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name     string
		fullPath string
		want     string
	}{
		{"set with spaces", "01 Base.radius.md", "radius.md"},
		{"set with slash", "Brand/Light.color.primary", "color.primary"},
		{"set with leading digit", "2024 Tokens.space.sm", "space.sm"},
		{"plain path is identity", "radius.md", "radius.md"},
		{"plain set name kept", "Semantic.radius.md", "Semantic.radius.md"},
		{"single segment", "radius", "radius"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.fullPath))
		})
	}
}
