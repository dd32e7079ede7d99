package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		label string
	}{
		{"empty", 0, 10, "  0%"},
		{"half", 50, 10, " 50%"},
		{"full", 100, 10, "100%"},
		{"over 100 clamps", 150, 10, "100%"},
		{"negative clamps", -5, 10, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.True(t, strings.HasPrefix(got, "["))
			assert.True(t, strings.HasSuffix(got, tt.label), got)
		})
	}
}

func TestRenderCompactBar_Blocks(t *testing.T) {
	bar := RenderCompactBar(50, 4)
	assert.Equal(t, 2, strings.Count(bar, filledBlock))
	assert.Equal(t, 2, strings.Count(bar, emptyBlock))

	assert.Equal(t, 4, strings.Count(RenderCompactBar(100, 4), filledBlock))
	assert.Equal(t, 2, strings.Count(RenderCompactBar(0, 1), emptyBlock))
}
