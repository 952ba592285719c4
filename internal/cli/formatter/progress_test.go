package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		filled int
		label  string
	}{
		{"empty", 0, 0, "  0%"},
		{"half", 0.5, 5, " 50%"},
		{"full", 1, 10, "100%"},
		{"over clamps", 1.7, 10, "100%"},
		{"negative clamps", -0.3, 0, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgress(tt.pct, 10))
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, 10-tt.filled, strings.Count(got, emptyBlock))
			assert.True(t, strings.HasSuffix(got, tt.label), got)
		})
	}
}

func TestRenderCompactBar(t *testing.T) {
	assert.Equal(t, "░░░░", RenderCompactBar(0, 4, true))
	assert.Equal(t, "██░░", RenderCompactBar(0.5, 4, true))
	assert.Equal(t, "████", RenderCompactBar(2, 4, true))
	assert.Equal(t, "█░", RenderCompactBar(0.5, 1, true), "width clamps to 2")

	got := RenderCompactBar(0.5, 10, false)
	assert.NotContains(t, got, "[")
	assert.NotContains(t, got, "%")
}
