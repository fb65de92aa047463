package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "[░░░░░]   0%"},
		{"full", 1, "[█████] 100%"},
		{"clamped high", 1.7, "[█████] 100%"},
		{"clamped low", -0.2, "[░░░░░]   0%"},
		{"partial", 0.6, "[███░░]  60%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, 5)))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "15m", FormatMinutes(15))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestRenderBox_IncludesTitle(t *testing.T) {
	out := stripANSI(RenderBox("Mountain Flow", "body"))
	assert.Contains(t, out, "Mountain Flow")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "╭")
}
