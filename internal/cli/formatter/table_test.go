package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"SLICE", "STORED"},
		[][]string{
			{"language", `{"French":0}`},
			{"painRecovery", `{"pain":0,"recovery":100}`},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "SLICE         STORED", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "language      "+`{"French":0}`, lines[2])
	assert.Equal(t, "painRecovery  "+`{"pain":0,"recovery":100}`, lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
