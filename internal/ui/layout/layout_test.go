package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 18, ContentHeight(24))
	assert.Equal(t, 0, ContentHeight(2))
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Question", "", 80)
	assert.Contains(t, h, "CTG Dx")
	assert.Contains(t, h, "Question")
	assert.Equal(t, HeaderHeight, lipgloss.Height(h))
}

func TestRenderHeader_Status(t *testing.T) {
	h := RenderHeader("Assessment", "2/5 answered", 80)
	assert.Contains(t, h, "Assessment")
	assert.Contains(t, h, "2/5 answered")
	assert.Equal(t, HeaderHeight, lipgloss.Height(h))
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Back"}}, 80)
	assert.Contains(t, f, "Enter")
	assert.Contains(t, f, "Back")
}

func TestRenderFrame(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, strings.Repeat("line\n", 50), footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(frame))
}
