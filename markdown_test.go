package mathtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Quiz\n\nWhat is $1/2 + 1/4$?\n\n$$\n\\frac{2}{4}\n$$\n")
	require.NoError(t, err)

	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, `<span class="math inline">½ + ¼</span>`)
	assert.Contains(t, out, `<div class="math display">`)
	assert.Contains(t, out, "½")
}

func TestRenderMarkdown_FallbackEscaped(t *testing.T) {
	out, err := RenderMarkdown(`bad $\frac{<b>}{$ here`)
	require.NoError(t, err)
	assert.NotContains(t, out, "<b>")
}

func TestEngine_RenderMarkdown_MathML(t *testing.T) {
	e, err := New(WithStrategy("mathml"))
	require.NoError(t, err)
	defer e.Close()

	out, err := e.RenderMarkdown("a $x^2$ b")
	require.NoError(t, err)
	assert.Contains(t, out, "<math")
	assert.Contains(t, out, `<span class="math inline">`)
}

func TestRenderMarkdown_BlockKeepsFollowingText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		math  string
		tail  string
	}{
		{"dollars", "Intro\n\n$$\n1/2\n$$\n\nAfter paragraph", "½", "<p>After paragraph</p>"},
		{"brackets", "\\[\nx^2\n\\]\n\nTail", "x²", "<p>Tail</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RenderMarkdown(tt.input)
			require.NoError(t, err)
			assert.Contains(t, out, `<div class="math display">`)
			assert.Contains(t, out, tt.math)
			assert.Contains(t, out, tt.tail)
			assert.NotContains(t, out, "$$")
		})
	}
}
