package pipeline

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/mathtext-go/internal/normalize"
	"github.com/riverfjs/mathtext-go/internal/render"
	"github.com/riverfjs/mathtext-go/internal/types"
	"github.com/riverfjs/mathtext-go/internal/warn"
)

func newUnicode(heuristics bool) *Pipeline {
	return New(Config{
		Strategy:   normalize.NewUnicode(nil),
		Heuristics: heuristics,
		Dispatcher: render.NewDispatcher(render.NewPool(2, render.NewUnicodeEngine), nil, nil),
	})
}

func node(kind types.Kind, content string) types.RenderNode {
	return types.RenderNode{Kind: kind, Content: content}
}

// TestRender 端到端渲染
func TestRender(t *testing.T) {
	p := newUnicode(true)
	tests := []struct {
		name  string
		input string
		want  []types.RenderNode
	}{
		{
			name:  "undelimited fractions",
			input: "What is 1/2 + 1/4?",
			want: []types.RenderNode{
				node(types.KindText, "What is "),
				node(types.KindInlineMath, "½ + ¼"),
				node(types.KindText, "?"),
			},
		},
		{
			name:  "block priority",
			input: "$$1/2$$",
			want:  []types.RenderNode{node(types.KindDisplayMath, "½")},
		},
		{
			name:  "assignment with fraction",
			input: "x = 7/3",
			want:  []types.RenderNode{node(types.KindInlineMath, "x = 7⁄3")},
		},
		{
			name:  "lone integer",
			input: "I have 3 apples",
			want:  []types.RenderNode{node(types.KindText, "I have 3 apples")},
		},
		{
			name:  "equation",
			input: "Solve 2x + 5 = 13",
			want: []types.RenderNode{
				node(types.KindText, "Solve "),
				node(types.KindInlineMath, "2x + 5 = 13"),
			},
		},
		{
			name:  "delimited macros",
			input: `Area: $\pi r^2$`,
			want: []types.RenderNode{
				node(types.KindText, "Area: "),
				node(types.KindInlineMath, "π r²"),
			},
		},
		{
			name:  "multiplication sign",
			input: "Compute \\(3 x 4\\)",
			want: []types.RenderNode{
				node(types.KindText, "Compute "),
				node(types.KindInlineMath, "3 × 4"),
			},
		},
		{
			name:  "unterminated",
			input: "costs $5 today",
			want:  []types.RenderNode{node(types.KindText, "costs $5 today")},
		},
		{
			name:  "unterminated keeps later math",
			input: `price $5 and \(1/2\)`,
			want: []types.RenderNode{
				node(types.KindText, "price $5 and "),
				node(types.KindInlineMath, "½"),
			},
		},
		{
			name:  "empty",
			input: "",
			want:  []types.RenderNode{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Render(tt.input, false))
		})
	}
}

// TestRenderIsolatesMalformedSpan 中间的畸形公式不影响前后节点
func TestRenderIsolatesMalformedSpan(t *testing.T) {
	p := newUnicode(false)
	nodes := p.Render(`$1/2$ then $\frac{1}{2$ then $x^2$`, false)

	assert.Equal(t, []types.RenderNode{
		node(types.KindInlineMath, "½"),
		node(types.KindText, " then "),
		{Kind: types.KindText, Content: `$\frac{1}{2$`, Fallback: true},
		node(types.KindText, " then "),
		node(types.KindInlineMath, "x²"),
	}, nodes)
}

func TestRenderHeuristicsDisabled(t *testing.T) {
	p := newUnicode(false)
	assert.Equal(t, []types.RenderNode{node(types.KindText, "What is 1/2 + 1/4?")},
		p.Render("What is 1/2 + 1/4?", false))
}

func TestRenderInvalidUTF8FallsBack(t *testing.T) {
	log, hook := test.NewNullLogger()
	p := New(Config{
		Strategy:   normalize.NewUnicode(nil),
		Dispatcher: render.NewDispatcher(render.NewPool(1, render.NewUnicodeEngine), nil, nil),
		Memo:       warn.NewMemo(0, 0),
		Logger:     log,
	})
	input := "bad \xff $1/2$"
	assert.Equal(t, []types.RenderNode{{Kind: types.KindText, Content: input, Fallback: true}},
		p.Render(input, false))
	assert.Len(t, hook.AllEntries(), 1)
}

func TestRenderWithoutDispatcher(t *testing.T) {
	// 没有分派器时整体退化为文本
	p := New(Config{Strategy: normalize.NewUnicode(nil)})
	assert.Equal(t, []types.RenderNode{{Kind: types.KindText, Content: "$x$", Fallback: true}},
		p.Render("$x$", false))
}

func TestWithMacros(t *testing.T) {
	p := newUnicode(false)
	ext := p.WithMacros(map[string]string{`\R`: "ℝ"})

	assert.Equal(t, []types.RenderNode{node(types.KindInlineMath, "x ∈ ℝ")}, ext.Render(`$x \in \R$`, false))
	assert.Equal(t, []types.RenderNode{node(types.KindInlineMath, `x ∈ \R`)}, p.Render(`$x \in \R$`, false))
	assert.Same(t, p, p.WithMacros(nil))
}

func TestRenderMathML(t *testing.T) {
	p := New(Config{
		Strategy:   normalize.NewMarkup(nil),
		Heuristics: true,
		Dispatcher: render.NewDispatcher(render.NewPool(1, func() render.Engine {
			return render.NewMathMLEngine(nil)
		}), nil, nil),
	})
	nodes := p.Render("What is 1/2 + 1/4?", false)
	require.Len(t, nodes, 3)
	assert.Equal(t, types.KindInlineMath, nodes[1].Kind)
	assert.True(t, strings.Contains(nodes[1].Content, "<math"))
	assert.Equal(t, "?", nodes[2].Content)
}

// TestSpansLossless 切分结果拼接等于原文，且每个片段只规范化一次
func TestSpansLossless(t *testing.T) {
	p := newUnicode(true)
	inputs := []string{
		"What is 1/2 + 1/4?",
		"$$x$ and \\(y",
		"Let y=-2.5 and $$\\frac{3}{6}$$ \\[\\sqrt{2}\\]",
		"sin(x) + cos(x) = 1",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, s := range p.Spans(in) {
			b.WriteString(s.Raw)
			_, ok := s.Normalized()
			assert.True(t, ok)
		}
		assert.Equal(t, in, b.String())
	}
}

func TestPlainText(t *testing.T) {
	nodes := []types.RenderNode{
		node(types.KindText, "Solve"),
		node(types.KindDisplayMath, "x² = 4"),
		node(types.KindText, "for x"),
	}
	assert.Equal(t, "Solvex² = 4for x", PlainText(nodes, false))
	assert.Equal(t, "Solve\nx² = 4\nfor x", PlainText(nodes, true))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
	// "½" 占两个字节，不能从中间切开
	got := truncate("a½b", 2)
	assert.Equal(t, "a...", got)
	assert.True(t, utf8.ValidString(got))
}
