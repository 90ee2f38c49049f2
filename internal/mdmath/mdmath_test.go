package mdmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"

	"github.com/riverfjs/mathtext-go/internal/types"
)

// echoRenderer 把原文包在 R(...) 中返回，记录调用参数
type echoRenderer struct {
	calls    []string
	displays []bool
	content  func(string) string
	fallback bool
}

func (r *echoRenderer) Render(text string, display bool) []types.RenderNode {
	r.calls = append(r.calls, text)
	r.displays = append(r.displays, display)
	content := "R(" + text + ")"
	if r.content != nil {
		content = r.content(text)
	}
	kind := types.KindInlineMath
	if display {
		kind = types.KindDisplayMath
	}
	return []types.RenderNode{{Kind: kind, Content: content, Fallback: r.fallback}}
}

func TestConvert_Inline(t *testing.T) {
	r := &echoRenderer{}
	out, err := Convert(r, false, "Solve $x^2$ and \\(y\\) now")
	require.NoError(t, err)

	assert.Contains(t, out, `<span class="math inline">R($x^2$)</span>`)
	assert.Contains(t, out, `<span class="math inline">R(\(y\))</span>`)
	assert.Equal(t, []string{"$x^2$", `\(y\)`}, r.calls)
	assert.Equal(t, []bool{false, false}, r.displays)
}

func TestConvert_InlineDisplay(t *testing.T) {
	r := &echoRenderer{}
	out, err := Convert(r, false, "then $$a+b$$ end")
	require.NoError(t, err)
	assert.Contains(t, out, `<span class="math display">R($$a+b$$)</span>`)
	assert.Equal(t, []bool{true}, r.displays)
}

func TestConvert_Block(t *testing.T) {
	r := &echoRenderer{}
	out, err := Convert(r, false, "Intro\n\n$$\nx = 1\n$$\n\nAfter")
	require.NoError(t, err)

	assert.Contains(t, out, "<div class=\"math display\">R($$\nx = 1\n$$)</div>")
	assert.Contains(t, out, "<p>Intro</p>")
	assert.Contains(t, out, "<p>After</p>")
	assert.Equal(t, []bool{true}, r.displays)
}

func TestConvert_UnterminatedStaysText(t *testing.T) {
	r := &echoRenderer{}
	out, err := Convert(r, false, "costs $5 today")
	require.NoError(t, err)
	assert.Contains(t, out, "costs $5 today")
	assert.Empty(t, r.calls)
}

func TestConvert_CodeSpanIsNotMath(t *testing.T) {
	r := &echoRenderer{}
	out, err := Convert(r, false, "use `$x$` literally")
	require.NoError(t, err)
	assert.Contains(t, out, "<code>$x$</code>")
	assert.Empty(t, r.calls)
}

func TestConvert_Escaping(t *testing.T) {
	r := &echoRenderer{content: func(string) string { return "<b>&</b>" }}

	out, err := Convert(r, false, "$x$")
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;b&gt;&amp;&lt;/b&gt;")

	out, err = Convert(r, true, "$x$")
	require.NoError(t, err)
	assert.Contains(t, out, "<b>&</b>")

	// 降级节点即使在 MathML 模式下也要转义
	r.fallback = true
	out, err = Convert(r, true, "$x$")
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;b&gt;")
}

func TestConvert_NilRenderer(t *testing.T) {
	out, err := Convert(nil, false, "a $<x>$ b")
	require.NoError(t, err)
	assert.Contains(t, out, `<span class="math inline">$&lt;x&gt;$</span>`)
}

func TestParseAST(t *testing.T) {
	doc := ParseAST("one $x$ two\n\n\\[\ny\n\\]\n")

	var inline, block int
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case KindMath:
			inline++
		case KindMathBlock:
			block++
			assert.True(t, n.(*MathBlock).Closed)
		}
		return ast.WalkContinue, nil
	})
	assert.Equal(t, 1, inline)
	assert.Equal(t, 1, block)
}

func TestMathBlock_UnclosedIsText(t *testing.T) {
	r := &echoRenderer{}
	out, err := Convert(r, false, "$$\na\nb")
	require.NoError(t, err)
	assert.NotContains(t, out, `<div class="math display">`)
	assert.Contains(t, out, "a\nb")

	var blocks int
	_ = ast.Walk(ParseAST("$$\na\nb"), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == KindMathBlock {
			blocks++
		}
		return ast.WalkContinue, nil
	})
	assert.Zero(t, blocks)
}

func TestMathBlock_Raw(t *testing.T) {
	source := "\\[\nx^2\n\\]\n"
	var raw string
	_ = ast.Walk(ParseAST(source), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if b, ok := n.(*MathBlock); ok && entering {
			raw = b.Raw([]byte(source))
		}
		return ast.WalkContinue, nil
	})
	assert.Equal(t, "\\[\nx^2\n\\]", raw)
}

func TestMathBlock_ContentAfterCloser(t *testing.T) {
	r := &echoRenderer{}
	out, err := Convert(r, false, "$$\na\nb\n$$\nnext line\n\n\\[\nc\n\\]\n\nend")
	require.NoError(t, err)

	assert.Equal(t, []string{"$$\na\nb\n$$", "\\[\nc\n\\]"}, r.calls)
	assert.Contains(t, out, "next line")
	assert.Contains(t, out, "<p>end</p>")
}

func TestMathBlock_CloserOnContentLine(t *testing.T) {
	r := &echoRenderer{}
	_, err := Convert(r, false, "$$\nx + 1 $$\n\ndone")
	require.NoError(t, err)
	assert.Equal(t, []string{"$$\nx + 1 $$"}, r.calls)
}
