package mathtext

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contents(nodes []RenderNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Content)
	}
	return out
}

// TestRenderMathText 默认引擎的端到端行为
func TestRenderMathText(t *testing.T) {
	tests := []struct {
		input string
		want  []RenderNode
	}{
		{
			"What is 1/2 + 1/4?",
			[]RenderNode{
				{Kind: KindText, Content: "What is "},
				{Kind: KindInlineMath, Content: "½ + ¼"},
				{Kind: KindText, Content: "?"},
			},
		},
		{
			"$$1/2$$",
			[]RenderNode{{Kind: KindDisplayMath, Content: "½"}},
		},
		{
			"I have 3 apples",
			[]RenderNode{{Kind: KindText, Content: "I have 3 apples"}},
		},
		{
			"costs $5 today",
			[]RenderNode{{Kind: KindText, Content: "costs $5 today"}},
		},
		{
			`Reduce $\frac{2}{4}$`,
			[]RenderNode{
				{Kind: KindText, Content: "Reduce "},
				{Kind: KindInlineMath, Content: "½"},
			},
		},
		{
			`$\frac{1}{0}$`,
			[]RenderNode{{Kind: KindInlineMath, Content: `\frac{1}{0}`}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderMathText(tt.input, false, nil))
		})
	}
}

func TestRenderMathText_ExtraMacros(t *testing.T) {
	got := RenderMathText(`$\R$`, false, map[string]string{`\R`: "ℝ"})
	assert.Equal(t, []string{"ℝ"}, contents(got))

	// 调用方宏只作用于本次调用
	got = RenderMathText(`$\R$`, false, nil)
	assert.Equal(t, []string{`\R`}, contents(got))

	// 冲突时以调用方为准
	got = RenderMathText(`$\pi$`, false, map[string]string{`\pi`: "PI"})
	assert.Equal(t, []string{"PI"}, contents(got))
}

func TestRenderMathText_MalformedIsolated(t *testing.T) {
	got := RenderMathText(`ok $1/2$ bad $\frac{1}{$ end`, false, nil)
	require.Len(t, got, 5)
	assert.Equal(t, "½", got[1].Content)
	assert.Equal(t, KindText, got[3].Kind)
	assert.Equal(t, `$\frac{1}{$`, got[3].Content)
	assert.True(t, got[3].Fallback)
	assert.Equal(t, " end", got[4].Content)
}

func TestRenderPlainText(t *testing.T) {
	assert.Equal(t, "What is ½ + ¼?", RenderPlainText("What is 1/2 + 1/4?", false))
	assert.Equal(t, "Sum:\n½", RenderPlainText("Sum:$$1/2$$", true))
}

func TestNew_Options(t *testing.T) {
	e, err := New(WithHeuristics(false), WithPoolSize(1))
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, "unicode", e.Strategy())
	assert.False(t, e.Markup())
	assert.Equal(t, []string{"What is 1/2 + 1/4?"}, contents(e.Render("What is 1/2 + 1/4?", false)))

	_, err = New(WithStrategy("latex2png"))
	assert.Error(t, err)

	_, err = New(WithMacrosFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestNew_MacrosFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.yaml")
	require.NoError(t, os.WriteFile(path, []byte("'\\R': ℝ\n'\\N': ℕ\n"), 0o644))

	e, err := New(WithMacrosFile(path), WithMacros(map[string]string{`\N`: "N!"}))
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, []string{"ℝ"}, contents(e.Render(`$\R$`, false)))
	// 代码传入的宏优先于文件
	assert.Equal(t, []string{"N!"}, contents(e.Render(`$\N$`, false)))
}

func TestNew_WithConfig(t *testing.T) {
	cfg := *DefaultConfig()
	cfg.Heuristics = false
	e, err := New(WithConfig(&cfg))
	require.NoError(t, err)
	defer e.Close()
	assert.Len(t, e.Render("x = 4", false), 1)
	assert.Equal(t, KindText, e.Render("x = 4", false)[0].Kind)
}

func TestEngine_MathML(t *testing.T) {
	e, err := New(WithStrategy("mathml"))
	require.NoError(t, err)
	defer e.Close()

	assert.True(t, e.Markup())
	got := e.Render("What is $\\frac{2}{4}$?", false)
	require.Len(t, got, 3)
	assert.Equal(t, KindInlineMath, got[1].Kind)
	assert.Contains(t, got[1].Content, "<math")

	// 纯文本仍使用 unicode 渲染
	assert.Equal(t, "What is ½?", e.RenderPlainText("What is $\\frac{2}{4}$?", false))
}

func TestEngine_CloseDegrades(t *testing.T) {
	logger, hook := test.NewNullLogger()
	e, err := New(WithLogger(logger))
	require.NoError(t, err)
	e.Close()
	e.Close()

	got := e.Render("a $1/2$ b", false)
	require.Len(t, got, 3)
	assert.Equal(t, "$1/2$", got[1].Content)
	assert.True(t, got[1].Fallback)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	// 同一输入只告警一次
	hook.Reset()
	e.Render("a $1/2$ b", false)
	assert.Empty(t, hook.AllEntries())
}

func TestEngine_InvalidUTF8(t *testing.T) {
	bad := "1/2 \xff"
	got := RenderMathText(bad, false, nil)
	assert.Equal(t, []RenderNode{{Kind: KindText, Content: bad, Fallback: true}}, got)
}

func TestEngine_Concurrent(t *testing.T) {
	e, err := New(WithPoolSize(2))
	require.NoError(t, err)
	defer e.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				got := e.Render("What is $1/2$ + 3/4?", false)
				assert.Equal(t, "½", got[1].Content)
			}
		}()
	}
	wg.Wait()
}

func TestEngine_Lossless(t *testing.T) {
	inputs := []string{
		"Simplify: 3x^2 + 2x^2 - x",
		`$$\int_0^1 x\,dx$$ then \(y\) and $z`,
		"2024/10/26 was a day",
	}
	e := Default()
	for _, in := range inputs {
		var b strings.Builder
		for _, s := range e.Spans(in) {
			b.WriteString(s.Raw)
		}
		assert.Equal(t, in, b.String())
	}
}

func TestSetLogger(t *testing.T) {
	old := Logger
	defer SetLogger(old)

	logger, _ := test.NewNullLogger()
	SetLogger(logger)
	assert.Equal(t, logger, Logger)

	SetLogger(nil)
	assert.NotNil(t, Logger)
}
