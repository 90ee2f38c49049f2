package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnicodeNormalize 测试 Unicode 策略
func TestUnicodeNormalize(t *testing.T) {
	u := NewUnicode(nil)
	tests := []struct {
		input string
		want  string
	}{
		{"1/2 + 1/4", "½ + ¼"},
		{"2/4", "½"},
		{"5/12", "5⁄12"},
		{"-1/2", "-½"},
		{"3-1/2", "3-½"},
		{"1 / 3", "⅓"},
		{`\frac{3}{4}`, "¾"},
		{`\dfrac{ 6 }{ 8 }`, "¾"},
		{`\frac{-2}{4}`, "-½"},
		{`\frac{x}{2}`, "x/2"},
		{`\frac{1}{0}`, `\frac{1}{0}`},
		{"1/0", "1/0"},
		{"2024/10/26", "2024/10/26"},
		{"100/3", "100/3"},
		{"1/2/3", "1/2/3"},
		{"0.5/2", "0.5/2"},
		{"2 x 3", "2 × 3"},
		{"a x x b", "a × x b"},
		{"2 x 3 x 4", "2 × 3 × 4"},
		{"2x + 1", "2x + 1"},
		{"sin x + 1", "sin x + 1"},
		{`\sin x \le \pi`, "sin x ≤ π"},
		{"$x^2$", "x²"},
		{`\(a\)`, "a"},
		{"x^2 + 5x + 6", "x² + 5x + 6"},
		{"sqrt(16)", "√(16)"},
		{`\sqrt{16}`, "√16"},
		{`\alpha \times \beta`, "α × β"},
		{"0.75", "0.75"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, u.Normalize(tt.input))
		})
	}
}

// TestMarkupNormalize 测试结构化标记策略
func TestMarkupNormalize(t *testing.T) {
	m := NewMarkup(map[string]string{`\R`: `\mathbb{R}`})
	tests := []struct {
		input string
		want  string
	}{
		{"1/2 + 1/4", `\frac{1}{2} + \frac{1}{4}`},
		{"2/4", `\frac{1}{2}`},
		{"-1/2", `-\frac{1}{2}`},
		{`\frac{6}{8}`, `\frac{3}{4}`},
		{`\frac{1}{0}`, `\frac{1}{0}`},
		{"2 x 3", `2 \times 3`},
		{"a x x b", `a \times x b`},
		{"3 × 4", `3 \times 4`},
		{"sin(x)", `\sin(x)`},
		{"log", `\log`},
		{`\sin x`, `\sin x`},
		{"sqrt(16)", `\sqrt{16}`},
		{"sqrt(sqrt(x))", `\sqrt{\sqrt{x}}`},
		{"sqrt(open", "sqrt(open"},
		{`x \in \R`, `x \in \mathbb{R}`},
		{"$x^2$", "x^2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Normalize(tt.input))
		})
	}
}

// TestNormalizeIdempotent 规范化结果再次规范化不变
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"1/2 + 1/4", "2/3 × 3/4", "5/6 ÷ 2/3", `\frac{2}{4}`, `\frac{-3}{9}`, `\frac{1}{0}`,
		"x^2 + 5x + 6", "x^{10}", "x^{a b}", "a_q", "sqrt(16)", `\sqrt{x+1}`, "2 x 3", "a x x b",
		"sin(x) + cos(x)", "log 10 / ln 2", `\left( \frac{a}{b} \right)`, `\{ a \}`, "2024/10/26",
		"$y = -2.5$", `\alpha\,x\,\beta`, `\begin{cases} 1 & x > 0 \\ 0 & x \le 0 \end{cases}`,
		"99/98", "-7/14", "(1/2)", "x = 4", `\text{ x }`, `\mathbb{R}^2`,
	}
	for _, strategy := range []Strategy{NewUnicode(nil), NewMarkup(nil)} {
		for _, in := range inputs {
			once := strategy.Normalize(in)
			twice := strategy.Normalize(once)
			assert.Equal(t, once, twice, "%s: %q", strategy.Name(), in)
		}
	}
}

func TestNew(t *testing.T) {
	s, err := New("", nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyUnicode, s.Name())

	s, err = New("MathML", nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyMathML, s.Name())

	_, err = New("ascii", nil)
	assert.Error(t, err)
}

func TestExtend(t *testing.T) {
	base := NewUnicode(nil)
	ext := base.Extend(map[string]string{"<=": "≤", "deg": "°", `\pi`: "PI"})

	assert.Equal(t, "x ≤ 90 °", ext.Normalize("x <= 90 deg"))
	assert.Equal(t, "2PI", ext.Normalize(`2\pi`))
	assert.Equal(t, "2π", base.Normalize(`2\pi`))

	_, ok := base.Macros().Lookup("deg")
	assert.False(t, ok)
	assert.Same(t, base, base.Extend(nil))
}
