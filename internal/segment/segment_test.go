package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/mathtext-go/internal/types"
)

type want struct {
	kind    types.Kind
	content string
}

func kinds(spans []types.Span) []want {
	out := make([]want, 0, len(spans))
	for _, s := range spans {
		out = append(out, want{s.Kind, s.Content})
	}
	return out
}

// TestSplit 测试定界符切分
func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []want
	}{
		{
			name:  "plain text",
			input: "What is 1/2 + 1/4?",
			want:  []want{{types.KindText, "What is 1/2 + 1/4?"}},
		},
		{
			name:  "block dollar wins over inline",
			input: "$$1/2$$",
			want:  []want{{types.KindDisplayMath, "1/2"}},
		},
		{
			name:  "inline dollar",
			input: "Compute $a+b$ now",
			want: []want{
				{types.KindText, "Compute "},
				{types.KindInlineMath, "a+b"},
				{types.KindText, " now"},
			},
		},
		{
			name:  "bracket forms",
			input: `\(x\) and \[y\]`,
			want: []want{
				{types.KindInlineMath, "x"},
				{types.KindText, " and "},
				{types.KindDisplayMath, "y"},
			},
		},
		{
			name:  "adjacent math",
			input: "$a$$$b$$",
			want: []want{
				{types.KindInlineMath, "a"},
				{types.KindDisplayMath, "b"},
			},
		},
		{
			name:  "empty inline",
			input: "$$",
			want:  []want{{types.KindInlineMath, ""}},
		},
		{
			name:  "empty block",
			input: "$$$$",
			want:  []want{{types.KindDisplayMath, ""}},
		},
		{
			name:  "unterminated inline",
			input: "costs $5 today",
			want:  []want{{types.KindText, "costs $5 today"}},
		},
		{
			name:  "unterminated after math",
			input: `$x$ then \( never closed`,
			want: []want{
				{types.KindInlineMath, "x"},
				{types.KindText, ` then \( never closed`},
			},
		},
		{
			name:  "unterminated block falls back to inline pair",
			input: "$$x$",
			want: []want{
				{types.KindInlineMath, ""},
				{types.KindText, "x$"},
			},
		},
		{
			name:  "unterminated opener keeps later math",
			input: `price $5 and \(x\)`,
			want: []want{
				{types.KindText, "price $5 and "},
				{types.KindInlineMath, "x"},
			},
		},
		{
			name:  "unterminated bracket before dollars",
			input: `\[ open $a$`,
			want: []want{
				{types.KindText, `\[ open `},
				{types.KindInlineMath, "a"},
			},
		},
		{
			name:  "multiline display",
			input: "\\[\na = b\n\\]",
			want:  []want{{types.KindDisplayMath, "\na = b\n"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := Split(tt.input)
			assert.Equal(t, tt.want, kinds(spans))
			assert.Equal(t, tt.input, Join(spans))
		})
	}
}

func TestSplit_Empty(t *testing.T) {
	assert.Empty(t, Split(""))
}

func TestSplit_RawIncludesDelimiters(t *testing.T) {
	spans := Split(`a \(x\) b`)
	require.Len(t, spans, 3)
	assert.Equal(t, `\(x\)`, spans[1].Raw)
	assert.Equal(t, 2, spans[1].Offset)
	assert.Equal(t, 7, spans[2].Offset)
}

// TestSplit_Lossless 对一批含畸形定界符的输入验证无损切分
func TestSplit_Lossless(t *testing.T) {
	atoms := []string{"$", "$$", `\(`, `\)`, `\[`, `\]`, `\`, "x", " ", "1/2", "½", "\n"}
	var inputs []string
	for _, a := range atoms {
		for _, b := range atoms {
			for _, c := range atoms {
				inputs = append(inputs, a+b+c, a+"t"+b+"u"+c)
			}
		}
	}
	for _, in := range inputs {
		spans := Split(in)
		if got := Join(spans); got != in {
			t.Fatalf("Split(%q) not lossless: %q", in, got)
		}
		for _, s := range spans {
			if s.Kind == types.KindText && s.Raw == "" {
				t.Fatalf("Split(%q) emitted empty text span", in)
			}
			if !strings.Contains(s.Raw, s.Content) {
				t.Fatalf("Split(%q): content %q not inside raw %q", in, s.Content, s.Raw)
			}
		}
	}
}
