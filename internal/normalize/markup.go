package normalize

import (
	"regexp"
	"strings"

	"github.com/riverfjs/mathtext-go/internal/fraction"
	"github.com/riverfjs/mathtext-go/internal/macro"
)

// Markup 生成 TeX 标记、交给结构化引擎渲染的策略
type Markup struct {
	table   *macro.Table
	symbols *strings.Replacer
}

// NewMarkup 创建结构化标记策略
func NewMarkup(extra map[string]string) *Markup {
	return newMarkup(macro.Markup().Extend(extra))
}

func newMarkup(tbl *macro.Table) *Markup {
	return &Markup{table: tbl, symbols: symbolReplacer(tbl)}
}

// Name implements Strategy.
func (m *Markup) Name() string { return StrategyMathML }

// Macros implements Strategy.
func (m *Markup) Macros() *macro.Table { return m.table }

// Extend implements Strategy.
func (m *Markup) Extend(extra map[string]string) Strategy {
	if len(extra) == 0 {
		return m
	}
	return newMarkup(m.table.Extend(extra))
}

// Normalize implements Strategy.
func (m *Markup) Normalize(content string) string {
	s := fractionCommands(content, tex)
	s = stripDelimiters(s)
	s = bareFractions(s, tex)
	s = timesOperator(s, `\times`)
	s = sqrtCalls(s)
	s = replaceWords(s, m.table)
	if m.symbols != nil {
		s = m.symbols.Replace(s)
	}
	return m.expandCommands(s)
}

func tex(f fraction.Fraction) string { return f.TeX() }

// sqrtCalls sqrt(x) → \sqrt{x}，括号需配对且不跨行，支持嵌套
func sqrtCalls(s string) string {
	idx := strings.Index(s, "sqrt(")
	if idx == -1 {
		return s
	}
	var b strings.Builder
	last := 0
	for idx != -1 {
		start := last + idx
		open := start + len("sqrt")
		end := matchParen(s, open)
		if end == -1 || (start > 0 && (isASCIILetter(s[start-1]) || s[start-1] == '\\')) {
			b.WriteString(s[last : open+1])
			last = open + 1
		} else {
			b.WriteString(s[last:start])
			b.WriteString(`\sqrt{` + sqrtCalls(s[open+1:end]) + "}")
			last = end + 1
		}
		idx = strings.Index(s[last:], "sqrt(")
	}
	b.WriteString(s[last:])
	return b.String()
}

// matchParen 返回与 s[open] 处 '(' 配对的 ')' 位置，不配对返回 -1
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		case '\n':
			return -1
		}
	}
	return -1
}

var commandRegex = regexp.MustCompile(`\\[a-zA-Z]+`)

// expandCommands 单遍展开表中的 \cmd 键，展开结果不再递归展开
func (m *Markup) expandCommands(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return commandRegex.ReplaceAllStringFunc(s, func(cmd string) string {
		if expansion, ok := m.table.Lookup(cmd); ok {
			return expansion
		}
		return cmd
	})
}
