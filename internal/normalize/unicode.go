package normalize

import (
	"strings"

	"github.com/riverfjs/mathtext-go/internal/fraction"
	"github.com/riverfjs/mathtext-go/internal/latex"
	"github.com/riverfjs/mathtext-go/internal/macro"
)

// Unicode 直接生成 Unicode 字形的策略
type Unicode struct {
	table   *macro.Table
	symbols *strings.Replacer
	parser  *latex.Parser
}

// NewUnicode 创建 Unicode 策略
func NewUnicode(extra map[string]string) *Unicode {
	return newUnicode(macro.Unicode().Extend(extra))
}

func newUnicode(tbl *macro.Table) *Unicode {
	return &Unicode{
		table:   tbl,
		symbols: symbolReplacer(tbl),
		parser:  latex.NewParser(tbl),
	}
}

// Name implements Strategy.
func (u *Unicode) Name() string { return StrategyUnicode }

// Macros implements Strategy.
func (u *Unicode) Macros() *macro.Table { return u.table }

// Extend implements Strategy.
func (u *Unicode) Extend(extra map[string]string) Strategy {
	if len(extra) == 0 {
		return u
	}
	return newUnicode(u.table.Extend(extra))
}

// Normalize implements Strategy.
func (u *Unicode) Normalize(content string) string {
	s := fractionCommands(content, canonical)
	s = stripDelimiters(s)
	s = bareFractions(s, canonical)
	s = timesOperator(s, "×")
	if u.symbols != nil {
		s = u.symbols.Replace(s)
	}
	s = replaceWords(s, u.table)
	return u.parser.Convert(s)
}

func canonical(f fraction.Fraction) string { return f.Canonical() }
