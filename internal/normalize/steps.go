package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riverfjs/mathtext-go/internal/fraction"
	"github.com/riverfjs/mathtext-go/internal/macro"
)

// ──────────────────────────────────────────────
// 步骤 1：显式分数命令 \frac{a}{b}
// ──────────────────────────────────────────────

var fracCommandRegex = regexp.MustCompile(`\\[dt]?frac\{\s*([+-]?\d{1,2})\s*\}\{\s*([+-]?\d{1,2})\s*\}`)

// fractionCommands 将 1 到 2 位整数的 \frac 替换为 format 的结果；分母为 0 时保留原文
func fractionCommands(s string, format func(fraction.Fraction) string) string {
	if !strings.Contains(s, "frac{") {
		return s
	}
	return fracCommandRegex.ReplaceAllStringFunc(s, func(match string) string {
		groups := fracCommandRegex.FindStringSubmatch(match)
		f, err := fraction.Parse(groups[1], groups[2])
		if err != nil {
			return match
		}
		return format(f)
	})
}

// ──────────────────────────────────────────────
// 步骤 2：去掉内容中残留的定界符
// ──────────────────────────────────────────────

// stripDelimiters 删除 $、\(、\)、\[、\]；其他转义对（如 \$、\\）原样保留
func stripDelimiters(s string) string {
	if !strings.ContainsAny(s, `$\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '$':
		case c == '\\' && i+1 < len(s):
			switch s[i+1] {
			case '(', ')', '[', ']':
			default:
				b.WriteByte(c)
				b.WriteByte(s[i+1])
			}
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ──────────────────────────────────────────────
// 步骤 3：裸分数 a/b
// ──────────────────────────────────────────────

// bareFractions 将独立的 1 到 2 位整数分数替换为 format 的结果
//
// 左右两侧都不能紧贴单词字符、斜杠或小数点，日期（2024/10/26）与多段数字串不会被匹配。
func bareFractions(s string, format func(fraction.Fraction) string) string {
	if !strings.Contains(s, "/") {
		return s
	}
	var b strings.Builder
	last := 0
	for i := 0; i < len(s); {
		end, f, ok := matchBareFraction(s, i)
		if !ok {
			i++
			continue
		}
		b.WriteString(s[last:i])
		b.WriteString(format(f))
		i, last = end, end
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

func matchBareFraction(s string, i int) (int, fraction.Fraction, bool) {
	if !fractionLeft(s, i) {
		return 0, fraction.Fraction{}, false
	}
	j := i
	if s[j] == '+' || s[j] == '-' {
		// 符号只出现在开头、空格或左括号之后
		if i > 0 && s[i-1] != ' ' && s[i-1] != '(' {
			return 0, fraction.Fraction{}, false
		}
		j++
	}
	numStart := j
	j = digits(s, j)
	if n := j - numStart; n < 1 || n > 2 {
		return 0, fraction.Fraction{}, false
	}
	numerator := s[i:j]

	k := skipSpaces(s, j)
	if k >= len(s) || s[k] != '/' {
		return 0, fraction.Fraction{}, false
	}
	k = skipSpaces(s, k+1)
	denStart := k
	k = digits(s, k)
	if n := k - denStart; n < 1 || n > 2 {
		return 0, fraction.Fraction{}, false
	}
	if !fractionRight(s, k) {
		return 0, fraction.Fraction{}, false
	}

	f, err := fraction.Parse(numerator, s[denStart:k])
	if err != nil {
		return 0, fraction.Fraction{}, false
	}
	return k, f, true
}

func fractionLeft(s string, i int) bool {
	if i == 0 {
		return true
	}
	c := s[i-1]
	return !isWordByte(c) && c != '/' && c != '.'
}

func fractionRight(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	c := s[i]
	if isWordByte(c) || c == '/' {
		return false
	}
	return !(c == '.' && i+1 < len(s) && isDigit(s[i+1]))
}

// ──────────────────────────────────────────────
// 步骤 4：空格包围的 x 作乘号
// ──────────────────────────────────────────────

// timesOperator 替换作乘号用的单独 x：两侧都是空白，且左边是操作数结尾、右边是操作数开头。
// 两侧空白原样保留；"sin x + 1" 中的 x 是变量，不替换。
func timesOperator(s, sign string) string {
	if !strings.Contains(s, "x") {
		return s
	}
	var b strings.Builder
	last := 0
	// replaced 上一个被替换的 x；它和已有的乘号都不能充当下一个 x 的左操作数
	replaced := -1
	for i := 1; i+1 < len(s); i++ {
		if s[i] != 'x' || !isSpace(s[i-1]) || !isSpace(s[i+1]) {
			continue
		}
		if !operandBefore(s, i, replaced, sign) || !operandAfter(s, i+1) {
			continue
		}
		b.WriteString(s[last:i])
		b.WriteString(sign)
		last = i + 1
		replaced = i
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

func operandBefore(s string, i, replaced int, sign string) bool {
	j := i - 1
	for j >= 0 && isSpace(s[j]) {
		j--
	}
	if j < 0 || j == replaced || strings.HasSuffix(s[:j+1], sign) {
		return false
	}
	if c := s[j]; c < utf8.RuneSelf {
		return isWordByte(c) || c == ')' || c == '}' || c == ']'
	}
	r, _ := utf8.DecodeLastRuneInString(s[:j+1])
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func operandAfter(s string, i int) bool {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i >= len(s) {
		return false
	}
	if c := s[i]; c < utf8.RuneSelf {
		return isWordByte(c) || c == '(' || c == '{'
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// ──────────────────────────────────────────────
// 步骤 5：宏表替换的公共部分
// ──────────────────────────────────────────────

// replaceWords 替换裸单词键：前面不是字母或反斜杠，后面不是字母
func replaceWords(s string, tbl *macro.Table) string {
	words := tbl.Words()
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for i := 0; i < len(s); {
		if i > 0 && (isASCIILetter(s[i-1]) || s[i-1] == '\\') {
			i++
			continue
		}
		matched := ""
		for _, w := range words {
			if strings.HasPrefix(s[i:], w) && !(i+len(w) < len(s) && isASCIILetter(s[i+len(w)])) {
				matched = w
				break
			}
		}
		if matched == "" {
			i++
			continue
		}
		expansion, _ := tbl.Lookup(matched)
		b.WriteString(s[last:i])
		b.WriteString(expansion)
		i += len(matched)
		last = i
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// symbolReplacer 为符号键构造替换器，长键优先
func symbolReplacer(tbl *macro.Table) *strings.Replacer {
	symbols := tbl.Symbols()
	if len(symbols) == 0 {
		return nil
	}
	pairs := make([]string, 0, 2*len(symbols))
	for _, sym := range symbols {
		expansion, _ := tbl.Lookup(sym)
		pairs = append(pairs, sym, expansion)
	}
	return strings.NewReplacer(pairs...)
}

// ──────────────────────────────────────────────
// 词法辅助
// ──────────────────────────────────────────────

func digits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func skipSpaces(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isASCIILetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isWordByte(c byte) bool { return isDigit(c) || isASCIILetter(c) || c == '_' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
