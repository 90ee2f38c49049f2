// Package detect 在文本片段中识别未加定界符的公式
//
// 扫描器在每个位置依次尝试下列识别器，取最长匹配（等长时按顺序优先），
// 匹配之间互不重叠：
//
//  1. 小数            0.75、-2.5
//  2. 算术链          1/2 + 1/4、2x + 5 = 13、-5 + 3（至少两个操作数）
//  3. 带指数的变量    x^2
//  4. sqrt 调用       sqrt(16)
//  5. 函数名          sin、cos(x)、log、ln
//  6. 单字母赋值      x = 4
//
// 单独的整数（"I have 3 apples"）不会被识别。
package detect

import (
	"unicode/utf8"

	"github.com/riverfjs/mathtext-go/internal/types"
)

// Functions 识别的函数名（sqrt 单独处理，必须带括号参数）
var Functions = []string{"sin", "cos", "tan", "log", "ln"}

type recognizer func(s string, i int) int

var recognizers = []recognizer{
	scanDecimal,
	scanChain,
	scanPower,
	scanSqrt,
	scanFunction,
	scanAssignment,
}

// Split 把文本片段细分为交替的文本和行内公式子片段；非文本片段原样返回
func Split(span types.Span) []types.Span {
	if span.Kind != types.KindText {
		return []types.Span{span}
	}
	s := span.Raw
	var out []types.Span
	textStart := 0
	for i := 0; i < len(s); {
		n := longest(s, i)
		if n == 0 {
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
			continue
		}
		if i > textStart {
			out = append(out, sub(types.KindText, s[textStart:i], span.Offset+textStart, false))
		}
		out = append(out, sub(types.KindInlineMath, s[i:i+n], span.Offset+i, true))
		i += n
		textStart = i
	}
	if len(out) == 0 {
		return []types.Span{span}
	}
	if textStart < len(s) {
		out = append(out, sub(types.KindText, s[textStart:], span.Offset+textStart, false))
	}
	return out
}

// SplitAll 对所有文本片段执行检测，保持顺序
func SplitAll(spans []types.Span) []types.Span {
	out := make([]types.Span, 0, len(spans))
	for _, s := range spans {
		out = append(out, Split(s)...)
	}
	return out
}

func sub(kind types.Kind, raw string, offset int, detected bool) types.Span {
	return types.Span{Kind: kind, Raw: raw, Content: raw, Offset: offset, Detected: detected}
}

// longest 返回位置 i 处最长匹配的字节长度，无匹配为 0
func longest(s string, i int) int {
	best := 0
	for _, r := range recognizers {
		if n := r(s, i); n > best {
			best = n
		}
	}
	return best
}

// ──────────────────────────────────────────────
// 识别器：返回从 i 开始匹配的字节数，0 表示不匹配
// ──────────────────────────────────────────────

// scanDecimal ['-'] digits '.' digits
func scanDecimal(s string, i int) int {
	if !leftBoundary(s, i) {
		return 0
	}
	j := digits(s, unaryMinus(s, i))
	if j == i || j >= len(s) || s[j] != '.' {
		return 0
	}
	k := digits(s, j+1)
	if k == j+1 || !rightBoundary(s, k) {
		return 0
	}
	return k - i
}

// scanChain ['-'] operand (op operand)+
func scanChain(s string, i int) int {
	if !leftBoundary(s, i) {
		return 0
	}
	first := unaryMinus(s, i)
	end := operand(s, first)
	if end == first {
		return 0
	}
	count := 1
	for {
		j := skipSpaces(s, end)
		k := operator(s, j)
		if k == j {
			break
		}
		k = skipSpaces(s, k)
		next := operand(s, k)
		if next == k {
			break
		}
		end = next
		count++
	}
	if count < 2 {
		return 0
	}
	return end - i
}

// scanPower letter '^' digits
func scanPower(s string, i int) int {
	if !leftBoundary(s, i) || !isLetter(s, i) {
		return 0
	}
	if i+1 >= len(s) || s[i+1] != '^' {
		return 0
	}
	k := digits(s, i+2)
	if k == i+2 || !rightBoundary(s, k) {
		return 0
	}
	return k - i
}

// scanSqrt "sqrt(" ... ")"，括号需配对且不跨行
func scanSqrt(s string, i int) int {
	j := word(s, i, "sqrt")
	if j == i || j >= len(s) || s[j] != '(' {
		return 0
	}
	k := parens(s, j)
	if k == j {
		return 0
	}
	return k - i
}

// scanFunction 函数名，可带一个括号参数
func scanFunction(s string, i int) int {
	for _, name := range Functions {
		j := word(s, i, name)
		if j == i {
			continue
		}
		if j < len(s) && s[j] == '(' {
			if k := parens(s, j); k > j {
				return k - i
			}
		}
		if rightWordBoundary(s, j) {
			return j - i
		}
	}
	return 0
}

// scanAssignment letter '=' number，右侧也可以是算术链（x = 7/3）
func scanAssignment(s string, i int) int {
	if !leftBoundary(s, i) || !isLetter(s, i) || isLetter(s, i+1) {
		return 0
	}
	j := skipSpaces(s, i+1)
	if j >= len(s) || s[j] != '=' {
		return 0
	}
	j = skipSpaces(s, j+1)
	k := j
	if k < len(s) && s[k] == '-' {
		k++
	}
	if n := scanChain(s, k); n > 0 {
		return k + n - i
	}
	d := digits(s, k)
	if d == k {
		return 0
	}
	if d+1 < len(s) && s[d] == '.' && isDigit(s[d+1]) {
		d = digits(s, d+1)
	}
	if !rightBoundary(s, d) || fractionAhead(s, d) {
		return 0
	}
	return d - i
}

// fractionAhead i 处是 '/' 且后接数字，说明数字还没有结束
func fractionAhead(s string, i int) bool {
	return i+1 < len(s) && s[i] == '/' && isDigit(s[i+1])
}

// ──────────────────────────────────────────────
// 词法辅助
// ──────────────────────────────────────────────

// operand 整数项：digits ['.' digits] [letter] ['^' digits]，或 letter '^' digits
func operand(s string, i int) int {
	if n := scanPower(s, i); n > 0 {
		return i + n
	}
	j := digits(s, i)
	if j == i {
		return i
	}
	if j+1 < len(s) && s[j] == '.' && isDigit(s[j+1]) {
		j = digits(s, j+1)
	}
	if isLetter(s, j) && !isLetter(s, j+1) {
		j++
	}
	if j+1 < len(s) && s[j] == '^' && isDigit(s[j+1]) {
		j = digits(s, j+1)
	}
	if !rightBoundary(s, j) {
		return i
	}
	return j
}

// operator + - * / × ÷ =
func operator(s string, i int) int {
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '+', '-', '*', '/', '=':
		return i + 1
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == '×' || r == '÷' {
		return i + size
	}
	return i
}

// unaryMinus 位于输入开头或空白、左括号之后且紧跟数字的 '-' 算作符号，返回其后位置
func unaryMinus(s string, i int) int {
	if i+1 >= len(s) || s[i] != '-' || !isDigit(s[i+1]) {
		return i
	}
	if i > 0 && s[i-1] != ' ' && s[i-1] != '\t' && s[i-1] != '(' {
		return i
	}
	return i + 1
}

func digits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// word 匹配完整单词 name（左侧不是字母），返回结束位置；不匹配返回 i
func word(s string, i int, name string) int {
	if len(s)-i < len(name) || s[i:i+len(name)] != name {
		return i
	}
	if i > 0 && (isASCIILetter(s[i-1]) || s[i-1] == '\\') {
		return i
	}
	return i + len(name)
}

// parens 从 '(' 开始匹配到配对的 ')'，返回其后位置；不配对返回 i
func parens(s string, i int) int {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j + 1
			}
		case '\n':
			return i
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isASCIILetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isLetter(s string, i int) bool { return i < len(s) && isASCIILetter(s[i]) }

func isWordByte(c byte) bool { return isDigit(c) || isASCIILetter(c) || c == '_' }

// leftBoundary i 左侧不是单词字符、小数点或反斜杠
func leftBoundary(s string, i int) bool {
	if i == 0 {
		return true
	}
	c := s[i-1]
	return !isWordByte(c) && c != '.' && c != '\\' && c != '^'
}

// rightBoundary i 处不是单词字符，也不是后接数字的小数点
func rightBoundary(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	if isWordByte(s[i]) {
		return false
	}
	return !(s[i] == '.' && i+1 < len(s) && isDigit(s[i+1]))
}

func rightWordBoundary(s string, i int) bool {
	return i >= len(s) || !isASCIILetter(s[i])
}
