package latex

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riverfjs/mathtext-go/internal/fraction"
	"github.com/riverfjs/mathtext-go/internal/macro"
)

// Parser 递归下降 LaTeX→Unicode 转换引擎
//
// 设计原则：
//  1. 数据驱动：命令查宏表，结构性映射（上下标、字体、重音）在 symbols.go
//  2. 鲁棒降级：未知命令与无法转换的上下标保留原文，不崩溃
//  3. 幂等：对输出再次解析不会改变结果
type Parser struct {
	macros *macro.Table
}

// NewParser 创建使用给定宏表的解析器
func NewParser(macros *macro.Table) *Parser {
	return &Parser{macros: macros}
}

// ──────────────────────────────────────────────
// 静态工具方法
// ──────────────────────────────────────────────

// TranslateCombining 将组合字符应用于文本
func TranslateCombining(command, text string) string {
	sample, ok := Combining[command]
	if !ok {
		return text
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}

	switch sample.Type {
	case FirstChar:
		// 跳过第一个字符之后的空格和已有组合字符
		i := 1
		for i < len(runes) && (unicode.IsSpace(runes[i]) || isCombiningChar(runes[i])) {
			i++
		}
		return string(runes[:i]) + string(sample.Char) + string(runes[i:])
	case LastChar:
		return text + string(sample.Char)
	case AllChars:
		var b strings.Builder
		for _, r := range runes {
			b.WriteRune(r)
			b.WriteRune(sample.Char)
		}
		return b.String()
	}
	return text
}

// MakeNot 生成带否定符号的字符
func MakeNot(negated string) string {
	trimmed := strings.TrimSpace(negated)
	if trimmed == "" {
		return " "
	}
	if notSymbol, ok := NotMap[trimmed]; ok {
		return notSymbol
	}
	// 默认：在首字符后加组合长斜线
	r, size := utf8.DecodeRuneInString(trimmed)
	return string(r) + "̸" + trimmed[size:]
}

// TryMakeSubscript 尝试将文本完整转换为 Unicode 下标，失败返回空字符串
func TryMakeSubscript(text string) string {
	return translateAll(text, Subscripts)
}

// TryMakeSuperscript 尝试将文本完整转换为 Unicode 上标，失败返回空字符串
func TryMakeSuperscript(text string) string {
	return translateAll(text, Superscripts)
}

func translateAll(text string, table map[rune]rune) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, ch := range text {
		mapped, ok := table[ch]
		if !ok {
			return ""
		}
		b.WriteRune(mapped)
	}
	return b.String()
}

// MakeSubscript 生成下标；不能完整转换时保留 TeX 写法
func MakeSubscript(text string) string {
	return makeScript(text, "_", TryMakeSubscript)
}

// MakeSuperscript 生成上标；不能完整转换时保留 TeX 写法
func MakeSuperscript(text string) string {
	return makeScript(text, "^", TryMakeSuperscript)
}

func makeScript(text, marker string, try func(string) string) string {
	if text == "" {
		return marker
	}
	if s := try(text); s != "" {
		return s
	}
	if utf8.RuneCountInString(text) == 1 {
		return marker + text
	}
	return marker + "{" + text + "}"
}

// TranslateStyles 翻译样式命令（\mathbb、\mathbf 等）
func TranslateStyles(command, text string) string {
	styleMap, ok := LatexStyles[command]
	if !ok || styleMap == nil {
		return text
	}
	var b strings.Builder
	for _, ch := range text {
		if styled, ok := styleMap[ch]; ok {
			b.WriteRune(styled)
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// MakeSqrt 生成根号的 Unicode 表示
func MakeSqrt(index, radicand string) string {
	var radix string
	switch index {
	case "", "2":
		radix = "√"
	case "3":
		radix = "∛"
	case "4":
		radix = "∜"
	default:
		if sup := TryMakeSuperscript(index); sup != "" {
			radix = sup + "√"
		} else {
			radix = "(" + index + ")√"
		}
	}
	return radix + maybeParenthesize(radicand)
}

// MakeFraction 生成分数的 Unicode 表示
//
// 1 到 2 位整数操作数走规范分数形式；其余写成 a/b，必要时加括号。
func MakeFraction(numerator, denominator string) string {
	n, d := strings.TrimSpace(numerator), strings.TrimSpace(denominator)
	if n == "" && d == "" {
		return ""
	}
	if smallInt(n) && smallInt(d) {
		f, err := fraction.Parse(n, d)
		if err != nil {
			// 分母为 0：保留原写法
			return `\frac{` + n + "}{" + d + "}"
		}
		return f.Canonical()
	}
	return maybeParenthesize(n) + "/" + maybeParenthesize(d)
}

// smallInt 可带符号的 1 到 2 位十进制整数
func smallInt(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if len(s) < 1 || len(s) > 2 {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// maybeParenthesize adds parentheses if text contains anything besides letters and digits.
func maybeParenthesize(text string) string {
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && !isCombiningChar(r) && r != '_' {
			return "(" + text + ")"
		}
	}
	return text
}

// isCombiningChar returns true if the rune is a Unicode combining character.
func isCombiningChar(r rune) bool {
	return (r >= '̀' && r <= 'ͯ') ||
		(r >= '᪰' && r <= '᫿') ||
		(r >= '᷀' && r <= '᷿') ||
		(r >= '⃐' && r <= '⃿') ||
		(r >= '︠' && r <= '︯')
}

// ──────────────────────────────────────────────
// 解析器核心
// ──────────────────────────────────────────────

// Parse 递归下降解析 LaTeX 字符串，转换为 Unicode
//
// 裸的 {...} 分组保留花括号，只转换其内部，保证再次解析时结果不变。
func (p *Parser) Parse(latex string) string {
	var b strings.Builder
	i := 0

	for i < len(latex) {
		switch c := latex[i]; {
		case c == '\\':
			command, next := p.parseCommand(latex, i)
			handled, next := p.handleCommand(command, latex, next)
			b.WriteString(handled)
			i = next

		case c == '{':
			inner, next, ok := p.group(latex, i, '{', '}')
			if !ok {
				b.WriteByte(c)
				i++
				continue
			}
			b.WriteString("{" + inner + "}")
			i = next

		case c == '_' || c == '^':
			i++
			arg := ""
			switch {
			case i < len(latex) && latex[i] == '{':
				if inner, next, ok := p.group(latex, i, '{', '}'); ok {
					arg, i = inner, next
				}
			case i < len(latex) && latex[i] == '\\':
				command, next := p.parseCommand(latex, i)
				arg, i = p.handleCommand(command, latex, next)
			case i < len(latex) && isDigit(latex[i]):
				// 纯文本写法 x^23 指 x 的 23 次方，整段数字作为指数
				j := i
				for j < len(latex) && isDigit(latex[j]) {
					j++
				}
				arg, i = latex[i:j], j
			case i < len(latex) && !unicode.IsSpace(rune(latex[i])):
				_, size := utf8.DecodeRuneInString(latex[i:])
				arg, i = latex[i:i+size], i+size
			}
			if c == '_' {
				b.WriteString(MakeSubscript(arg))
			} else {
				b.WriteString(MakeSuperscript(arg))
			}

		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

// Convert 将 LaTeX 字符串转换为 Unicode 文本。出错时返回原文。
func (p *Parser) Convert(latex string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = latex
		}
	}()
	return p.Parse(latex)
}

// ──────────────────────────────────────────────
// 命令分派（有序优先级）
// ──────────────────────────────────────────────

var textCommands = map[string]bool{
	`\text`: true, `\operatorname`: true, `\mbox`: true,
	`\textrm`: true, `\textup`: true, `\mathop`: true,
}

func (p *Parser) handleCommand(command, latex string, index int) (string, int) {
	// 1. 宏表直查（最常见路径）
	if expansion, ok := p.macros.Lookup(command); ok {
		return expansion, index
	}

	switch {
	// 2. \not 前缀否定
	case command == `\not`:
		if index >= len(latex) {
			return "̸", index
		}
		if latex[index] == '\\' {
			next, nextIdx := p.parseCommand(latex, index)
			symbol, ok := p.macros.Lookup(next)
			if !ok {
				symbol = next
			}
			return MakeNot(symbol), nextIdx
		}
		_, size := utf8.DecodeRuneInString(latex[index:])
		return MakeNot(latex[index : index+size]), index + size

	// 3. 组合字符命令（\hat, \bar, \vec 等）
	case hasKey(Combining, command):
		arg, next := p.parseArg(latex, index)
		return TranslateCombining(command, arg), next

	// 4. \frac{num}{den}
	case command == `\frac` || command == `\dfrac` || command == `\tfrac`:
		numer, idx1 := p.parseArg(latex, index)
		denom, idx2 := p.parseArg(latex, idx1)
		return MakeFraction(numer, denom), idx2

	// 5. \sqrt[n]{x}
	case command == `\sqrt`:
		option, idx1 := p.parseOptional(latex, index)
		param, idx2 := p.parseArg(latex, idx1)
		return MakeSqrt(strings.TrimSpace(option), strings.TrimSpace(param)), idx2

	// 6. 样式命令
	case hasKey(LatexStyles, command):
		text, next := p.parseArg(latex, index)
		return TranslateStyles(command, text), next

	// 7. 文本直通命令
	case textCommands[command]:
		return p.parseArg(latex, index)

	// 8. \left / \right 定界符
	case command == `\left` || command == `\right`:
		return p.parseDelimiter(latex, index)

	// 9. \binom{n}{k}
	case command == `\binom` || command == `\tbinom` || command == `\dbinom`:
		n, idx1 := p.parseArg(latex, index)
		k, idx2 := p.parseArg(latex, idx1)
		return "C(" + n + "," + k + ")", idx2

	// 10. \boxed{x}
	case command == `\boxed`:
		text, next := p.parseArg(latex, index)
		return "[" + text + "]", next

	// 11. \pmod{p}
	case command == `\pmod`:
		text, next := p.parseArg(latex, index)
		return " (mod " + text + ")", next

	// 12. \color{...} 忽略颜色参数
	case command == `\color`:
		_, next := p.parseArg(latex, index)
		return "", next

	// 13. \begin{...}\end{...} 环境
	case command == `\begin`:
		envName, idx1 := p.parseEnvName(latex, index)
		if envName == "" {
			return command, index
		}
		content, idx2 := p.parseEnvironment(latex, idx1, envName)
		return p.renderEnvironment(envName, content), idx2
	}

	// 14. 兜底：返回原始命令文本
	return command, index
}

func hasKey[V any](m map[string]V, k string) bool {
	_, ok := m[k]
	return ok
}

// ──────────────────────────────────────────────
// 底层解析方法
// ──────────────────────────────────────────────

var commandRegex = regexp.MustCompile(`^\\([a-zA-Z]+|.)`)

func (p *Parser) parseCommand(latex string, start int) (string, int) {
	// 命令后可能是多字节字符，如 \×，按整个 rune 取
	if start+1 < len(latex) && latex[start+1] >= utf8.RuneSelf {
		_, size := utf8.DecodeRuneInString(latex[start+1:])
		return latex[start : start+1+size], start + 1 + size
	}
	if match := commandRegex.FindString(latex[start:]); match != "" {
		return match, start + len(match)
	}
	return `\`, start + 1
}

// parseArg 读取一个命令参数：{...} 分组（去掉花括号）或单个 token
func (p *Parser) parseArg(latex string, start int) (string, int) {
	for start < len(latex) && latex[start] == ' ' {
		start++
	}
	if start >= len(latex) {
		return "", start
	}
	switch latex[start] {
	case '{':
		if inner, next, ok := p.group(latex, start, '{', '}'); ok {
			return inner, next
		}
		return "{", start + 1
	case '\\':
		cmd, next := p.parseCommand(latex, start)
		return p.handleCommand(cmd, latex, next)
	}
	_, size := utf8.DecodeRuneInString(latex[start:])
	return latex[start : start+size], start + size
}

// group 解析从 start 开始的配对分组，返回转换后的内部内容；不配对时 ok 为 false
func (p *Parser) group(latex string, start int, open, close byte) (string, int, bool) {
	level, pos := 1, start+1
	for pos < len(latex) {
		switch latex[pos] {
		case '\\':
			pos++ // 跳过转义字符，如 \{ \}
		case open:
			level++
		case close:
			level--
		}
		pos++
		if level == 0 {
			return p.Parse(latex[start+1 : pos-1]), pos, true
		}
	}
	return "", start, false
}

func (p *Parser) parseOptional(latex string, start int) (string, int) {
	if start >= len(latex) || latex[start] != '[' {
		return "", start
	}
	if inner, next, ok := p.group(latex, start, '[', ']'); ok {
		return inner, next
	}
	return "", start
}

// parseDelimiter \left / \right 之后的定界符
func (p *Parser) parseDelimiter(latex string, index int) (string, int) {
	for index < len(latex) && latex[index] == ' ' {
		index++
	}
	if index >= len(latex) {
		return "", index
	}
	switch ch := latex[index]; ch {
	case '\\':
		cmd, next := p.parseCommand(latex, index)
		if symbol, ok := p.macros.Lookup(cmd); ok {
			return symbol, next
		}
		return strings.TrimPrefix(cmd, `\`), next
	case '.':
		return "", index + 1 // 不可见定界符
	}
	_, size := utf8.DecodeRuneInString(latex[index:])
	return latex[index : index+size], index + size
}

// ──────────────────────────────────────────────
// 环境解析与渲染
// ──────────────────────────────────────────────

func (p *Parser) parseEnvName(latex string, index int) (string, int) {
	if index < len(latex) && latex[index] == '{' {
		if end := strings.IndexByte(latex[index:], '}'); end != -1 {
			return latex[index+1 : index+end], index + end + 1
		}
	}
	return "", index
}

func (p *Parser) parseEnvironment(latex string, index int, envName string) (string, int) {
	endMarker := `\end{` + envName + "}"
	endPos := strings.Index(latex[index:], endMarker)
	if endPos == -1 {
		return latex[index:], len(latex)
	}
	return latex[index : index+endPos], index + endPos + len(endMarker)
}

// 矩阵类环境 → (左定界符, 右定界符)
var matrixTypes = map[string][2]string{
	"matrix":  {"", ""},
	"pmatrix": {"(", ")"},
	"bmatrix": {"[", "]"},
	"vmatrix": {"|", "|"},
	"Vmatrix": {"‖", "‖"},
}

var alignTypes = map[string]bool{
	"align": true, "align*": true, "aligned": true, "gather": true, "gathered": true,
	"equation": true, "equation*": true, "split": true,
}

func (p *Parser) renderEnvironment(envName, content string) string {
	if delims, ok := matrixTypes[envName]; ok {
		return p.renderMatrix(content, delims[0], delims[1])
	}
	if envName == "cases" {
		return p.renderCases(content)
	}
	if alignTypes[envName] {
		return p.renderAlign(content)
	}
	// 未知环境：直接解析内容
	return p.Parse(content)
}

func rows(content string) []string {
	var out []string
	for _, row := range strings.Split(content, `\\`) {
		if trimmed := strings.TrimSpace(row); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (p *Parser) renderMatrix(content, left, right string) string {
	var rendered []string
	for _, row := range rows(content) {
		cells := strings.Split(row, "&")
		parsed := make([]string, 0, len(cells))
		for _, cell := range cells {
			parsed = append(parsed, p.Parse(strings.TrimSpace(cell)))
		}
		rendered = append(rendered, strings.Join(parsed, "  "))
	}
	return left + strings.Join(rendered, "; ") + right
}

func (p *Parser) renderCases(content string) string {
	var parts []string
	for _, row := range rows(content) {
		segments := strings.SplitN(row, "&", 2)
		val := p.Parse(strings.TrimSpace(segments[0]))
		if len(segments) > 1 {
			if cond := p.Parse(strings.TrimSpace(segments[1])); cond != "" {
				val += ", " + cond
			}
		}
		parts = append(parts, val)
	}
	if len(parts) == 0 {
		return ""
	}
	return "{ " + strings.Join(parts, "; ")
}

func (p *Parser) renderAlign(content string) string {
	var rendered []string
	for _, row := range rows(content) {
		rendered = append(rendered, p.Parse(strings.ReplaceAll(row, "&", "")))
	}
	return strings.Join(rendered, "\n")
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
