package latex

// CombiningType 组合字符的应用方式
type CombiningType int

const (
	// FirstChar 加在第一个字符之后
	FirstChar CombiningType = iota
	// LastChar 加在末尾
	LastChar
	// AllChars 每个字符之后都加
	AllChars
)

// CombiningSample 组合字符及其应用方式
type CombiningSample struct {
	Char rune
	Type CombiningType
}

// Combining 重音类命令 → 组合字符
var Combining = map[string]CombiningSample{
	`\hat`:       {'\u0302', FirstChar},
	`\widehat`:   {'\u0302', FirstChar},
	`\bar`:       {'\u0304', FirstChar},
	`\overline`:  {'\u0305', AllChars},
	`\underline`: {'\u0332', AllChars},
	`\vec`:       {'\u20D7', FirstChar},
	`\dot`:       {'\u0307', FirstChar},
	`\ddot`:      {'\u0308', FirstChar},
	`\tilde`:     {'\u0303', FirstChar},
	`\widetilde`: {'\u0303', FirstChar},
	`\acute`:     {'\u0301', FirstChar},
	`\grave`:     {'\u0300', FirstChar},
	`\breve`:     {'\u0306', FirstChar},
	`\check`:     {'\u030C', FirstChar},
}

// NotMap \not 前缀的预组合否定符号
var NotMap = map[string]string{
	"=": "≠",
	"<": "≮",
	">": "≯",
	"≤": "≰",
	"≥": "≱",
	"∈": "∉",
	"⊂": "⊄",
	"⊃": "⊅",
	"⊆": "⊈",
	"⊇": "⊉",
	"≡": "≢",
	"∼": "≁",
	"≈": "≉",
	"∃": "∄",
	"∣": "∤",
	"∥": "∦",
}

// Superscripts 可转为上标的字符
var Superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'a': 'ᵃ', 'b': 'ᵇ', 'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ',
	'f': 'ᶠ', 'g': 'ᵍ', 'h': 'ʰ', 'i': 'ⁱ', 'j': 'ʲ',
	'k': 'ᵏ', 'l': 'ˡ', 'm': 'ᵐ', 'n': 'ⁿ', 'o': 'ᵒ',
	'p': 'ᵖ', 'r': 'ʳ', 's': 'ˢ', 't': 'ᵗ', 'u': 'ᵘ',
	'v': 'ᵛ', 'w': 'ʷ', 'x': 'ˣ', 'y': 'ʸ', 'z': 'ᶻ',
	'−': '⁻',
}

// Subscripts 可转为下标的字符
var Subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ',
	'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ',
	'−': '₋',
}

// LatexStyles 字体样式命令 → 字符映射；nil 表示原样输出
var LatexStyles = map[string]map[rune]rune{
	`\mathbb`:   doubleStruck(),
	`\mathbf`:   alphabet(0x1D400, 0x1D41A, nil),
	`\mathit`:   alphabet(0x1D434, 0x1D44E, map[rune]rune{'h': 'ℎ'}),
	`\mathcal`:  alphabet(0x1D49C, 0x1D4B6, scriptHoles),
	`\mathfrak`: alphabet(0x1D504, 0x1D51E, frakturHoles),
	`\mathrm`:   nil,
	`\mathsf`:   nil,
	`\mathtt`:   nil,
}

var scriptHoles = map[rune]rune{
	'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ', 'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ',
	'e': 'ℯ', 'g': 'ℊ', 'o': 'ℴ',
}

var frakturHoles = map[rune]rune{
	'C': 'ℭ', 'H': 'ℌ', 'I': 'ℑ', 'R': 'ℜ', 'Z': 'ℨ',
}

// alphabet 生成 A-Z、a-z 到数学字母区的映射，holes 覆盖 Unicode 中预留给旧字符的位置
func alphabet(upper, lower rune, holes map[rune]rune) map[rune]rune {
	m := make(map[rune]rune, 52)
	for i := rune(0); i < 26; i++ {
		m['A'+i] = upper + i
		m['a'+i] = lower + i
	}
	for k, v := range holes {
		m[k] = v
	}
	return m
}

func doubleStruck() map[rune]rune {
	m := alphabet(0x1D538, 0x1D552, map[rune]rune{
		'C': 'ℂ', 'H': 'ℍ', 'N': 'ℕ', 'P': 'ℙ', 'Q': 'ℚ', 'R': 'ℝ', 'Z': 'ℤ',
	})
	for i := rune(0); i < 10; i++ {
		m['0'+i] = 0x1D7D8 + i
	}
	return m
}
