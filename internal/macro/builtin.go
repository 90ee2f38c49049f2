package macro

// unicodeMacros LaTeX 命令 → Unicode 符号
var unicodeMacros = map[string]string{
	// 运算符
	`\times`:  "×",
	`\div`:    "÷",
	`\cdot`:   "·",
	`\pm`:     "±",
	`\mp`:     "∓",
	`\ast`:    "∗",
	`\star`:   "⋆",
	`\circ`:   "∘",
	`\bullet`: "•",
	`\oplus`:  "⊕",
	`\otimes`: "⊗",

	// 关系
	`\le`:       "≤",
	`\leq`:      "≤",
	`\ge`:       "≥",
	`\geq`:      "≥",
	`\ne`:       "≠",
	`\neq`:      "≠",
	`\approx`:   "≈",
	`\equiv`:    "≡",
	`\sim`:      "∼",
	`\simeq`:    "≃",
	`\cong`:     "≅",
	`\propto`:   "∝",
	`\ll`:       "≪",
	`\gg`:       "≫",
	`\parallel`: "∥",
	`\perp`:     "⊥",
	`\mid`:      "∣",

	// 集合与逻辑
	`\in`:         "∈",
	`\notin`:      "∉",
	`\ni`:         "∋",
	`\subset`:     "⊂",
	`\subseteq`:   "⊆",
	`\supset`:     "⊃",
	`\supseteq`:   "⊇",
	`\cup`:        "∪",
	`\cap`:        "∩",
	`\emptyset`:   "∅",
	`\varnothing`: "∅",
	`\forall`:     "∀",
	`\exists`:     "∃",
	`\neg`:        "¬",
	`\lnot`:       "¬",
	`\wedge`:      "∧",
	`\land`:       "∧",
	`\vee`:        "∨",
	`\lor`:        "∨",
	`\setminus`:   "∖",

	// 箭头
	`\to`:             "→",
	`\rightarrow`:     "→",
	`\leftarrow`:      "←",
	`\gets`:           "←",
	`\leftrightarrow`: "↔",
	`\Rightarrow`:     "⇒",
	`\Leftarrow`:      "⇐",
	`\Leftrightarrow`: "⇔",
	`\implies`:        "⟹",
	`\iff`:            "⟺",
	`\mapsto`:         "↦",
	`\uparrow`:        "↑",
	`\downarrow`:      "↓",

	// 大型运算符与杂项
	`\sum`:       "∑",
	`\prod`:      "∏",
	`\int`:       "∫",
	`\iint`:      "∬",
	`\oint`:      "∮",
	`\partial`:   "∂",
	`\nabla`:     "∇",
	`\infty`:     "∞",
	`\angle`:     "∠",
	`\triangle`:  "△",
	`\degree`:    "°",
	`\prime`:     "′",
	`\ldots`:     "…",
	`\cdots`:     "⋯",
	`\dots`:      "…",
	`\therefore`: "∴",
	`\because`:   "∵",
	`\%`:         "%",
	`\{`:         "{",
	`\}`:         "}",
	`\,`:         "\u2009",
	`\;`:         "\u2005",
	`\:`:         "\u2005",
	`\!`:         "",
	`\quad`:      "\u2003",
	`\qquad`:     "\u2003\u2003",

	// 希腊字母
	`\alpha`:      "α",
	`\beta`:       "β",
	`\gamma`:      "γ",
	`\delta`:      "δ",
	`\epsilon`:    "ε",
	`\varepsilon`: "ε",
	`\zeta`:       "ζ",
	`\eta`:        "η",
	`\theta`:      "θ",
	`\iota`:       "ι",
	`\kappa`:      "κ",
	`\lambda`:     "λ",
	`\mu`:         "μ",
	`\nu`:         "ν",
	`\xi`:         "ξ",
	`\pi`:         "π",
	`\rho`:        "ρ",
	`\sigma`:      "σ",
	`\tau`:        "τ",
	`\phi`:        "φ",
	`\varphi`:     "φ",
	`\chi`:        "χ",
	`\psi`:        "ψ",
	`\omega`:      "ω",
	`\Gamma`:      "Γ",
	`\Delta`:      "Δ",
	`\Theta`:      "Θ",
	`\Lambda`:     "Λ",
	`\Pi`:         "Π",
	`\Sigma`:      "Σ",
	`\Phi`:        "Φ",
	`\Psi`:        "Ψ",
	`\Omega`:      "Ω",

	// 函数名
	`\sin`: "sin",
	`\cos`: "cos",
	`\tan`: "tan",
	`\cot`: "cot",
	`\sec`: "sec",
	`\csc`: "csc",
	`\log`: "log",
	`\ln`:  "ln",
	`\exp`: "exp",
	`\lim`: "lim",
	`\min`: "min",
	`\max`: "max",

	// 换行
	`\\`: "\n",

	// 裸单词
	"sqrt": "√",
}

// markupMacros 结构化标记（TeX）所用的替换
var markupMacros = map[string]string{
	"sin": `\sin`,
	"cos": `\cos`,
	"tan": `\tan`,
	"cot": `\cot`,
	"sec": `\sec`,
	"csc": `\csc`,
	"log": `\log`,
	"ln":  `\ln`,
	"exp": `\exp`,

	"×": `\times`,
	"÷": `\div`,
	"·": `\cdot`,
	"±": `\pm`,
	"≤": `\le`,
	"≥": `\ge`,
	"≠": `\ne`,
	"≈": `\approx`,
	"π": `\pi`,
	"∞": `\infty`,
	"→": `\to`,
}

// Unicode Unicode 策略的内置宏表
func Unicode() *Table {
	return New(unicodeMacros)
}

// Markup 结构化标记策略的内置宏表
func Markup() *Table {
	return New(markupMacros)
}
