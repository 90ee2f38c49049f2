// Package normalize 公式内容规范化
//
// 每个公式片段依次经过五个步骤，每一步都是幂等的：
//
//  1. 显式分数命令 \frac{a}{b}（1 到 2 位整数，可带符号）
//  2. 去掉内容中残留的定界符
//  3. 裸分数 a/b
//  4. 空格包围的 x 作乘号
//  5. 宏表替换
//
// 五个步骤的顺序固定，输出形式由 Strategy 决定：Unicode 直接产出字形，
// Markup 产出交给 MathML 引擎的 TeX 标记。
package normalize

import (
	"fmt"
	"strings"

	"github.com/riverfjs/mathtext-go/internal/macro"
)

// 策略名称
const (
	StrategyUnicode = "unicode"
	StrategyMathML  = "mathml"
)

// Strategy 可替换的规范化策略
type Strategy interface {
	// Name 策略名称
	Name() string
	// Normalize 规范化一段公式内容（不含定界符）
	Normalize(content string) string
	// Macros 策略使用的宏表（内置表叠加调用方条目）
	Macros() *macro.Table
	// Extend 返回叠加 extra 宏后的新策略，原策略不变
	Extend(extra map[string]string) Strategy
}

// New 按名称创建策略，extra 叠加在内置宏表之上
func New(name string, extra map[string]string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyUnicode:
		return NewUnicode(extra), nil
	case StrategyMathML, "markup", "tex":
		return NewMarkup(extra), nil
	}
	return nil, fmt.Errorf("unknown normalization strategy %q", name)
}

// Names 可用策略名称
func Names() []string {
	return []string{StrategyUnicode, StrategyMathML}
}
