package types

import "fmt"

// Kind 表示片段（Span）与渲染节点的分类
type Kind int

const (
	// KindText 普通文本
	KindText Kind = iota
	// KindInlineMath 行内公式（$...$、\(...\) 或启发式识别的公式）
	KindInlineMath
	// KindDisplayMath 块级公式（$$...$$ 或 \[...\]）
	KindDisplayMath
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInlineMath:
		return "inline_math"
	case KindDisplayMath:
		return "display_math"
	default:
		return "unknown"
	}
}

// IsMath 是否为公式类片段
func (k Kind) IsMath() bool {
	return k == KindInlineMath || k == KindDisplayMath
}

// MarshalText 以字符串形式序列化，供 JSON 输出
func (k Kind) MarshalText() ([]byte, error) {
	if k < KindText || k > KindDisplayMath {
		return nil, fmt.Errorf("invalid kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText 解析 MarshalText 的输出
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "text":
		*k = KindText
	case "inline_math":
		*k = KindInlineMath
	case "display_math":
		*k = KindDisplayMath
	default:
		return fmt.Errorf("invalid kind %q", string(b))
	}
	return nil
}

// Span 输入串中一段已分类的连续子串
//
// Raw 为原文（含定界符），所有 Span 的 Raw 依序拼接即为原始输入。
// Content 为去掉定界符后的内容；文本片段与启发式片段中 Content == Raw。
type Span struct {
	Kind    Kind
	Raw     string
	Content string
	Offset  int // Raw 在原始输入中的字节偏移

	// Detected 表示该公式片段由启发式检测器识别，而非显式定界符
	Detected bool

	normalized    string
	hasNormalized bool
}

// Normalized 返回规范化后的内容；尚未计算时 ok 为 false
func (s *Span) Normalized() (string, bool) {
	return s.normalized, s.hasNormalized
}

// Normalize 计算并缓存规范化内容，每个 Span 至多计算一次
func (s *Span) Normalize(fn func(string) string) string {
	if s.hasNormalized {
		return s.normalized
	}
	if s.Kind == KindText {
		s.normalized = s.Raw
	} else {
		s.normalized = fn(s.Content)
	}
	s.hasNormalized = true
	return s.normalized
}

// RenderNode 交给展示层的输出单元，一个 Span 对应一个节点
type RenderNode struct {
	Kind    Kind   `json:"kind"`
	Content string `json:"content"`
	// Fallback 表示该节点渲染失败，已降级为原文
	Fallback bool `json:"fallback,omitempty"`
}

// RenderConfig 渲染配置
type RenderConfig struct {
	// Strategy 规范化策略名称："unicode" 或 "mathml"
	Strategy string
	// Heuristics 是否在文本片段中启用无定界符公式检测
	Heuristics bool
	// PoolSize 结构化渲染引擎池大小
	PoolSize int
	// WarnCapacity 告警去重集合容量
	WarnCapacity int
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Strategy:     "unicode",
		Heuristics:   true,
		PoolSize:     4,
		WarnCapacity: 1024,
	}
}
