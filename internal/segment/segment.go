// Package segment 按显式定界符把输入切分为文本、行内公式、块级公式片段
package segment

import (
	"strings"

	"github.com/riverfjs/mathtext-go/internal/types"
)

// Delimiter 一对定界符
type Delimiter struct {
	Open  string
	Close string
	Kind  types.Kind
}

// Delimiters 按优先级排列：块级先于行内，
// 否则 "$" 会吞掉 "$$" 的开头
var Delimiters = []Delimiter{
	{Open: "$$", Close: "$$", Kind: types.KindDisplayMath},
	{Open: `\[`, Close: `\]`, Kind: types.KindDisplayMath},
	{Open: "$", Close: "$", Kind: types.KindInlineMath},
	{Open: `\(`, Close: `\)`, Kind: types.KindInlineMath},
}

// Split 从左到右扫描，返回无损切分的片段序列
//
// 同一位置按优先级尝试各定界符，取第一个能闭合的；都不能闭合时
// 只有该开定界符按字面处理，扫描从它之后继续。
func Split(input string) []types.Span {
	spans := make([]types.Span, 0, 4)
	pos := 0
	// from 下一次查找开定界符的位置；跳过的开定界符留在 [pos, from) 的文本里
	from := 0
	for from < len(input) {
		start := nextOpen(input, from)
		if start < 0 {
			break
		}
		delim, bodyStart, end, ok := Match(input, start)
		if !ok {
			from = start + 1
			continue
		}

		if start > pos {
			spans = append(spans, textSpan(input[pos:start], pos))
		}
		matchEnd := end + len(delim.Close)
		spans = append(spans, types.Span{
			Kind:    delim.Kind,
			Raw:     input[start:matchEnd],
			Content: input[bodyStart:end],
			Offset:  start,
		})
		pos = matchEnd
		from = matchEnd
	}
	if pos < len(input) {
		spans = append(spans, textSpan(input[pos:], pos))
	}
	return spans
}

// nextOpen 返回 pos 之后最早出现的开定界符位置，没有则为 -1
func nextOpen(input string, pos int) int {
	for i := pos; i < len(input); i++ {
		c := input[i]
		if c != '$' && c != '\\' {
			continue
		}
		for _, d := range Delimiters {
			if strings.HasPrefix(input[i:], d.Open) {
				return i
			}
		}
	}
	return -1
}

// Match 在 start 处按优先级尝试每种定界符，返回内容区间 [bodyStart, end)
func Match(input string, start int) (Delimiter, int, int, bool) {
	for _, d := range Delimiters {
		if !strings.HasPrefix(input[start:], d.Open) {
			continue
		}
		bodyStart := start + len(d.Open)
		end := strings.Index(input[bodyStart:], d.Close)
		if end >= 0 {
			return d, bodyStart, bodyStart + end, true
		}
	}
	return Delimiter{}, 0, 0, false
}

func textSpan(s string, offset int) types.Span {
	return types.Span{Kind: types.KindText, Raw: s, Content: s, Offset: offset}
}

// Join 拼接所有片段的原文
func Join(spans []types.Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Raw)
	}
	return b.String()
}
