// Package pipeline 串联切分、检测、规范化与分派四个阶段
package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/riverfjs/mathtext-go/internal/detect"
	"github.com/riverfjs/mathtext-go/internal/normalize"
	"github.com/riverfjs/mathtext-go/internal/render"
	"github.com/riverfjs/mathtext-go/internal/segment"
	"github.com/riverfjs/mathtext-go/internal/types"
	"github.com/riverfjs/mathtext-go/internal/warn"
)

// Config 管道依赖
type Config struct {
	Strategy   normalize.Strategy
	Heuristics bool
	Dispatcher *render.Dispatcher
	Memo       *warn.Memo
	Logger     logrus.FieldLogger
}

// Pipeline 一次渲染调用的完整流程。构造后只读，可被并发调用。
type Pipeline struct {
	strategy   normalize.Strategy
	heuristics bool
	dispatcher *render.Dispatcher
	memo       *warn.Memo
	log        logrus.FieldLogger
}

// New 创建管道
func New(cfg Config) *Pipeline {
	if cfg.Strategy == nil {
		cfg.Strategy = normalize.NewUnicode(nil)
	}
	return &Pipeline{
		strategy:   cfg.Strategy,
		heuristics: cfg.Heuristics,
		dispatcher: cfg.Dispatcher,
		memo:       cfg.Memo,
		log:        cfg.Logger,
	}
}

// Strategy 当前规范化策略
func (p *Pipeline) Strategy() normalize.Strategy { return p.strategy }

// WithMacros 返回叠加调用方宏的管道副本，其余依赖共享
func (p *Pipeline) WithMacros(extra map[string]string) *Pipeline {
	if len(extra) == 0 {
		return p
	}
	cp := *p
	cp.strategy = p.strategy.Extend(extra)
	return &cp
}

// Spans 切分、检测并规范化，返回带规范化内容的片段
func (p *Pipeline) Spans(text string) []types.Span {
	spans := segment.Split(text)
	if p.heuristics {
		spans = detect.SplitAll(spans)
	}
	for i := range spans {
		spans[i].Normalize(p.strategy.Normalize)
	}
	return spans
}

// Render 渲染为节点序列，从不 panic
//
// 非法 UTF-8 或任何阶段的意外失败都会退化为一个包含完整输入的文本节点。
func (p *Pipeline) Render(text string, display bool) (nodes []types.RenderNode) {
	defer func() {
		if r := recover(); r != nil {
			nodes = p.fallback(text, fmt.Errorf("panic: %v", r))
		}
	}()

	if !utf8.ValidString(text) {
		return p.fallback(text, fmt.Errorf("%w: invalid UTF-8", types.ErrMalformed))
	}
	spans := p.Spans(text)
	if p.dispatcher == nil {
		return p.fallback(text, fmt.Errorf("no render dispatcher"))
	}
	return p.dispatcher.Dispatch(spans, display)
}

func (p *Pipeline) fallback(text string, err error) []types.RenderNode {
	p.memo.Warn(p.log, "input:"+text, logrus.Fields{
		"input": truncate(text, 120),
		"error": err.Error(),
	}, "rendering fell back to plain text")
	return []types.RenderNode{{Kind: types.KindText, Content: text, Fallback: true}}
}

// PlainText 把节点拼成纯文本；display 为 true 时块级公式单独成行
func PlainText(nodes []types.RenderNode, display bool) string {
	var b strings.Builder
	for _, n := range nodes {
		if display && n.Kind == types.KindDisplayMath {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteByte('\n')
			}
			b.WriteString(n.Content)
			b.WriteByte('\n')
			continue
		}
		b.WriteString(n.Content)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// truncate 截断到不超过 n 字节，不切开多字节字符
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
