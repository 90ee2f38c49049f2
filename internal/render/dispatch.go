package render

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/riverfjs/mathtext-go/internal/types"
	"github.com/riverfjs/mathtext-go/internal/warn"
)

// Dispatcher 为每个片段生成一个渲染节点
//
// 公式节点渲染失败时只降级该节点：输出包含原始定界符的 Raw 文本，兄弟节点不受影响。
type Dispatcher struct {
	pool *Pool
	memo *warn.Memo
	log  logrus.FieldLogger
}

// NewDispatcher 创建分派器；memo、log 可以为 nil
func NewDispatcher(pool *Pool, memo *warn.Memo, log logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{pool: pool, memo: memo, log: log}
}

// Dispatch 按顺序为 spans 生成节点，display 为 true 时所有公式按块级排版
//
// 调用前 spans 应已完成规范化；未规范化的公式片段按原内容渲染。
func (d *Dispatcher) Dispatch(spans []types.Span, display bool) []types.RenderNode {
	nodes := make([]types.RenderNode, 0, len(spans))

	var engine Engine
	var acquireErr error
	if hasMath(spans) {
		engine, acquireErr = d.pool.Acquire()
		if acquireErr == nil {
			defer d.pool.Release(engine)
		}
	}

	for i := range spans {
		span := &spans[i]
		if !span.Kind.IsMath() {
			nodes = append(nodes, types.RenderNode{Kind: types.KindText, Content: span.Raw})
			continue
		}

		err := acquireErr
		var content string
		if err == nil {
			content, err = renderOne(engine, span, display)
		}
		if err != nil {
			d.memo.Warn(d.log, "span:"+span.Raw, logrus.Fields{
				"raw":    span.Raw,
				"offset": span.Offset,
				"error":  err.Error(),
			}, "math span degraded to raw text")
			nodes = append(nodes, types.RenderNode{Kind: types.KindText, Content: span.Raw, Fallback: true})
			continue
		}
		nodes = append(nodes, types.RenderNode{Kind: span.Kind, Content: content})
	}
	return nodes
}

// renderOne 渲染单个公式片段，引擎的 panic 视为渲染失败
func renderOne(engine Engine, span *types.Span, display bool) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("%w: engine %s panic: %v", types.ErrMalformed, engine.Name(), r)
		}
	}()
	normalized, ok := span.Normalized()
	if !ok {
		normalized = span.Content
	}
	return engine.Render(Math{
		Source:     span.Content,
		Normalized: normalized,
		Display:    display || span.Kind == types.KindDisplayMath,
	})
}

func hasMath(spans []types.Span) bool {
	for _, s := range spans {
		if s.Kind.IsMath() {
			return true
		}
	}
	return false
}
