package mathtext

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/riverfjs/mathtext-go/internal/macro"
	"github.com/riverfjs/mathtext-go/internal/normalize"
	"github.com/riverfjs/mathtext-go/internal/pipeline"
	"github.com/riverfjs/mathtext-go/internal/render"
	"github.com/riverfjs/mathtext-go/internal/warn"
)

// Engine 可配置的渲染引擎，构造后只读，可被并发调用
//
// 同一个 Engine 的 WithMacros 副本共享引擎池、告警去重集合与日志。
type Engine struct {
	pipeline *pipeline.Pipeline
	// plain 纯文本输出始终使用 unicode 策略
	plain  *pipeline.Pipeline
	pools  []*render.Pool
	memo   *warn.Memo
	log    logrus.FieldLogger
	markup bool
	once   *sync.Once
}

// New 按选项创建引擎；策略名未知或宏文件无法读取时返回错误
func New(opts ...Option) (*Engine, error) {
	o := applyOptions(opts...)

	extra := make(map[string]string)
	if o.MacrosFile != "" {
		fromFile, err := macro.LoadFile(o.MacrosFile)
		if err != nil {
			return nil, fmt.Errorf("load macros: %w", err)
		}
		for k, v := range fromFile {
			extra[k] = v
		}
	}
	for k, v := range o.Macros {
		extra[k] = v
	}

	strategy, err := normalize.New(o.Strategy, extra)
	if err != nil {
		return nil, err
	}

	log := o.Logger
	if log == nil {
		log = Logger
	}
	e := &Engine{
		memo:   warn.NewMemo(o.WarnTTL, o.WarnCapacity),
		log:    log,
		markup: strategy.Name() == normalize.StrategyMathML,
		once:   &sync.Once{},
	}
	e.pipeline = e.newPipeline(strategy, o)
	if e.markup {
		e.plain = e.newPipeline(normalize.NewUnicode(extra), o)
	} else {
		e.plain = e.pipeline
	}
	return e, nil
}

func (e *Engine) newPipeline(strategy normalize.Strategy, o *Options) *pipeline.Pipeline {
	factory := render.NewUnicodeEngine
	if strategy.Name() == normalize.StrategyMathML {
		factory = func() render.Engine { return render.NewMathMLEngine(nil) }
	}
	pool := render.NewPool(o.PoolSize, factory)
	e.pools = append(e.pools, pool)
	return pipeline.New(pipeline.Config{
		Strategy:   strategy,
		Heuristics: o.Heuristics,
		Dispatcher: render.NewDispatcher(pool, e.memo, e.log),
		Memo:       e.memo,
		Logger:     e.log,
	})
}

// Strategy 当前规范化策略名称
func (e *Engine) Strategy() string {
	return e.pipeline.Strategy().Name()
}

// Markup 渲染结果中的公式是否为 MathML
func (e *Engine) Markup() bool {
	return e.markup
}

// Spans 返回切分、检测并规范化后的片段，便于调试
func (e *Engine) Spans(text string) []Span {
	return e.pipeline.Spans(text)
}

// Render 渲染为节点序列，从不 panic
func (e *Engine) Render(text string, displayMode bool) []RenderNode {
	return e.pipeline.Render(text, displayMode)
}

// RenderWithMacros 在本次调用中叠加 extraMacros 后渲染
func (e *Engine) RenderWithMacros(text string, displayMode bool, extraMacros map[string]string) []RenderNode {
	return e.WithMacros(extraMacros).Render(text, displayMode)
}

// RenderPlainText 按 unicode 策略渲染并拼接为纯文本
func (e *Engine) RenderPlainText(text string, displayMode bool) string {
	return pipeline.PlainText(e.plain.Render(text, displayMode), displayMode)
}

// WithMacros 返回叠加 extra 的引擎副本；extra 为空时返回自身
func (e *Engine) WithMacros(extra map[string]string) *Engine {
	if len(extra) == 0 {
		return e
	}
	cp := *e
	cp.pipeline = e.pipeline.WithMacros(extra)
	cp.plain = e.plain.WithMacros(extra)
	return &cp
}

// Close 关闭引擎池，之后的渲染中公式节点全部降级为原文
func (e *Engine) Close() {
	e.once.Do(func() {
		for _, p := range e.pools {
			p.Close()
		}
	})
}
