// Package mdmath 为 goldmark 增加公式语法，公式交给外部 Renderer 渲染
package mdmath

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/mathtext-go/internal/types"
)

// Renderer 把一段带定界符的原文渲染为节点序列
type Renderer interface {
	Render(text string, display bool) []types.RenderNode
}

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

// Extension 公式扩展
type Extension struct {
	renderer Renderer
	// Markup 为 true 时渲染结果按 MathML 原样写出
	markup bool
}

// NewExtension 创建扩展；markup 表示 Renderer 输出的公式是 MathML
func NewExtension(r Renderer, markup bool) *Extension {
	return &Extension{renderer: r, markup: markup}
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(&blockParser{}, 150),
		),
		parser.WithInlineParsers(
			util.Prioritized(&inlineParser{}, 150),
		),
	)
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&htmlRenderer{renderer: e.renderer, markup: e.markup}, 150),
	))
}

// New 返回带公式扩展的 goldmark 实例
func New(r Renderer, markup bool) goldmark.Markdown {
	opts := append([]goldmark.Option{}, StandardOptions...)
	opts = append(opts, goldmark.WithExtensions(NewExtension(r, markup)))
	return goldmark.New(opts...)
}

// Convert 把 Markdown 转为 HTML
func Convert(r Renderer, markup bool, source string) (string, error) {
	var buf bytes.Buffer
	if err := New(r, markup).Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseAST 仅解析为 AST，不渲染
func ParseAST(source string) ast.Node {
	md := New(nil, false)
	return md.Parser().Parse(text.NewReader([]byte(source)))
}
