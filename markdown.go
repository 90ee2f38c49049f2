package mathtext

import "github.com/riverfjs/mathtext-go/internal/mdmath"

// RenderMarkdown 将 Markdown 转换为 HTML，其中的公式经本引擎渲染
//
// 行内公式输出为 <span class="math inline|display">，多行块级公式为
// <div class="math display">。mathml 策略下 MathML 原样写出，降级节点转义。
func (e *Engine) RenderMarkdown(source string) (string, error) {
	return mdmath.Convert(e, e.markup, source)
}

// RenderMarkdown 使用默认引擎将 Markdown 转换为 HTML
func RenderMarkdown(source string) (string, error) {
	return Default().RenderMarkdown(source)
}
