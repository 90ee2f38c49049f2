package mdmath

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type htmlRenderer struct {
	renderer Renderer
	markup   bool
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *htmlRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindMath, r.renderMath)
	reg.Register(KindMathBlock, r.renderMathBlock)
}

func (r *htmlRenderer) renderMath(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Math)
	if n.Display {
		_, _ = w.WriteString(`<span class="math display">`)
	} else {
		_, _ = w.WriteString(`<span class="math inline">`)
	}
	r.writeNodes(w, string(n.Raw), n.Display)
	_, _ = w.WriteString("</span>")
	return ast.WalkSkipChildren, nil
}

func (r *htmlRenderer) renderMathBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*MathBlock)
	_, _ = w.WriteString(`<div class="math display">`)
	r.writeNodes(w, n.Raw(source), true)
	_, _ = w.WriteString("</div>\n")
	return ast.WalkSkipChildren, nil
}

// writeNodes 写出渲染结果；MathML 原样写出，其余内容转义
func (r *htmlRenderer) writeNodes(w util.BufWriter, raw string, display bool) {
	if r.renderer == nil {
		_, _ = w.Write(util.EscapeHTML([]byte(raw)))
		return
	}
	for _, node := range r.renderer.Render(raw, display) {
		if r.markup && node.Kind.IsMath() && !node.Fallback {
			_, _ = w.WriteString(node.Content)
			continue
		}
		_, _ = w.Write(util.EscapeHTML([]byte(node.Content)))
	}
}
