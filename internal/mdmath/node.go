package mdmath

import "github.com/yuin/goldmark/ast"

// 节点类型
var (
	KindMath      = ast.NewNodeKind("Math")
	KindMathBlock = ast.NewNodeKind("MathBlock")
)

// Math 段落内的公式，Raw 含定界符
type Math struct {
	ast.BaseInline
	Raw     []byte
	Display bool
}

// Kind implements ast.Node.
func (n *Math) Kind() ast.NodeKind { return KindMath }

// Dump implements ast.Node.
func (n *Math) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Raw": string(n.Raw)}, nil)
}

// MathBlock 独占多行的块级公式
type MathBlock struct {
	ast.BaseBlock
	Open  string
	Close string
	// Closed 是否遇到了闭合定界符
	Closed bool
}

// Kind implements ast.Node.
func (n *MathBlock) Kind() ast.NodeKind { return KindMathBlock }

// IsRaw implements ast.Node.
func (n *MathBlock) IsRaw() bool { return true }

// Dump implements ast.Node.
func (n *MathBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Open": n.Open}, nil)
}

// Raw 拼接块内各行并补回定界符；未闭合时不补闭合定界符
func (n *MathBlock) Raw(source []byte) string {
	buf := []byte(n.Open)
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf = append(buf, seg.Value(source)...)
	}
	if n.Closed {
		buf = append(buf, n.Close...)
	}
	return string(buf)
}
