package mdmath

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/mathtext-go/internal/segment"
	"github.com/riverfjs/mathtext-go/internal/types"
)

// ──────────────────────────────────────────────
// 行内解析：四种定界符，闭合定界符必须在同一行
// ──────────────────────────────────────────────

type inlineParser struct{}

// Trigger implements parser.InlineParser.
func (p *inlineParser) Trigger() []byte {
	return []byte{'$', '\\'}
}

// Parse implements parser.InlineParser.
func (p *inlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) == 0 {
		return nil
	}
	// 只在当前行内找闭合定界符
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	delim, _, end, ok := segment.Match(string(line), 0)
	if !ok {
		return nil
	}
	n := end + len(delim.Close)
	node := &Math{
		Raw:     append([]byte(nil), line[:n]...),
		Display: delim.Kind == types.KindDisplayMath,
	}
	block.Advance(n)
	return node
}

// ──────────────────────────────────────────────
// 块级解析：$$ 或 \[ 独占一行开启，后续行中遇到闭合定界符结束
// ──────────────────────────────────────────────

var blockDelimiters = [][2]string{
	{"$$", "$$"},
	{`\[`, `\]`},
}

type blockParser struct{}

// Trigger implements parser.BlockParser.
func (p *blockParser) Trigger() []byte {
	return []byte{'$', '\\'}
}

// Open implements parser.BlockParser.
func (p *blockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, seg := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 {
		return nil, parser.NoChildren
	}
	rest := line[pos:]
	for _, d := range blockDelimiters {
		if !bytes.HasPrefix(rest, []byte(d[0])) {
			continue
		}
		if bytes.Contains(rest[len(d[0]):], []byte(d[1])) {
			// 同一行闭合的交给行内解析
			return nil, parser.NoChildren
		}
		if !closedLater(reader, d[1]) {
			// 找不到闭合定界符时按普通文本处理
			return nil, parser.NoChildren
		}
		node := &MathBlock{Open: d[0], Close: d[1]}
		node.Lines().Append(text.NewSegment(seg.Start+pos+len(d[0]), seg.Stop))
		reader.Advance(seg.Len() - 1)
		return node, parser.NoChildren
	}
	return nil, parser.NoChildren
}

// closedLater 向后查找包含 close 的行，不移动读取位置
func closedLater(reader text.Reader, close string) bool {
	line, seg := reader.Position()
	defer reader.SetPosition(line, seg)
	for {
		reader.AdvanceLine()
		next, _ := reader.PeekLine()
		if next == nil {
			return false
		}
		if bytes.Contains(next, []byte(close)) {
			return true
		}
	}
}

// Continue implements parser.BlockParser.
func (p *blockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	n := node.(*MathBlock)
	line, seg := reader.PeekLine()
	if line == nil {
		return parser.Close
	}
	// 换行由 goldmark 在返回后自行处理，这里只前进到行尾
	newline := 0
	if len(line) > 0 && line[len(line)-1] == '\n' {
		newline = 1
	}
	if stop := bytes.Index(line, []byte(n.Close)); stop >= 0 {
		if stop > 0 {
			n.Lines().Append(text.NewSegment(seg.Start, seg.Start+stop))
		}
		n.Closed = true
		reader.Advance(seg.Len() - newline + seg.Padding)
		return parser.Close
	}
	n.Lines().Append(seg)
	reader.AdvanceAndSetPadding(seg.Len()-newline, seg.Padding)
	return parser.Continue | parser.NoChildren
}

// Close implements parser.BlockParser.
func (p *blockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

// CanInterruptParagraph implements parser.BlockParser.
func (p *blockParser) CanInterruptParagraph() bool { return true }

// CanAcceptIndentedLine implements parser.BlockParser.
func (p *blockParser) CanAcceptIndentedLine() bool { return false }
