// Package preview 把渲染节点排版成位图，供终端外快速查看 Unicode 渲染效果
package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/riverfjs/mathtext-go/internal/types"
)

// Theme 配色
type Theme struct {
	Background color.Color
	Text       color.Color
	Math       color.Color
	// Fallback 降级节点（原文）的颜色
	Fallback color.Color
}

// LightTheme 默认浅色主题
var LightTheme = Theme{
	Background: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	Text:       color.RGBA{0x22, 0x22, 0x22, 0xFF},
	Math:       color.RGBA{0x06, 0x4F, 0xBD, 0xFF},
	Fallback:   color.RGBA{0xD9, 0x51, 0x2C, 0xFF},
}

// Options 排版参数，零值使用默认值
type Options struct {
	Width    int
	Margin   int
	FontSize float64 // pt
	Theme    Theme
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Margin <= 0 {
		o.Margin = 24
	}
	if o.FontSize <= 0 {
		o.FontSize = 16
	}
	if o.Theme.Background == nil {
		o.Theme = LightTheme
	}
	return o
}

type faces struct {
	text font.Face
	raw  font.Face
}

func (f faces) Close() {
	_ = f.text.Close()
	_ = f.raw.Close()
}

func loadFaces(size float64) (faces, error) {
	regular, err := newFace(goregular.TTF, size)
	if err != nil {
		return faces{}, err
	}
	mono, err := newFace(gomono.TTF, size)
	if err != nil {
		_ = regular.Close()
		return faces{}, err
	}
	return faces{text: regular, raw: mono}, nil
}

func newFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 96, Hinting: font.HintingFull})
}

// ──────────────────────────────────────────────
// 排版
// ──────────────────────────────────────────────

// token 不可再分的排版单元
type token struct {
	text    string
	face    font.Face
	color   color.Color
	space   bool // 前面有空白
	newline bool // 前面强制换行
	display bool // 独占一行居中
}

type placed struct {
	token
	x     int
	width int
}

type line struct {
	words  []placed
	width  int
	center bool
}

// Draw 排版并绘制节点序列
//
// 块级公式独占一行居中，行内公式整体换行；降级节点用等宽字体显示原文。
func Draw(nodes []types.RenderNode, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()
	fs, err := loadFaces(opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer fs.Close()

	maxWidth := opts.Width - 2*opts.Margin
	lines := layout(tokenize(nodes, fs, opts.Theme), maxWidth)

	metrics := fs.text.Metrics()
	lineHeight := metrics.Height.Ceil() + 4
	ascent := metrics.Ascent.Ceil()
	height := 2*opts.Margin + len(lines)*lineHeight

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Theme.Background), image.Point{}, draw.Src)

	for i, ln := range lines {
		left := opts.Margin
		if ln.center && ln.width < maxWidth {
			left += (maxWidth - ln.width) / 2
		}
		baseline := opts.Margin + i*lineHeight + ascent
		for _, w := range ln.words {
			d := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(w.color),
				Face: w.face,
				Dot:  fixed.P(left+w.x, baseline),
			}
			d.DrawString(w.text)
		}
	}
	return img, nil
}

// EncodePNG 绘制并以 PNG 写出
func EncodePNG(w io.Writer, nodes []types.RenderNode, opts Options) error {
	img, err := Draw(nodes, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func tokenize(nodes []types.RenderNode, fs faces, th Theme) []token {
	var out []token
	pendingSpace := false
	for _, n := range nodes {
		face, col := fs.text, th.Text
		switch {
		case n.Fallback:
			face, col = fs.raw, th.Fallback
		case n.Kind.IsMath():
			col = th.Math
		}

		if n.Kind == types.KindDisplayMath && !n.Fallback {
			for _, ln := range strings.Split(strings.TrimSpace(n.Content), "\n") {
				out = append(out, token{text: strings.TrimSpace(ln), face: face, color: col, display: true})
			}
			pendingSpace = false
			continue
		}

		for li, ln := range strings.Split(n.Content, "\n") {
			newline := li > 0
			if n.Kind.IsMath() && strings.TrimSpace(ln) != "" {
				out = append(out, token{
					text:    strings.TrimSpace(ln),
					face:    face,
					color:   col,
					space:   pendingSpace || startsWithSpace(ln),
					newline: newline,
				})
				pendingSpace = endsWithSpace(ln)
				continue
			}
			words := strings.Fields(ln)
			for wi, word := range words {
				out = append(out, token{
					text:    word,
					face:    face,
					color:   col,
					space:   wi > 0 || pendingSpace || startsWithSpace(ln),
					newline: newline && wi == 0,
				})
			}
			if len(words) == 0 {
				if newline {
					out = append(out, token{face: face, color: col, newline: true})
				}
				pendingSpace = pendingSpace || ln != ""
				continue
			}
			pendingSpace = endsWithSpace(ln)
		}
	}
	return out
}

func layout(tokens []token, maxWidth int) []line {
	var lines []line
	cur := line{}
	afterDisplay := false
	flush := func() {
		lines = append(lines, cur)
		cur = line{}
	}

	for _, tk := range tokens {
		w := font.MeasureString(tk.face, tk.text).Ceil()
		if tk.display {
			if len(cur.words) > 0 {
				flush()
			}
			lines = append(lines, line{words: []placed{{token: tk, width: w}}, width: w, center: true})
			afterDisplay = true
			continue
		}
		if tk.newline && !(afterDisplay && len(cur.words) == 0) {
			flush()
		}
		afterDisplay = false
		if tk.text == "" {
			continue
		}

		gap := 0
		if tk.space && len(cur.words) > 0 {
			gap = font.MeasureString(tk.face, " ").Ceil()
		}
		if len(cur.words) > 0 && cur.width+gap+w > maxWidth {
			flush()
			gap = 0
		}
		cur.words = append(cur.words, placed{token: tk, x: cur.width + gap, width: w})
		cur.width += gap + w
	}
	if len(cur.words) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r != utf8.RuneError && unicode.IsSpace(r)
}
