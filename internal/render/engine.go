// Package render 把规范化后的片段分派为渲染节点
package render

import (
	"fmt"

	"github.com/wyatt915/treeblood"

	"github.com/riverfjs/mathtext-go/internal/latex"
	"github.com/riverfjs/mathtext-go/internal/types"
)

// Math 交给引擎的一段公式
type Math struct {
	// Source 去掉定界符后的原始内容
	Source string
	// Normalized 规范化后的内容
	Normalized string
	// Display 是否按块级排版
	Display bool
}

// Engine 结构化公式渲染引擎
type Engine interface {
	Name() string
	Render(m Math) (string, error)
}

// ──────────────────────────────────────────────
// Unicode 引擎
// ──────────────────────────────────────────────

// UnicodeEngine 校验源码结构后直接返回规范化结果
type UnicodeEngine struct{}

// NewUnicodeEngine 创建 Unicode 引擎
func NewUnicodeEngine() Engine { return UnicodeEngine{} }

// Name implements Engine.
func (UnicodeEngine) Name() string { return "unicode" }

// Render implements Engine.
func (UnicodeEngine) Render(m Math) (string, error) {
	if err := latex.Validate(m.Source); err != nil {
		return "", err
	}
	return m.Normalized, nil
}

// ──────────────────────────────────────────────
// MathML 引擎
// ──────────────────────────────────────────────

// MathMLEngine 使用 treeblood 把 TeX 转换为 MathML。
// treeblood 文档对象带有宏与编号状态，不能在并发调用间共享，由 Pool 管理。
type MathMLEngine struct {
	doc *treeblood.Pitziil
}

// NewMathMLEngine 创建 MathML 引擎，macros 预编译进 treeblood 文档
func NewMathMLEngine(macros map[string]string) Engine {
	return &MathMLEngine{doc: treeblood.NewDocument(macros, false)}
}

// Name implements Engine.
func (e *MathMLEngine) Name() string { return "mathml" }

// Render implements Engine.
func (e *MathMLEngine) Render(m Math) (mml string, err error) {
	if err := latex.Validate(m.Source); err != nil {
		return "", err
	}
	if err := latex.Validate(m.Normalized); err != nil {
		return "", err
	}
	defer func() {
		if r := recover(); r != nil {
			mml, err = "", fmt.Errorf("%w: treeblood panic: %v", types.ErrMalformed, r)
		}
	}()
	if m.Display {
		mml, err = e.doc.DisplayStyle(m.Normalized)
	} else {
		mml, err = e.doc.TextStyle(m.Normalized)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrMalformed, err)
	}
	return mml, nil
}
