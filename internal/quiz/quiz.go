// Package quiz 题库数据与题目渲染
//
// 渲染核心只接收原始字符串；这里负责把题目、选项交给渲染器，
// 并不涉及计分、计时或持久化。
package quiz

import (
	"strconv"

	"github.com/riverfjs/mathtext-go/internal/segment"
	"github.com/riverfjs/mathtext-go/internal/types"
)

// Question 一道选择题
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Question string   `json:"question" yaml:"question" validate:"required"`
	MathText string   `json:"mathText,omitempty" yaml:"mathText,omitempty"`
	Options  []string `json:"options" yaml:"options" validate:"min=2,dive,required"`
	// CorrectAnswer 正确选项的原文，必须是 Options 之一
	CorrectAnswer string `json:"correctAnswer" yaml:"correctAnswer" validate:"required"`
}

// Quiz 一套测验
type Quiz struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	// TimeLimit 限时（分钟）
	TimeLimit int        `json:"timeLimit" yaml:"timeLimit" validate:"gt=0"`
	Questions []Question `json:"questions" yaml:"questions" validate:"min=1,dive"`
}

// Summary 列表接口使用的测验摘要
type Summary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Icon          string `json:"icon,omitempty"`
	TimeLimit     int    `json:"timeLimit"`
	QuestionCount int    `json:"questionCount"`
}

// Summary 返回测验摘要
func (q *Quiz) Summary() Summary {
	return Summary{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Icon:          q.Icon,
		TimeLimit:     q.TimeLimit,
		QuestionCount: len(q.Questions),
	}
}

// CorrectIndex 正确选项的下标，不存在时返回 -1
func (q *Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// ──────────────────────────────────────────────
// 渲染
// ──────────────────────────────────────────────

// Renderer 把一段文本渲染为节点序列
type Renderer interface {
	Render(text string, display bool) []types.RenderNode
}

// RenderedOption 渲染后的选项
type RenderedOption struct {
	Label string             `json:"label"`
	Nodes []types.RenderNode `json:"nodes"`
}

// RenderedQuestion 渲染后的题目
type RenderedQuestion struct {
	ID       string             `json:"id"`
	Question []types.RenderNode `json:"question"`
	MathText []types.RenderNode `json:"mathText,omitempty"`
	Options  []RenderedOption   `json:"options"`
}

// RenderedQuiz 渲染后的测验
type RenderedQuiz struct {
	Summary
	Questions []RenderedQuestion `json:"questions"`
}

// Label 选项标签：A.、B.、…，超过 26 个时为 27.、28.…
func Label(i int) string {
	if i < 26 {
		return string(rune('A'+i)) + "."
	}
	return strconv.Itoa(i+1) + "."
}

// RenderQuestion 题干按行内渲染，MathText 按块级渲染，每个选项按行内渲染
func RenderQuestion(r Renderer, q Question) RenderedQuestion {
	out := RenderedQuestion{
		ID:       q.ID,
		Question: r.Render(q.Question, false),
		Options:  make([]RenderedOption, 0, len(q.Options)),
	}
	if q.MathText != "" {
		out.MathText = r.Render(displayMath(q.MathText), true)
	}
	for i, opt := range q.Options {
		out.Options = append(out.Options, RenderedOption{Label: Label(i), Nodes: r.Render(opt, false)})
	}
	return out
}

// displayMath MathText 本身就是公式；不含任何定界符时整体包进 $$…$$
func displayMath(s string) string {
	for _, span := range segment.Split(s) {
		if span.Kind.IsMath() {
			return s
		}
	}
	return "$$" + s + "$$"
}

// RenderQuiz 渲染整套测验
func RenderQuiz(r Renderer, q *Quiz) RenderedQuiz {
	out := RenderedQuiz{Summary: q.Summary(), Questions: make([]RenderedQuestion, 0, len(q.Questions))}
	for _, question := range q.Questions {
		out.Questions = append(out.Questions, RenderQuestion(r, question))
	}
	return out
}
