package mathtext

import "github.com/riverfjs/mathtext-go/internal/quiz"

// 题库类型别名
type (
	Question         = quiz.Question
	Quiz             = quiz.Quiz
	QuizSummary      = quiz.Summary
	Bank             = quiz.Bank
	RenderedOption   = quiz.RenderedOption
	RenderedQuestion = quiz.RenderedQuestion
	RenderedQuiz     = quiz.RenderedQuiz
)

// LoadQuizzes 读取 YAML 或 JSON 题库文件并校验
func LoadQuizzes(path string) ([]Quiz, error) {
	return quiz.LoadFile(path)
}

// LoadBank 读取题库文件并建立只读题库
func LoadBank(path string) (*Bank, error) {
	return quiz.LoadBank(path)
}

// RenderQuestion 渲染一道题：题干行内，MathText 块级，选项行内并加 A./B. 标签
func (e *Engine) RenderQuestion(q Question) RenderedQuestion {
	return quiz.RenderQuestion(e, q)
}

// RenderQuiz 渲染整套测验
func (e *Engine) RenderQuiz(q *Quiz) RenderedQuiz {
	return quiz.RenderQuiz(e, q)
}
