package quiz

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/riverfjs/mathtext-go/internal/types"
)

// bankFile 题库文件的顶层结构；也接受直接以测验列表开头的文件
type bankFile struct {
	Quizzes []Quiz `json:"quizzes" yaml:"quizzes"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(questionStructLevel, Question{})
	return v
}

// questionStructLevel 正确答案必须是选项之一
func questionStructLevel(sl validator.StructLevel) {
	q := sl.Current().Interface().(Question)
	if q.CorrectAnswer != "" && q.CorrectIndex() < 0 {
		sl.ReportError(q.CorrectAnswer, "CorrectAnswer", "correctAnswer", "oneofoptions", "")
	}
}

// Parse 解析 YAML 或 JSON 题库并校验
//
// 缺少 id 的题目按 "<测验 id>-<序号>" 补齐，序号从 1 开始。
func Parse(data []byte) ([]Quiz, error) {
	var quizzes []Quiz
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "":
		return nil, fmt.Errorf("%w: empty quiz bank", types.ErrInvalidQuiz)
	case strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "-"):
		if err := yaml.Unmarshal(data, &quizzes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quiz bank: %w", err)
		}
	default:
		var file bankFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quiz bank: %w", err)
		}
		quizzes = file.Quizzes
	}

	seen := make(map[string]bool, len(quizzes))
	for i := range quizzes {
		q := &quizzes[i]
		fillQuestionIDs(q)
		if err := Validate(q); err != nil {
			return nil, err
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("%w: duplicate quiz id %q", types.ErrInvalidQuiz, q.ID)
		}
		seen[q.ID] = true
	}
	return quizzes, nil
}

// LoadFile 读取并解析题库文件
func LoadFile(path string) ([]Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quiz bank %s: %w", path, err)
	}
	quizzes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return quizzes, nil
}

// Validate 校验一套测验
func Validate(q *Quiz) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", types.ErrInvalidQuiz, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: quiz %q: %s", types.ErrInvalidQuiz, q.ID, strings.Join(msgs, "; "))
}

func fillQuestionIDs(q *Quiz) {
	for i := range q.Questions {
		if q.Questions[i].ID == "" {
			q.Questions[i].ID = q.ID + "-" + strconv.Itoa(i+1)
		}
	}
}
