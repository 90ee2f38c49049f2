package quiz

import (
	"fmt"
	"sort"

	"github.com/riverfjs/mathtext-go/internal/types"
)

// Bank 只读的内存题库，构造后不再修改
type Bank struct {
	quizzes map[string]*Quiz
	order   []string
}

// NewBank 以给定顺序建立题库；id 重复时返回错误
func NewBank(quizzes []Quiz) (*Bank, error) {
	b := &Bank{quizzes: make(map[string]*Quiz, len(quizzes))}
	for i := range quizzes {
		q := quizzes[i]
		if _, dup := b.quizzes[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate quiz id %q", types.ErrInvalidQuiz, q.ID)
		}
		b.quizzes[q.ID] = &q
		b.order = append(b.order, q.ID)
	}
	return b, nil
}

// LoadBank 从文件加载题库
func LoadBank(path string) (*Bank, error) {
	quizzes, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewBank(quizzes)
}

// Get 按 id 查找测验
func (b *Bank) Get(id string) (*Quiz, bool) {
	if b == nil {
		return nil, false
	}
	q, ok := b.quizzes[id]
	return q, ok
}

// Summaries 按加载顺序返回所有测验摘要
func (b *Bank) Summaries() []Summary {
	if b == nil {
		return []Summary{}
	}
	out := make([]Summary, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.quizzes[id].Summary())
	}
	return out
}

// IDs 按字典序返回所有测验 id
func (b *Bank) IDs() []string {
	if b == nil {
		return nil
	}
	ids := append([]string(nil), b.order...)
	sort.Strings(ids)
	return ids
}

// Len 测验数量
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.order)
}
