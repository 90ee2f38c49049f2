package mathtext

import "github.com/riverfjs/mathtext-go/internal/types"

// 导出类型别名
type (
	Kind       = types.Kind
	Span       = types.Span
	RenderNode = types.RenderNode
)

// 节点类型
const (
	KindText        = types.KindText
	KindInlineMath  = types.KindInlineMath
	KindDisplayMath = types.KindDisplayMath
)

// 错误
var (
	ErrMalformed    = types.ErrMalformed
	ErrUnterminated = types.ErrUnterminated
	ErrPoolClosed   = types.ErrPoolClosed
	ErrInvalidQuiz  = types.ErrInvalidQuiz
)
