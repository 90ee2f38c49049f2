package types

import "errors"

// 哨兵错误。核心渲染路径从不向调用方返回错误，这些错误只在内部包之间
// 以及 I/O 边界（配置、题库加载、HTTP、CLI）上传递。
var (
	// ErrMalformed 公式内容无法被渲染引擎解释
	ErrMalformed = errors.New("malformed math")
	// ErrUnterminated 定界符或分组没有闭合
	ErrUnterminated = errors.New("unterminated delimiter")
	// ErrPoolClosed 引擎池已关闭
	ErrPoolClosed = errors.New("engine pool closed")
	// ErrInvalidQuiz 题库数据未通过校验
	ErrInvalidQuiz = errors.New("invalid quiz")
)
