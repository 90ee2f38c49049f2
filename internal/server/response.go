package server

import "github.com/riverfjs/mathtext-go/internal/types"

// Response 通用响应结构
type Response struct {
	Code      int         `json:"code"`                 // 响应状态码，0表示成功
	Message   string      `json:"message"`              // 响应消息
	Data      interface{} `json:"data,omitempty"`       // 响应数据，可能为空
	RequestID string      `json:"request_id,omitempty"` // 请求ID
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Code:    0,
		Message: "success",
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, message string) *Response {
	return &Response{
		Code:    code,
		Message: message,
	}
}

// RenderRequest POST /api/render 请求体
type RenderRequest struct {
	Text        string            `json:"text" binding:"required"`
	DisplayMode bool              `json:"displayMode"`
	Macros      map[string]string `json:"macros" binding:"omitempty,dive,keys,min=1,endkeys"`
	// Plain 为 true 时额外返回拼接后的纯文本
	Plain bool `json:"plain"`
}

// RenderResponse 渲染结果
type RenderResponse struct {
	Nodes []types.RenderNode `json:"nodes"`
	Plain string             `json:"plain,omitempty"`
}

// MarkdownRequest POST /api/render/markdown 请求体
type MarkdownRequest struct {
	Text string `json:"text" binding:"required"`
}

// MarkdownResponse Markdown 渲染结果
type MarkdownResponse struct {
	HTML string `json:"html"`
}

// HealthResponse 健康检查结果
type HealthResponse struct {
	Status   string `json:"status"`
	Strategy string `json:"strategy"`
	Quizzes  int    `json:"quizzes"`
}
