package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riverfjs/mathtext-go/internal/pipeline"
	"github.com/riverfjs/mathtext-go/internal/quiz"
	"github.com/riverfjs/mathtext-go/internal/types"
)

// Renderer 服务依赖的渲染能力
type Renderer interface {
	quiz.Renderer
	// RenderWithMacros 在内置宏表之上叠加 macros 后渲染，不影响其他请求
	RenderWithMacros(text string, display bool, macros map[string]string) []types.RenderNode
	RenderMarkdown(source string) (string, error)
	// Strategy 当前规范化策略名称
	Strategy() string
}

// Handler HTTP 处理器
type Handler struct {
	renderer Renderer
	bank     *quiz.Bank
}

// NewHandler 创建处理器；bank 可以为 nil
func NewHandler(r Renderer, bank *quiz.Bank) *Handler {
	return &Handler{renderer: r, bank: bank}
}

// Render POST /api/render
func (h *Handler) Render(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, NewValidationError("invalid request body", err.Error()))
		return
	}

	nodes := h.renderer.RenderWithMacros(req.Text, req.DisplayMode, req.Macros)
	resp := RenderResponse{Nodes: nodes}
	if req.Plain {
		resp.Plain = pipeline.PlainText(nodes, req.DisplayMode)
	}
	c.JSON(http.StatusOK, NewSuccessResponse(resp))
}

// RenderMarkdown POST /api/render/markdown
func (h *Handler) RenderMarkdown(c *gin.Context) {
	var req MarkdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, NewValidationError("invalid request body", err.Error()))
		return
	}

	html, err := h.renderer.RenderMarkdown(req.Text)
	if err != nil {
		HandleError(c, NewInternalError("failed to render markdown", err.Error()))
		return
	}
	c.JSON(http.StatusOK, NewSuccessResponse(MarkdownResponse{HTML: html}))
}

// ListQuizzes GET /api/quizzes
func (h *Handler) ListQuizzes(c *gin.Context) {
	summaries := h.bank.Summaries()
	if summaries == nil {
		summaries = []quiz.Summary{}
	}
	c.JSON(http.StatusOK, NewSuccessResponse(summaries))
}

// RenderQuiz GET /api/quizzes/:id/rendered
func (h *Handler) RenderQuiz(c *gin.Context) {
	id := c.Param("id")
	q, ok := h.bank.Get(id)
	if !ok {
		HandleError(c, NewNotFoundError("quiz not found: "+id))
		return
	}
	c.JSON(http.StatusOK, NewSuccessResponse(quiz.RenderQuiz(h.renderer, q)))
}

// Health GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, NewSuccessResponse(HealthResponse{
		Status:   "ok",
		Strategy: h.renderer.Strategy(),
		Quizzes:  h.bank.Len(),
	}))
}
