package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HeaderRequestID 请求ID头
const HeaderRequestID = "X-Request-ID"

const ctxRequestID = "RequestID"

// 常用日志字段
const (
	FieldRequestID = "request_id"
	FieldPath      = "path"
	FieldMethod    = "method"
	FieldStatus    = "status_code"
	FieldLatency   = "latency"
	FieldClientIP  = "client_ip"
	FieldError     = "error"
)

// Logger 记录请求信息和响应时间
func Logger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := log.WithFields(logrus.Fields{
			FieldStatus:    c.Writer.Status(),
			FieldLatency:   time.Since(start).String(),
			FieldClientIP:  c.ClientIP(),
			FieldMethod:    c.Request.Method,
			FieldPath:      path,
			FieldRequestID: requestID(c),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("HTTP request")
			return
		}
		entry.Info("HTTP request")
	}
}

// SetRequestID 沿用请求头中的请求ID，没有则生成
func SetRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}
