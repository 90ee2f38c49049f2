package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 错误类型
const (
	ErrorTypeValidation = "VALIDATION_ERROR" // 输入验证错误
	ErrorTypeNotFound   = "NOT_FOUND_ERROR"  // 资源不存在错误
	ErrorTypeInternal   = "INTERNAL_ERROR"   // 内部服务器错误
)

// AppError 应用错误
type AppError struct {
	Type    string
	Message string
	Details string
	Code    int
}

// Error implements error.
func (e AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError 创建输入验证错误
func NewValidationError(message string, details ...string) AppError {
	return AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Details: strings.Join(details, "; "),
		Code:    http.StatusBadRequest,
	}
}

// NewNotFoundError 创建资源不存在错误
func NewNotFoundError(message string) AppError {
	return AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
		Code:    http.StatusNotFound,
	}
}

// NewInternalError 创建内部服务器错误
func NewInternalError(message string, details ...string) AppError {
	return AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Details: strings.Join(details, "; "),
		Code:    http.StatusInternalServerError,
	}
}

// ErrorHandler 统一错误处理：捕获 panic，并把 c.Errors 中最后一个错误写成 JSON
func ErrorHandler(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.WithFields(logrus.Fields{
					FieldError:     err,
					"stack":        string(debug.Stack()),
					FieldPath:      c.Request.URL.Path,
					FieldRequestID: requestID(c),
				}).Error("panic recovered in request")

				resp := NewErrorResponse(http.StatusInternalServerError, "an unexpected error occurred")
				if gin.Mode() == gin.DebugMode {
					resp.Message = fmt.Sprintf("panic: %v", err)
				}
				resp.RequestID = requestID(c)
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		id := requestID(c)

		var appErr AppError
		switch e := err.(type) {
		case AppError:
			appErr = e
		case *AppError:
			appErr = *e
		default:
			appErr = NewInternalError("internal server error")
			if gin.Mode() == gin.DebugMode {
				appErr.Message = err.Error()
			}
		}

		log.WithFields(logrus.Fields{
			"error_type":   appErr.Type,
			FieldRequestID: id,
			FieldPath:      c.Request.URL.Path,
		}).Error(err.Error())

		resp := NewErrorResponse(appErr.Code, appErr.Message)
		resp.RequestID = id
		c.AbortWithStatusJSON(appErr.Code, resp)
	}
}

// HandleError 在处理器中登记错误，由 ErrorHandler 统一输出
func HandleError(c *gin.Context, err error) {
	_ = c.Error(err)
}
