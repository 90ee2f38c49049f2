// Package server 通过 HTTP 暴露渲染与题库接口
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ShutdownTimeout 优雅关闭的最长等待时间
const ShutdownTimeout = 10 * time.Second

// Server HTTP 服务
type Server struct {
	http *http.Server
	log  logrus.FieldLogger
}

// New 创建服务；mode 为 gin 运行模式（debug、release、test），空值保持当前模式
func New(addr, mode string, h *Handler, log logrus.FieldLogger) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(h, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Handler 返回底层 http.Handler
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run 启动服务，ctx 取消后优雅关闭
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.http.Addr).Info("server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
