// Package logging 按配置构造 logrus 日志记录器
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/riverfjs/mathtext-go/internal/config"
)

// 日志文件滚动参数
const (
	MaxSizeMB  = 50
	MaxBackups = 3
	MaxAgeDays = 28
)

// New 创建日志记录器
//
// cfg.File 非空时写入按大小滚动的文件，否则写入 stderr。返回的 io.Closer
// 用于在退出时关闭日志文件，写 stderr 时 Close 为空操作。
func New(cfg config.LogConfig, stderr io.Writer) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log.level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    MaxSizeMB,
			MaxBackups: MaxBackups,
			MaxAge:     MaxAgeDays,
			Compress:   true,
		}
		log.SetOutput(file)
		closer = file
	} else {
		log.SetOutput(stderr)
	}
	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
