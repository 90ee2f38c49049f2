package mathtext

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger 全局日志记录器，未通过 WithLogger 指定时引擎使用它
var Logger logrus.FieldLogger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger 设置自定义日志记录器；只影响之后创建的引擎
func SetLogger(logger logrus.FieldLogger) {
	if logger == nil {
		logger = newDefaultLogger()
	}
	Logger = logger
}
