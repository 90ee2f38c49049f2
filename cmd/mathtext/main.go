// mathtext 命令行：渲染文本、题库与 Markdown，生成预览图，或启动 HTTP 服务
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mathtext "github.com/riverfjs/mathtext-go"
	"github.com/riverfjs/mathtext-go/internal/config"
	"github.com/riverfjs/mathtext-go/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app 子命令共享的配置与日志
type app struct {
	configPath string
	strategy   string
	macrosFile string
	logLevel   string

	cfg       *config.Config
	log       *logrus.Logger
	logCloser io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "mathtext",
		Short:         "Render quiz text that mixes prose and math notation",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logCloser != nil {
				return a.logCloser.Close()
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./mathtext.yaml)")
	flags.StringVar(&a.strategy, "strategy", "", "normalization strategy: unicode or mathml")
	flags.StringVar(&a.macrosFile, "macros", "", "YAML file with extra macros")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newRenderCmd(a),
		newQuizCmd(a),
		newMarkdownCmd(a),
		newPreviewCmd(a),
		newServeCmd(a),
	)
	return cmd
}

// init 加载配置，命令行参数优先于配置文件与环境变量
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Engine.Strategy = a.strategy
	}
	if flags.Changed("macros") {
		cfg.Engine.MacrosFile = a.macrosFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.logCloser = closer
	return nil
}

// engine 按配置创建渲染引擎，extra 追加在配置之后
func (a *app) engine(extra ...mathtext.Option) (*mathtext.Engine, error) {
	opts := []mathtext.Option{
		mathtext.WithStrategy(a.cfg.Engine.Strategy),
		mathtext.WithHeuristics(a.cfg.Engine.Heuristics),
		mathtext.WithPoolSize(a.cfg.Engine.PoolSize),
		mathtext.WithWarnCapacity(a.cfg.Engine.WarnCapacity),
		mathtext.WithLogger(a.log),
	}
	if a.cfg.Engine.MacrosFile != "" {
		opts = append(opts, mathtext.WithMacrosFile(a.cfg.Engine.MacrosFile))
	}
	return mathtext.New(append(opts, extra...)...)
}

// inputText 取参数拼接的文本；没有参数时读取 stdin
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// inputFile 读取文件；path 为空或 "-" 时读取 stdin
func inputFile(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
