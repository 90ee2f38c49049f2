// Package config 应用配置：配置文件、.env 与 MATHTEXT_ 前缀环境变量
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/riverfjs/mathtext-go/internal/normalize"
)

// EnvPrefix 环境变量前缀，如 MATHTEXT_ENGINE_STRATEGY
const EnvPrefix = "MATHTEXT"

// Config 应用程序配置结构体
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Quiz   QuizConfig   `mapstructure:"quiz"`
}

// EngineConfig 渲染引擎配置
type EngineConfig struct {
	Strategy     string `mapstructure:"strategy"`      // 规范化策略：unicode 或 mathml
	Heuristics   bool   `mapstructure:"heuristics"`    // 是否识别无定界符公式
	PoolSize     int    `mapstructure:"pool_size"`     // 渲染引擎池大小
	MacrosFile   string `mapstructure:"macros_file"`   // 额外宏定义文件（YAML）
	WarnCapacity int    `mapstructure:"warn_capacity"` // 告警去重集合容量
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host string `mapstructure:"host"` // 服务器主机
	Port int    `mapstructure:"port"` // 服务器端口
	Mode string `mapstructure:"mode"` // gin 模式：debug、release、test
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别
	Format string `mapstructure:"format"` // text 或 json
	File   string `mapstructure:"file"`   // 日志文件路径，为空时输出到标准错误
}

// QuizConfig 题库配置
type QuizConfig struct {
	Bank string `mapstructure:"bank"` // 题库文件路径
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load 从文件和环境变量加载配置
//
// configPath 为空时在当前目录查找 mathtext.yaml，找不到则只使用默认值。
// 当前目录下的 .env 文件会在读取环境变量之前加载，已存在的环境变量不会被覆盖。
// Load 不做校验，调用方叠加命令行参数后再调用 Validate。
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("mathtext")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 支持环境变量覆盖
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Default 返回只含默认值的配置
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	if _, err := normalize.New(c.Engine.Strategy, nil); err != nil {
		return fmt.Errorf("engine.strategy: %w", err)
	}
	if c.Engine.PoolSize < 1 {
		return fmt.Errorf("engine.pool_size must be positive, got %d", c.Engine.PoolSize)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// setDefaults 设置配置的默认值
func setDefaults(v *viper.Viper) {
	// 引擎默认配置
	v.SetDefault("engine.strategy", normalize.StrategyUnicode)
	v.SetDefault("engine.heuristics", true)
	v.SetDefault("engine.pool_size", 4)
	v.SetDefault("engine.macros_file", "")
	v.SetDefault("engine.warn_capacity", 1024)

	// 服务器默认配置
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	// 日志默认配置
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	// 题库默认配置
	v.SetDefault("quiz.bank", "data/quizzes.yaml")
}
