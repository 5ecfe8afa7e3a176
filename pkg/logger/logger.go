// Package logger 构建匹配器使用的 zap 日志器
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 输出格式
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config 日志配置
type Config struct {
	// Level 日志级别：debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format 输出格式：console 或 json
	Format string `mapstructure:"format"`
	// File 日志文件路径，为空时输出到 stderr
	File string `mapstructure:"file"`
	// MaxSizeMB 单个日志文件的最大大小
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups 保留的旧日志文件数量
	MaxBackups int `mapstructure:"max_backups"`
	// MaxAgeDays 旧日志文件的保留天数
	MaxAgeDays int `mapstructure:"max_age_days"`
	// Compress 是否压缩旧日志文件
	Compress bool `mapstructure:"compress"`
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     FormatConsole,
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}
}

// New 根据配置构建日志器
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", cfg.Level, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "", FormatConsole:
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("logger: unsupported format %q", cfg.Format)
	}

	core := zapcore.NewCore(encoder, writeSyncer(cfg), level)
	return zap.New(core, zap.AddCaller()), nil
}

// writeSyncer 文件输出使用 lumberjack 滚动
func writeSyncer(cfg Config) zapcore.WriteSyncer {
	if cfg.File == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
}
