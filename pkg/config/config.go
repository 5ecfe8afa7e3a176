// Package config 加载匹配器运行配置
//
// 优先级（从高到低）：
//  1. 环境变量（KATYDID_MATCHER_LOG_LEVEL 等）
//  2. 配置文件
//  3. 内置默认值
//
// 在测试套件中构建匹配器：
//
//	cfg, err := config.Load("testdata/matcher.yaml")
//	if err != nil {
//	    t.Fatal(err)
//	}
//	log, err := cfg.NewLogger()
//	if err != nil {
//	    t.Fatal(err)
//	}
//	subject := validator.NewSubject(&User{},
//	    validator.WithValidator(cfg.NewValidator()),
//	    validator.WithRules(validator.NewRule("name", "required")),
//	)
//	m := matcher.NewValidationMatcher("name", matcher.WithLogger(log)).Bind(subject)
//	ok, err := m.DisallowsValueOf(nil, matcher.Message("can't be blank"))
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"katydid-common-matcher/pkg/logger"
	"katydid-common-matcher/pkg/validator"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "KATYDID_MATCHER"

// Config 匹配器运行配置
type Config struct {
	// Log 日志配置
	Log logger.Config `mapstructure:"log"`
	// Messages 覆盖内置消息目录的条目，key 为验证标签
	Messages map[string]string `mapstructure:"messages"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Log:      logger.DefaultConfig(),
		Messages: map[string]string{},
	}
}

// Load 加载配置，path 为空时只使用默认值与环境变量
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	def := logger.DefaultConfig()
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.format", def.Format)
	v.SetDefault("log.file", def.File)
	v.SetDefault("log.max_size_mb", def.MaxSizeMB)
	v.SetDefault("log.max_backups", def.MaxBackups)
	v.SetDefault("log.max_age_days", def.MaxAgeDays)
	v.SetDefault("log.compress", def.Compress)
}

// NewLogger 按日志配置构建日志器
func (c *Config) NewLogger() (*zap.Logger, error) {
	return logger.New(c.Log)
}

// MessageCatalog 内置消息目录合并配置中的覆盖条目
func (c *Config) MessageCatalog() validator.Messages {
	return validator.DefaultMessages().Merge(c.Messages)
}

// NewValidator 使用配置的消息目录创建规则执行器
func (c *Config) NewValidator() *validator.Validator {
	return validator.New(validator.WithMessages(c.MessageCatalog()))
}
