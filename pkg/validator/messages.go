package validator

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// defaultMessage 未在目录中找到标签时使用的消息
const defaultMessage = "is invalid"

// Messages 验证标签到消息模板的目录
// 模板中的 %s 会被替换为标签参数（如 min=3 中的 "3"）
type Messages map[string]string

// DefaultMessages 内置消息目录
func DefaultMessages() Messages {
	return Messages{
		"required":     "can't be blank",
		"min":          "is too short (minimum is %s characters)",
		"max":          "is too long (maximum is %s characters)",
		"len":          "is the wrong length (should be %s characters)",
		"email":        "is invalid",
		"url":          "is invalid",
		"alphanum":     "is invalid",
		"numeric":      "is not a number",
		"number":       "is not a number",
		"oneof":        "is not included in the list",
		"gt":           "must be greater than %s",
		"gte":          "must be greater than or equal to %s",
		"lt":           "must be less than %s",
		"lte":          "must be less than or equal to %s",
		"eq":           "must be equal to %s",
		"ne":           "must be other than %s",
		"confirmation": "doesn't match confirmation",
		"unique":       "has already been taken",
		"accepted":     "must be accepted",
		"excluded":     "is reserved",
	}
}

// Lookup 解析标签对应的消息
// 标签区分大小写，找不到时再按小写查找（配置文件中的 key 已被 viper 转为小写）
func (m Messages) Lookup(tag, param string) string {
	tmpl, ok := m[tag]
	if !ok || tmpl == "" {
		tmpl, ok = m[strings.ToLower(tag)]
	}
	if !ok || tmpl == "" {
		return defaultMessage
	}
	if strings.Contains(tmpl, "%s") {
		return fmt.Sprintf(tmpl, param)
	}
	return tmpl
}

// Merge 返回合并后的新目录，override 中的条目优先，key 保持原样
func (m Messages) Merge(override map[string]string) Messages {
	out := make(Messages, len(m)+len(override))
	for tag, tmpl := range m {
		out[tag] = tmpl
	}
	for tag, tmpl := range override {
		out[tag] = tmpl
	}
	return out
}

// LoadMessages 从配置文件加载消息目录（yaml/json/toml），合并到内置目录之上
// 文件格式：
//
//	messages:
//	  required: "must be filled"
func LoadMessages(path string) (Messages, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading message catalog %s: %w", path, err)
	}

	return DefaultMessages().Merge(v.GetStringMapString("messages")), nil
}
