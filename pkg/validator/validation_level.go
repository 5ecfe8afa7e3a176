package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ValidationFunc 自定义验证函数类型（封装第三方库）
// 用于注册自定义验证标签
type ValidationFunc func(fl FieldLevel) bool

// FieldLevel 字段级别验证上下文（封装第三方库）
// 用于在自定义验证函数中访问字段信息
type FieldLevel interface {
	// Field 返回当前字段的反射值
	Field() reflect.Value

	// Param 返回验证标签的参数
	Param() string

	// FieldName 返回字段名
	FieldName() string
}

// fieldLevelWrapper 封装第三方库的 FieldLevel
type fieldLevelWrapper struct {
	fl validator.FieldLevel
}

func (w *fieldLevelWrapper) Field() reflect.Value {
	return w.fl.Field()
}

func (w *fieldLevelWrapper) Param() string {
	return w.fl.Param()
}

func (w *fieldLevelWrapper) FieldName() string {
	return w.fl.FieldName()
}

// RegisterValidation 注册自定义验证标签
// message 非空时同时写入消息目录，支持 %s 参数占位
// 需在开始验证前调用
//
// 示例：
//
//	v := validator.New()
//	err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
//	    return slugPattern.MatchString(fl.Field().String())
//	}, "is not a valid slug")
func (v *Validator) RegisterValidation(tag string, fn ValidationFunc, message string) error {
	if tag == "" || fn == nil {
		return fmt.Errorf("validator: invalid custom validation %q", tag)
	}

	err := v.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(&fieldLevelWrapper{fl: fl})
	})
	if err != nil {
		return fmt.Errorf("validator: registering %q: %w", tag, err)
	}

	if message != "" {
		v.messages = v.messages.Merge(map[string]string{tag: message})
	}
	return nil
}
