// Package matcher 验证结果匹配引擎
//
// 用于在测试中断言模型属性的验证规则：某个值是否被接受或拒绝、
// 是否在指定场景下生效、失败时是否以严格模式（返回
// *validator.StrictValidationError）而不是记录消息的方式报告。
//
// 基本用法：
//
//	subject := validator.NewSubject(&User{}, validator.WithRules(
//	    validator.NewRule("name", "required"),
//	))
//	m := matcher.NewValidationMatcher("name").Bind(subject)
//	ok, err := m.DisallowsValueOf(nil, matcher.Message("can't be blank"))
//
// 每次探测都会创建新的 Attempt，Attempt 的结果只计算一次。
// 探测会直接修改记录上的属性值，不会恢复原值。
package matcher

import (
	"errors"
	"reflect"

	"katydid-common-matcher/pkg/validator"
)

// 匹配器相关错误
var (
	// ErrNilRecord 记录为空
	ErrNilRecord = errors.New("matcher: record is nil")
	// ErrSceneUnsupported 配置了场景，但记录不支持场景化验证
	ErrSceneUnsupported = errors.New("matcher: record does not support scene validation")
	// ErrAttributeNotSettable 记录不支持属性赋值
	ErrAttributeNotSettable = errors.New("matcher: record does not support attribute assignment")
	// ErrNoSubject 未绑定被测记录
	ErrNoSubject = errors.New("matcher: no subject bound")
)

// Record 被测记录
type Record interface {
	// Valid 在默认验证路径上执行验证
	Valid() (bool, error)
	// Errors 验证后的错误集合
	Errors() validator.ErrorContainer
}

// SceneRecord 支持场景化验证的记录
type SceneRecord interface {
	Record
	ValidOn(scene validator.ValidateScene) (bool, error)
}

// AttributeSetter 支持属性赋值的记录
type AttributeSetter interface {
	SetAttribute(attribute string, value any) error
}

// ModelNamer 提供诊断输出使用的模型名
type ModelNamer interface {
	ModelName() string
}

// modelName 获取记录的模型名
func modelName(record Record) string {
	if record == nil {
		return "<nil>"
	}
	if namer, ok := record.(ModelNamer); ok {
		return namer.ModelName()
	}
	typ := reflect.TypeOf(record)
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return typ.Name()
}

// isNilRecord 判断接口内是否为 nil 指针
func isNilRecord(record Record) bool {
	if record == nil {
		return true
	}
	val := reflect.ValueOf(record)
	return val.Kind() == reflect.Ptr && val.IsNil()
}
