package validator

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// ErrorContainer 记录的错误集合协议，至少支持按顺序遍历所有错误
type ErrorContainer interface {
	// Each 按记录顺序遍历 (属性, 消息)
	Each(fn func(attribute, message string))
}

// IndexedErrors 现代错误集合协议：按属性键直接查找
type IndexedErrors interface {
	ErrorContainer
	Index(attribute string) []string
}

// LegacyErrors 旧版错误集合协议：以属性为参数的方法查找
type LegacyErrors interface {
	ErrorContainer
	On(attribute string) []string
}

// FieldError 单个字段的验证错误
type FieldError struct {
	// Attribute 属性名
	Attribute string `json:"attribute"`
	// Tag 验证标签（如 required, email, min 等）
	Tag string `json:"tag"`
	// Param 验证参数（如 min=3 中的 "3"）
	Param string `json:"param,omitempty"`
	// Value 字段的实际值
	Value any `json:"value,omitempty"`
	// Message 错误消息（不含属性名，如 "can't be blank"）
	Message string `json:"message"`
}

// NewFieldError 创建字段错误
func NewFieldError(attribute, tag, param string) *FieldError {
	return &FieldError{
		Attribute: attribute,
		Tag:       tag,
		Param:     param,
	}
}

// WithMessage 设置错误消息
func (fe *FieldError) WithMessage(message string) *FieldError {
	fe.Message = message
	return fe
}

// WithValue 设置字段值
func (fe *FieldError) WithValue(value any) *FieldError {
	fe.Value = value
	return fe
}

// FullMessage 带属性名的完整消息，如 "Name can't be blank"
func (fe *FieldError) FullMessage() string {
	return HumanizeAttribute(fe.Attribute) + " " + fe.Message
}

// String 返回友好的错误信息
func (fe *FieldError) String() string {
	if fe.Message != "" {
		return fmt.Sprintf("field '%s': %s", fe.Attribute, fe.Message)
	}
	return fmt.Sprintf("field '%s' validation failed on tag '%s'", fe.Attribute, fe.Tag)
}

// Errors 有序的验证错误集合
// 同时实现 IndexedErrors 与 LegacyErrors 两种协议
type Errors struct {
	items []*FieldError
}

// NewErrors 创建空的错误集合
func NewErrors() *Errors {
	return &Errors{items: make([]*FieldError, 0)}
}

// Add 添加字段错误
func (e *Errors) Add(err *FieldError) {
	if err != nil {
		e.items = append(e.items, err)
	}
}

// AddMessage 通过属性和消息添加错误
func (e *Errors) AddMessage(attribute, message string) {
	e.Add(NewFieldError(attribute, "", "").WithMessage(message))
}

// Index 按属性查找错误消息，没有错误时返回空切片
func (e *Errors) Index(attribute string) []string {
	messages := make([]string, 0)
	for _, item := range e.items {
		if item.Attribute == attribute {
			messages = append(messages, item.Message)
		}
	}
	return messages
}

// On 旧版协议的属性查找
func (e *Errors) On(attribute string) []string {
	return e.Index(attribute)
}

// Each 按记录顺序遍历所有错误
func (e *Errors) Each(fn func(attribute, message string)) {
	for _, item := range e.items {
		fn(item.Attribute, item.Message)
	}
}

// Items 返回所有字段错误的副本
func (e *Errors) Items() []*FieldError {
	out := make([]*FieldError, len(e.items))
	copy(out, e.items)
	return out
}

// ByTag 按验证标签获取错误
func (e *Errors) ByTag(tag string) []*FieldError {
	var out []*FieldError
	for _, item := range e.items {
		if item.Tag == tag {
			out = append(out, item)
		}
	}
	return out
}

// FullMessages 所有错误的完整消息
func (e *Errors) FullMessages() []string {
	out := make([]string, 0, len(e.items))
	for _, item := range e.items {
		out = append(out, item.FullMessage())
	}
	return out
}

// Len 错误数量
func (e *Errors) Len() int {
	return len(e.items)
}

// HasErrors 检查是否有验证错误
func (e *Errors) HasErrors() bool {
	return len(e.items) > 0
}

// Clear 清空错误
func (e *Errors) Clear() {
	for i := range e.items {
		e.items[i] = nil
	}
	e.items = e.items[:0]
}

// Error 实现 error 接口
func (e *Errors) Error() string {
	if len(e.items) == 0 {
		return "validation passed: no errors"
	}

	parts := make([]string, 0, len(e.items))
	for _, item := range e.items {
		parts = append(parts, item.String())
	}
	return joinWith("; ", parts)
}

// MarshalJSON 以数组形式输出错误
func (e *Errors) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.items)
}

// Legacy 返回只支持旧版 On 协议的视图
func (e *Errors) Legacy() LegacyErrors {
	return legacyErrors{errs: e}
}

// legacyErrors 旧版错误集合视图，不提供 Index
type legacyErrors struct {
	errs *Errors
}

func (l legacyErrors) On(attribute string) []string {
	return l.errs.Index(attribute)
}

func (l legacyErrors) Each(fn func(attribute, message string)) {
	l.errs.Each(fn)
}

// StrictValidationError 严格验证失败信号
// 配置为严格模式的规则失败时返回，而不是记录到错误集合
type StrictValidationError struct {
	Attribute string
	Tag       string
	Message   string
}

// Error 返回完整消息，如 "Name can't be blank"
func (e *StrictValidationError) Error() string {
	return e.Message
}

// HumanizeAttribute 将属性名转换为可读形式：first_name -> First name
func HumanizeAttribute(attribute string) string {
	s := strings.TrimSuffix(attribute, "_id")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return attribute
	}

	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
