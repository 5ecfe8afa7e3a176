package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// 验证器相关错误
var (
	// ErrNotStruct 模型不是结构体或结构体指针
	ErrNotStruct = errors.New("validator: model must be a struct or pointer to struct")
	// ErrUnknownAttribute 模型上不存在该属性
	ErrUnknownAttribute = errors.New("validator: unknown attribute")
)

// Validator 基于 go-playground/validator 的场景化规则执行器
//
// 特性：
//   - 规则按场景过滤，未声明场景的规则总是执行
//   - 严格规则失败时立即返回 *StrictValidationError
//   - 字段按结构体字段名查找，找不到时按 json tag 查找
type Validator struct {
	// validate 底层验证器实例
	validate *validator.Validate
	// messages 消息目录
	messages Messages
}

// Option 验证器选项
type Option func(*Validator)

// WithMessages 设置消息目录
func WithMessages(messages Messages) Option {
	return func(v *Validator) {
		if messages != nil {
			v.messages = messages
		}
	}
}

var (
	// defaultValidator 默认验证器实例，全局单例
	defaultValidator *Validator
	// once 确保默认验证器只初始化一次
	once sync.Once
)

// Default 获取默认验证器实例
func Default() *Validator {
	once.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// New 创建新的验证器实例
func New(opts ...Option) *Validator {
	v := validator.New()

	// 使用 json tag 作为字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	val := &Validator{
		validate: v,
		messages: DefaultMessages(),
	}
	for _, opt := range opts {
		opt(val)
	}
	return val
}

// Messages 当前消息目录
func (v *Validator) Messages() Messages {
	return v.messages
}

// Validate 在指定场景下对模型执行规则，之后执行 CustomValidator
//
// 返回：
//   - 错误集合（非严格规则的失败都记录在这里）
//   - *StrictValidationError：严格规则失败，此时验证立即停止
//   - 其它错误：规则配置有误（未知字段、非法标签等）
func (v *Validator) Validate(model any, scene ValidateScene, rules []*Rule) (*Errors, error) {
	errs := NewErrors()

	val, err := structValue(model)
	if err != nil {
		return errs, err
	}

	for _, rule := range rules {
		if rule == nil || rule.Tag == "" || !rule.AppliesTo(scene) {
			continue
		}

		field := findField(val, rule.Field)
		if !field.IsValid() {
			return errs, fmt.Errorf("%w: %s", ErrUnknownAttribute, rule.Field)
		}
		if !field.CanInterface() {
			continue
		}

		if err := v.checkRule(field.Interface(), rule, errs); err != nil {
			return errs, err
		}
	}

	if custom, ok := model.(CustomValidator); ok {
		custom.CustomValidation(scene, func(attribute, tag, param string) {
			errs.Add(NewFieldError(attribute, tag, param).WithMessage(v.messages.Lookup(tag, param)))
		})
	}

	return errs, nil
}

// checkRule 执行单条规则
func (v *Validator) checkRule(value any, rule *Rule, errs *Errors) (err error) {
	defer func() {
		// go-playground 对非法标签会 panic，这里转换为错误返回
		if r := recover(); r != nil {
			err = fmt.Errorf("validator: rule %q on %s: %v", rule.Tag, rule.Field, r)
		}
	}()

	verr := v.validate.Var(value, rule.Tag)
	if verr == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(verr, &fieldErrors) {
		return fmt.Errorf("validator: rule %q on %s: %w", rule.Tag, rule.Field, verr)
	}

	for _, fe := range fieldErrors {
		message := rule.Message
		if message == "" {
			message = v.messages.Lookup(fe.Tag(), fe.Param())
		}
		item := NewFieldError(rule.Field, fe.Tag(), fe.Param()).
			WithMessage(message).
			WithValue(fe.Value())

		if rule.StrictMode {
			return &StrictValidationError{
				Attribute: rule.Field,
				Tag:       fe.Tag(),
				Message:   item.FullMessage(),
			}
		}
		errs.Add(item)
	}
	return nil
}

// structValue 获取模型的结构体反射值
func structValue(model any) (reflect.Value, error) {
	val := reflect.ValueOf(model)
	if !val.IsValid() {
		return reflect.Value{}, ErrNotStruct
	}
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return reflect.Value{}, ErrNotStruct
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, ErrNotStruct
	}
	return val, nil
}

// findField 按结构体字段名查找，找不到时按 json tag 查找
func findField(val reflect.Value, name string) reflect.Value {
	if field := val.FieldByName(name); field.IsValid() {
		return field
	}
	return findFieldByJSONTag(val, name)
}

// findFieldByJSONTag 通过 JSON tag 查找字段
func findFieldByJSONTag(val reflect.Value, jsonTag string) reflect.Value {
	typ := val.Type()
	numField := typ.NumField()
	for i := 0; i < numField; i++ {
		tag := strings.SplitN(typ.Field(i).Tag.Get("json"), ",", 2)[0]
		if tag == jsonTag {
			return val.Field(i)
		}
	}
	return reflect.Value{}
}
