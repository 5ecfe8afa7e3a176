package validator

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrAttributeType 值无法赋给属性
var ErrAttributeType = errors.New("validator: value not assignable to attribute")

// Subject 可被验证的记录，包装一个结构体指针及其规则
//
// 示例：
//
//	user := &User{}
//	subject := NewSubject(user, WithRules(
//	    NewRule("name", "required"),
//	    NewRule("email", "required,email").On("create"),
//	))
//	ok, err := subject.ValidOn("create")
type Subject struct {
	model     any
	rules     []*Rule
	validator *Validator
	errs      *Errors
	legacy    bool
	modelName string
}

// SubjectOption Subject 选项
type SubjectOption func(*Subject)

// WithRules 追加规则
func WithRules(rules ...*Rule) SubjectOption {
	return func(s *Subject) {
		s.rules = append(s.rules, rules...)
	}
}

// WithValidator 指定规则执行器，默认使用 Default()
func WithValidator(v *Validator) SubjectOption {
	return func(s *Subject) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithLegacyErrors 使 Errors() 只暴露旧版 On 协议
func WithLegacyErrors() SubjectOption {
	return func(s *Subject) {
		s.legacy = true
	}
}

// WithModelName 指定诊断输出使用的模型名
func WithModelName(name string) SubjectOption {
	return func(s *Subject) {
		s.modelName = name
	}
}

// NewSubject 创建记录，model 必须是结构体指针
// model 实现 RuleValidator 时，其场景规则排在 WithRules 之前
func NewSubject(model any, opts ...SubjectOption) *Subject {
	s := &Subject{
		model:     model,
		validator: Default(),
		errs:      NewErrors(),
	}
	if rv, ok := model.(RuleValidator); ok {
		s.rules = rulesFromScenes(rv.RuleValidation())
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Model 返回被包装的模型
func (s *Subject) Model() any {
	return s.model
}

// ModelName 模型名，默认取结构体类型名
func (s *Subject) ModelName() string {
	if s.modelName != "" {
		return s.modelName
	}
	typ := reflect.TypeOf(s.model)
	for typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ == nil {
		return "<nil>"
	}
	return typ.Name()
}

// Valid 默认验证路径
func (s *Subject) Valid() (bool, error) {
	return s.ValidOn(SceneNone)
}

// ValidOn 在指定场景下验证，执行前清空上一次的错误
// 严格规则失败时返回 *StrictValidationError
func (s *Subject) ValidOn(scene ValidateScene) (bool, error) {
	s.errs.Clear()

	errs, err := s.validator.Validate(s.model, scene, s.rules)
	for _, item := range errs.Items() {
		s.errs.Add(item)
	}
	if err != nil {
		return false, err
	}
	return !s.errs.HasErrors(), nil
}

// Errors 最近一次验证产生的错误集合
func (s *Subject) Errors() ErrorContainer {
	if s.legacy {
		return s.errs.Legacy()
	}
	return s.errs
}

// Attribute 读取属性值
func (s *Subject) Attribute(attribute string) (any, error) {
	field, err := s.field(attribute)
	if err != nil {
		return nil, err
	}
	if !field.CanInterface() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, attribute)
	}
	return field.Interface(), nil
}

// SetAttribute 为属性赋值
//   - nil 设置为零值
//   - 可赋值或可转换的值直接设置
//   - 指针字段接收元素类型的值时自动取地址
func (s *Subject) SetAttribute(attribute string, value any) error {
	field, err := s.field(attribute)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("%w: %s is not settable", ErrAttributeType, attribute)
	}

	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	rv := reflect.ValueOf(value)
	ft := field.Type()
	switch {
	case rv.Type().AssignableTo(ft):
		field.Set(rv)
	case ft.Kind() == reflect.Ptr && rv.Type().AssignableTo(ft.Elem()):
		ptr := reflect.New(ft.Elem())
		ptr.Elem().Set(rv)
		field.Set(ptr)
	case ft.Kind() == reflect.Ptr && convertible(rv.Type(), ft.Elem()):
		ptr := reflect.New(ft.Elem())
		ptr.Elem().Set(rv.Convert(ft.Elem()))
		field.Set(ptr)
	case convertible(rv.Type(), ft):
		field.Set(rv.Convert(ft))
	default:
		return fmt.Errorf("%w: %T to %s (%s)", ErrAttributeType, value, attribute, ft)
	}
	return nil
}

// convertible 是否允许类型转换，数字到字符串的转换会得到码点字符，不允许
func convertible(from, to reflect.Type) bool {
	if to.Kind() == reflect.String && from.Kind() != reflect.String {
		return false
	}
	return from.ConvertibleTo(to)
}

func (s *Subject) field(attribute string) (reflect.Value, error) {
	val, err := structValue(s.model)
	if err != nil {
		return reflect.Value{}, err
	}
	field := findField(val, attribute)
	if !field.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnknownAttribute, attribute)
	}
	return field, nil
}
