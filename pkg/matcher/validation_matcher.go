package matcher

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"katydid-common-matcher/pkg/validator"
)

// failureIndent 子探测失败说明的缩进
const failureIndent = "  "

// ValidationMatcher 属性验证匹配器的公共部分
// 持有属性、场景、严格模式与期望消息，为每个待测值创建独立的探测，
// 只保留最后一次探测用于失败说明
type ValidationMatcher struct {
	attribute                      string
	scene                          validator.ValidateScene
	expectsStrict                  bool
	expected                       ExpectedMessage
	expectsCustomValidationMessage bool
	description                    string
	logger                         *zap.Logger

	subject   Record
	lastProbe *ValueProbe
}

// Option ValidationMatcher 选项
type Option func(*ValidationMatcher)

// WithLogger 指定日志器
func WithLogger(logger *zap.Logger) Option {
	return func(m *ValidationMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDescription 指定匹配器描述，如 `validate that "name" cannot be empty`
func WithDescription(description string) Option {
	return func(m *ValidationMatcher) {
		m.description = description
	}
}

// NewValidationMatcher 创建匹配器
func NewValidationMatcher(attribute string, opts ...Option) *ValidationMatcher {
	m := &ValidationMatcher{
		attribute: attribute,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// On 指定验证场景
func (m *ValidationMatcher) On(scene validator.ValidateScene) *ValidationMatcher {
	m.scene = scene
	return m
}

// Strict 期望严格模式
func (m *ValidationMatcher) Strict() *ValidationMatcher {
	m.expectsStrict = true
	return m
}

// WithMessage 指定期望消息，未指定的消息会被忽略
func (m *ValidationMatcher) WithMessage(expected ExpectedMessage) *ValidationMatcher {
	if !expected.IsAbsent() {
		m.expectsCustomValidationMessage = true
		m.expected = expected
	}
	return m
}

// Attribute 属性
func (m *ValidationMatcher) Attribute() string {
	return m.attribute
}

// Scene 验证场景
func (m *ValidationMatcher) Scene() validator.ValidateScene {
	return m.scene
}

// ExpectsStrict 是否期望严格模式
func (m *ValidationMatcher) ExpectsStrict() bool {
	return m.expectsStrict
}

// ExpectedMessage 期望消息
func (m *ValidationMatcher) ExpectedMessage() ExpectedMessage {
	return m.expected
}

// ExpectsCustomValidationMessage 是否指定了自定义期望消息
func (m *ValidationMatcher) ExpectsCustomValidationMessage() bool {
	return m.expectsCustomValidationMessage
}

// Bind 绑定被测记录
func (m *ValidationMatcher) Bind(subject Record) *ValidationMatcher {
	m.subject = subject
	return m
}

// Subject 被测记录
func (m *ValidationMatcher) Subject() Record {
	return m.subject
}

// AllowValueProbe 构建继承匹配器配置的允许探测
func (m *ValidationMatcher) AllowValueProbe(value any, expected ExpectedMessage) *ValueProbe {
	return m.configure(AllowValue(value), expected)
}

// DisallowValueProbe 构建继承匹配器配置的拒绝探测
func (m *ValidationMatcher) DisallowValueProbe(value any, expected ExpectedMessage) *ValueProbe {
	return m.configure(DisallowValue(value), expected)
}

// AllowsValueOf 值是否被接受
// expected 未指定时使用匹配器的期望消息
func (m *ValidationMatcher) AllowsValueOf(value any, expected ExpectedMessage) (bool, error) {
	return m.run(m.AllowValueProbe(value, expected))
}

// DisallowsValueOf 值是否被拒绝
// expected 未指定时使用匹配器的期望消息
func (m *ValidationMatcher) DisallowsValueOf(value any, expected ExpectedMessage) (bool, error) {
	return m.run(m.DisallowValueProbe(value, expected))
}

// LastProbe 最近一次运行的探测
func (m *ValidationMatcher) LastProbe() *ValueProbe {
	return m.lastProbe
}

// LastMessages 最近一次探测的实际消息
func (m *ValidationMatcher) LastMessages() ([]string, error) {
	if m.lastProbe == nil || m.lastProbe.Attempt() == nil {
		return []string{}, nil
	}
	return m.lastProbe.Attempt().Messages()
}

// Description 匹配器描述
func (m *ValidationMatcher) Description() string {
	if m.description != "" {
		return m.description
	}

	desc := "validate " + strconv.Quote(m.attribute)
	if !m.scene.IsNone() {
		desc += " on " + m.scene.String()
	}
	if m.expectsStrict {
		desc += ", raising a strict validation failure"
	}
	return desc
}

// FailureMessage 断言失败说明
func (m *ValidationMatcher) FailureMessage() string {
	message := m.modelName() + " did not properly " + m.Description() + "."
	if m.lastProbe != nil {
		message = appendIndented(message, m.lastProbe.FailureMessage())
	}
	return message
}

// FailureMessageWhenNegated 取反断言失败说明
func (m *ValidationMatcher) FailureMessageWhenNegated() string {
	message := "Expected " + m.modelName() + " not to " + m.Description() + ", but it did."
	if m.lastProbe != nil {
		message = appendIndented(message, m.lastProbe.FailureMessageWhenNegated())
	}
	return message
}

func (m *ValidationMatcher) configure(probe *ValueProbe, expected ExpectedMessage) *ValueProbe {
	if expected.IsAbsent() {
		expected = m.expected
	}
	return probe.
		For(m.attribute).
		WithMessage(expected).
		On(m.scene).
		Strict(m.expectsStrict).
		WithLogger(m.logger)
}

func (m *ValidationMatcher) run(probe *ValueProbe) (bool, error) {
	if m.subject == nil {
		return false, ErrNoSubject
	}
	m.lastProbe = probe
	return probe.Matches(m.subject)
}

func (m *ValidationMatcher) modelName() string {
	if m.subject == nil {
		return "<nil>"
	}
	return modelName(m.subject)
}

// appendIndented 换行后追加缩进的说明
func appendIndented(message, detail string) string {
	if strings.TrimSpace(detail) == "" {
		return message
	}
	lines := strings.Split(detail, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = failureIndent + line
		}
	}
	return message + "\n" + strings.Join(lines, "\n")
}
