package matcher

import (
	"fmt"
	"reflect"
	"strconv"

	"go.uber.org/zap"

	"katydid-common-matcher/pkg/validator"
)

// probeKind 探测类型
type probeKind int

const (
	probeAllow probeKind = iota
	probeDisallow
)

// ValueProbe 单个值的允许/拒绝探测
// 每次 Matches 都会为记录赋值并创建新的 Attempt
type ValueProbe struct {
	kind      probeKind
	value     any
	attribute string
	scene     validator.ValidateScene
	strict    bool
	expected  ExpectedMessage
	logger    *zap.Logger

	attempt *Attempt
}

// AllowValue 期望值被接受
func AllowValue(value any) *ValueProbe {
	return newValueProbe(probeAllow, value)
}

// DisallowValue 期望值被拒绝
func DisallowValue(value any) *ValueProbe {
	return newValueProbe(probeDisallow, value)
}

func newValueProbe(kind probeKind, value any) *ValueProbe {
	return &ValueProbe{
		kind:   kind,
		value:  value,
		logger: zap.NewNop(),
	}
}

// For 指定属性
func (p *ValueProbe) For(attribute string) *ValueProbe {
	p.attribute = attribute
	return p
}

// On 指定验证场景
func (p *ValueProbe) On(scene validator.ValidateScene) *ValueProbe {
	p.scene = scene
	return p
}

// Strict 指定是否期望严格模式
func (p *ValueProbe) Strict(strict bool) *ValueProbe {
	p.strict = strict
	return p
}

// WithMessage 指定期望消息
func (p *ValueProbe) WithMessage(expected ExpectedMessage) *ValueProbe {
	p.expected = expected
	return p
}

// WithLogger 指定日志器
func (p *ValueProbe) WithLogger(logger *zap.Logger) *ValueProbe {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// Value 探测的值
func (p *ValueProbe) Value() any {
	return p.value
}

// Attempt 最近一次的验证尝试，未运行时为 nil
func (p *ValueProbe) Attempt() *Attempt {
	return p.attempt
}

// Matches 为记录的属性赋值后执行一次验证
//   - AllowValue：期望模式下没有满足期望消息的失败时返回 true
//   - DisallowValue：报告方式与期望一致且消息满足期望时返回 true
func (p *ValueProbe) Matches(subject Record) (bool, error) {
	if isNilRecord(subject) {
		return false, ErrNilRecord
	}
	setter, ok := subject.(AttributeSetter)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrAttributeNotSettable, modelName(subject))
	}
	if err := setter.SetAttribute(p.attribute, p.value); err != nil {
		return false, fmt.Errorf("matcher: setting %s: %w", p.attribute, err)
	}

	if ce := p.logger.Check(zap.DebugLevel, "probing value"); ce != nil {
		ce.Write(
			zap.String("attribute", p.attribute),
			zap.String("value", inspect(p.value)),
			zap.Bool("allow", p.kind == probeAllow),
		)
	}

	p.attempt = NewAttempt(subject, p.attribute,
		WithScene(p.scene),
		WithStrict(p.strict),
		WithAttemptLogger(p.logger),
	)

	failed, err := p.failureMatched()
	if err != nil {
		return false, err
	}
	if p.kind == probeAllow {
		return !failed, nil
	}
	return failed, nil
}

// failureMatched 是否出现了期望模式下满足期望消息的失败
func (p *ValueProbe) failureMatched() (bool, error) {
	matched, err := p.attempt.SignalModeMatched()
	if err != nil || !matched {
		return false, err
	}
	messages, err := p.attempt.Messages()
	if err != nil {
		return false, err
	}
	return p.expected.MatchesAny(messages), nil
}

// FailureMessage Matches 返回 false 时的说明
func (p *ValueProbe) FailureMessage() string {
	if p.kind == probeAllow {
		return p.unexpectedFailureMessage()
	}
	return p.missingFailureMessage()
}

// FailureMessageWhenNegated 取反断言失败时的说明
func (p *ValueProbe) FailureMessageWhenNegated() string {
	if p.kind == probeAllow {
		return p.missingFailureMessage()
	}
	return p.unexpectedFailureMessage()
}

// missingFailureMessage 期望失败但未出现
func (p *ValueProbe) missingFailureMessage() string {
	if p.attempt == nil {
		return ""
	}
	return p.prefix() + p.attempt.ExpectedMessagesDescription(p.expected) +
		p.attempt.ActualMessagesDescription()
}

// unexpectedFailureMessage 不期望失败但出现了
func (p *ValueProbe) unexpectedFailureMessage() string {
	if p.attempt == nil {
		return ""
	}
	return p.prefix() + p.attempt.ExpectedMessagesDescriptionWhenNegated(p.expected) +
		p.attempt.ActualMessagesDescription()
}

func (p *ValueProbe) prefix() string {
	return fmt.Sprintf("After setting %s to %s, ", strconv.Quote(p.attribute), inspect(p.value))
}

// inspect 诊断输出中的值表示，nil 指针先于 Stringer 判断
func inspect(value any) string {
	if value == nil {
		return "nil"
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return "nil"
	}

	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case fmt.Stringer:
		return v.String()
	}

	if rv.Kind() == reflect.Ptr {
		return inspect(rv.Elem().Interface())
	}
	return fmt.Sprintf("%v", value)
}
