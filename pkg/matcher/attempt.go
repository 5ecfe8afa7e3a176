package matcher

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"katydid-common-matcher/pkg/validator"
)

// Attempt 一次验证尝试：对 (记录, 属性, 场景, 严格模式) 执行一次验证并记录结果
//
// 结果在第一次成功完成 Evaluate 时计算并缓存，此后不再变化。
// 修改记录后再次调用 Evaluate 不会重新验证，需要创建新的 Attempt。
// 非严格失败的错误会原样返回且不会被缓存。
type Attempt struct {
	record    Record
	attribute string
	scene     validator.ValidateScene
	strict    bool
	logger    *zap.Logger

	mu      sync.Mutex
	outcome *Outcome
}

// AttemptOption Attempt 选项
type AttemptOption func(*Attempt)

// WithScene 指定验证场景
func WithScene(scene validator.ValidateScene) AttemptOption {
	return func(a *Attempt) {
		a.scene = scene
	}
}

// WithStrict 指定是否期望严格模式
func WithStrict(strict bool) AttemptOption {
	return func(a *Attempt) {
		a.strict = strict
	}
}

// WithAttemptLogger 指定日志器
func WithAttemptLogger(logger *zap.Logger) AttemptOption {
	return func(a *Attempt) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAttempt 创建验证尝试，记录上应已赋好待测值
func NewAttempt(record Record, attribute string, opts ...AttemptOption) *Attempt {
	a := &Attempt{
		record:    record,
		attribute: attribute,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Attribute 被验证的属性
func (a *Attempt) Attribute() string {
	return a.attribute
}

// Scene 验证场景
func (a *Attempt) Scene() validator.ValidateScene {
	return a.scene
}

// ExpectsStrict 是否期望严格模式
func (a *Attempt) ExpectsStrict() bool {
	return a.strict
}

// State 当前状态
func (a *Attempt) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case a.outcome == nil:
		return StateUnevaluated
	case a.outcome.StrictlyFailed():
		return StateStrictlyFailed
	default:
		return StateSucceeded
	}
}

// Evaluate 执行验证（仅第一次成功时真正执行），返回缓存的结果
func (a *Attempt) Evaluate() (*Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.outcome != nil {
		return a.outcome, nil
	}

	outcome, err := a.run()
	if err != nil {
		a.logger.Debug("validation attempt failed",
			zap.String("attribute", a.attribute),
			zap.Stringer("scene", a.scene),
			zap.Error(err),
		)
		return nil, err
	}

	a.outcome = outcome
	a.logger.Debug("validation attempt evaluated",
		zap.String("attribute", a.attribute),
		zap.Stringer("scene", a.scene),
		zap.Bool("expects_strict", a.strict),
		zap.Stringer("outcome", outcome.Kind()),
		zap.Int("attribute_messages", len(outcome.attributeMessages)),
	)
	return outcome, nil
}

// run 调用记录的验证入口并归一化结果
func (a *Attempt) run() (*Outcome, error) {
	if isNilRecord(a.record) {
		return nil, ErrNilRecord
	}

	var err error
	if a.scene.IsNone() {
		_, err = a.record.Valid()
	} else {
		sceneRecord, ok := a.record.(SceneRecord)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSceneUnsupported, modelName(a.record))
		}
		_, err = sceneRecord.ValidOn(a.scene)
	}

	if err != nil {
		var strictErr *validator.StrictValidationError
		if errors.As(err, &strictErr) {
			a.logger.Debug("captured strict validation failure",
				zap.String("attribute", a.attribute),
				zap.String("message", strictErr.Error()),
			)
			return strictlyFailed(strictErr.Error()), nil
		}
		return nil, err
	}

	errs := a.record.Errors()
	return succeeded(Snapshot(errs), Extract(errs, a.attribute)), nil
}

// Messages 期望严格模式时返回严格失败的消息（单元素或空），
// 否则返回属性的错误消息
func (a *Attempt) Messages() ([]string, error) {
	outcome, err := a.Evaluate()
	if err != nil {
		return nil, err
	}

	if a.strict {
		if outcome.StrictlyFailed() {
			return []string{outcome.ExceptionMessage()}, nil
		}
		return []string{}, nil
	}
	return outcome.AttributeMessages(), nil
}

// FormattedMessages 用于诊断输出的消息
func (a *Attempt) FormattedMessages() ([]string, error) {
	return a.Messages()
}

// HasMessages Messages 是否非空
func (a *Attempt) HasMessages() (bool, error) {
	messages, err := a.Messages()
	if err != nil {
		return false, err
	}
	return len(messages) > 0, nil
}

// CapturedStrict 是否捕获了严格失败
func (a *Attempt) CapturedStrict() (bool, error) {
	outcome, err := a.Evaluate()
	if err != nil {
		return false, err
	}
	return outcome.StrictlyFailed(), nil
}

// SignalModeMatched 实际的失败报告方式是否与期望一致
func (a *Attempt) SignalModeMatched() (bool, error) {
	captured, err := a.CapturedStrict()
	if err != nil {
		return false, err
	}
	return SignalModeMatched(a.strict, captured), nil
}

// AllValidationErrors 验证完成时记录上的全部错误
func (a *Attempt) AllValidationErrors() (ErrorSnapshot, error) {
	outcome, err := a.Evaluate()
	if err != nil {
		return ErrorSnapshot{}, err
	}
	return outcome.AllErrors(), nil
}

// ExpectedMessagesDescription 期望出现错误时的描述
func (a *Attempt) ExpectedMessagesDescription(expected ExpectedMessage) string {
	if a.strict {
		desc := "a strict validation failure on " + strconv.Quote(a.attribute) + " should have been raised"
		if !expected.IsAbsent() {
			desc += " with a message matching " + expected.String()
		}
		return desc
	}

	desc := "validation errors on " + strconv.Quote(a.attribute) + " should have been present"
	if !expected.IsAbsent() {
		desc += " and have included " + expected.String()
	}
	return desc
}

// ExpectedMessagesDescriptionWhenNegated 不期望出现错误时的描述
func (a *Attempt) ExpectedMessagesDescriptionWhenNegated(expected ExpectedMessage) string {
	if a.strict {
		if expected.IsAbsent() {
			return "a strict validation failure on " + strconv.Quote(a.attribute) +
				" was raised when it was not supposed to be"
		}
		return "a strict validation failure on " + strconv.Quote(a.attribute) +
			" matching " + expected.String() + " was raised when it was not supposed to be"
	}

	if expected.IsAbsent() {
		return "validation errors on " + strconv.Quote(a.attribute) +
			" were present when they were not supposed to be"
	}
	return "validation errors on " + strconv.Quote(a.attribute) +
		" included " + expected.String() + " when they were not supposed to"
}

// ActualMessagesDescription 实际验证结果的描述，以 ".\n\n" 开头
func (a *Attempt) ActualMessagesDescription() string {
	outcome, err := a.Evaluate()
	if err != nil {
		return fmt.Sprintf(".\n\nValidation could not be run: %v", err)
	}

	if outcome.StrictlyFailed() {
		if a.strict {
			return ".\n\nThe strict validation failure raised was: " + strconv.Quote(outcome.ExceptionMessage())
		}
		return ".\n\nA strict validation failure was raised instead of recording messages: " +
			strconv.Quote(outcome.ExceptionMessage())
	}

	all := outcome.AllErrors()
	if a.strict {
		if all.IsEmpty() {
			return ".\n\nNo strict validation failure was raised."
		}
		return ".\n\nNo strict validation failure was raised; the record recorded these messages instead:\n" +
			all.String()
	}

	if all.IsEmpty() {
		return ".\n\nNo validation messages were found on the record."
	}
	return ".\n\nAll validation messages:\n" + all.String()
}
