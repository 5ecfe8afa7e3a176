package matcher

// OutcomeKind 验证结果类型
type OutcomeKind int

const (
	// OutcomeSucceeded 验证正常返回（可能记录了错误消息）
	OutcomeSucceeded OutcomeKind = iota + 1
	// OutcomeStrictlyFailed 严格规则失败
	OutcomeStrictlyFailed
)

// String 字符串表示
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeStrictlyFailed:
		return "strictly_failed"
	default:
		return "unknown"
	}
}

// State Attempt 的状态
type State int

const (
	// StateUnevaluated 尚未成功完成验证
	StateUnevaluated State = iota
	// StateSucceeded 验证完成，失败以消息形式记录
	StateSucceeded
	// StateStrictlyFailed 验证以严格失败结束
	StateStrictlyFailed
)

// String 字符串表示
func (s State) String() string {
	switch s {
	case StateUnevaluated:
		return "unevaluated"
	case StateSucceeded:
		return "succeeded"
	case StateStrictlyFailed:
		return "strictly_failed"
	default:
		return "unknown"
	}
}

// Outcome 单次验证的不可变结果
type Outcome struct {
	kind              OutcomeKind
	allErrors         ErrorSnapshot
	attributeMessages []string
	exceptionMessage  string
}

func succeeded(allErrors ErrorSnapshot, attributeMessages []string) *Outcome {
	return &Outcome{
		kind:              OutcomeSucceeded,
		allErrors:         allErrors,
		attributeMessages: attributeMessages,
	}
}

func strictlyFailed(message string) *Outcome {
	return &Outcome{
		kind:             OutcomeStrictlyFailed,
		exceptionMessage: message,
	}
}

// Kind 结果类型
func (o *Outcome) Kind() OutcomeKind {
	return o.kind
}

// Succeeded 验证是否正常返回
func (o *Outcome) Succeeded() bool {
	return o.kind == OutcomeSucceeded
}

// StrictlyFailed 是否捕获了严格失败
func (o *Outcome) StrictlyFailed() bool {
	return o.kind == OutcomeStrictlyFailed
}

// AllErrors 全部错误快照，严格失败时为空
func (o *Outcome) AllErrors() ErrorSnapshot {
	return o.allErrors
}

// AttributeMessages 属性的错误消息副本
func (o *Outcome) AttributeMessages() []string {
	out := make([]string, len(o.attributeMessages))
	copy(out, o.attributeMessages)
	return out
}

// ExceptionMessage 严格失败的消息，正常返回时为空
func (o *Outcome) ExceptionMessage() string {
	return o.exceptionMessage
}
