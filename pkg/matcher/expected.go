package matcher

import (
	"regexp"
	"strconv"
)

// ExpectedMessage 期望的错误消息
// 零值表示未指定，任何非空的消息（或任何严格失败）都满足
type ExpectedMessage struct {
	text    string
	pattern *regexp.Regexp
	set     bool
}

// AnyMessage 未指定期望消息
func AnyMessage() ExpectedMessage {
	return ExpectedMessage{}
}

// Message 精确匹配的期望消息
func Message(text string) ExpectedMessage {
	return ExpectedMessage{text: text, set: true}
}

// Pattern 正则匹配的期望消息，re 为 nil 时等同 AnyMessage
func Pattern(re *regexp.Regexp) ExpectedMessage {
	if re == nil {
		return ExpectedMessage{}
	}
	return ExpectedMessage{pattern: re, set: true}
}

// MustPattern 编译正则表达式，失败时 panic
func MustPattern(expr string) ExpectedMessage {
	return Pattern(regexp.MustCompile(expr))
}

// IsAbsent 是否未指定
func (e ExpectedMessage) IsAbsent() bool {
	return !e.set
}

// IsPattern 是否为正则匹配
func (e ExpectedMessage) IsPattern() bool {
	return e.pattern != nil
}

// Matches 单条消息是否满足期望
func (e ExpectedMessage) Matches(message string) bool {
	switch {
	case !e.set:
		return true
	case e.pattern != nil:
		return e.pattern.MatchString(message)
	default:
		return e.text == message
	}
}

// MatchesAny 消息列表中是否存在满足期望的消息
// 未指定期望时，只要求列表非空
func (e ExpectedMessage) MatchesAny(messages []string) bool {
	for _, message := range messages {
		if e.Matches(message) {
			return true
		}
	}
	return false
}

// String 诊断输出形式：带引号的文本或 /pattern/
func (e ExpectedMessage) String() string {
	switch {
	case !e.set:
		return "any message"
	case e.pattern != nil:
		return "/" + e.pattern.String() + "/"
	default:
		return strconv.Quote(e.text)
	}
}
