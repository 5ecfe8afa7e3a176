package matcher

import (
	"strings"

	"katydid-common-matcher/pkg/validator"
)

// Extract 提取属性的错误消息
//
// 探测顺序固定：
//  1. validator.IndexedErrors（按键查找，现代协议，权威来源）
//  2. validator.LegacyErrors（On 方法查找，旧版协议）
//
// 两者都不支持或没有错误时返回空切片，不会返回 nil
func Extract(errs validator.ErrorContainer, attribute string) []string {
	var messages []string
	switch c := errs.(type) {
	case nil:
	case validator.IndexedErrors:
		messages = c.Index(attribute)
	case validator.LegacyErrors:
		messages = c.On(attribute)
	}

	out := make([]string, len(messages))
	copy(out, messages)
	return out
}

// ErrorEntry 快照中的单条错误
type ErrorEntry struct {
	Attribute string
	Message   string
}

// ErrorSnapshot 验证完成时记录上全部错误的不可变副本，仅用于诊断输出
type ErrorSnapshot struct {
	entries []ErrorEntry
}

// Snapshot 复制错误集合的当前内容
func Snapshot(errs validator.ErrorContainer) ErrorSnapshot {
	if errs == nil {
		return ErrorSnapshot{}
	}
	var entries []ErrorEntry
	errs.Each(func(attribute, message string) {
		entries = append(entries, ErrorEntry{Attribute: attribute, Message: message})
	})
	return ErrorSnapshot{entries: entries}
}

// Len 错误数量
func (s ErrorSnapshot) Len() int {
	return len(s.entries)
}

// IsEmpty 是否没有错误
func (s ErrorSnapshot) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries 所有错误的副本
func (s ErrorSnapshot) Entries() []ErrorEntry {
	out := make([]ErrorEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Attributes 出现错误的属性，按首次出现顺序去重
func (s ErrorSnapshot) Attributes() []string {
	seen := make(map[string]struct{}, len(s.entries))
	var out []string
	for _, entry := range s.entries {
		if _, ok := seen[entry.Attribute]; ok {
			continue
		}
		seen[entry.Attribute] = struct{}{}
		out = append(out, entry.Attribute)
	}
	return out
}

// Messages 指定属性的错误消息
func (s ErrorSnapshot) Messages(attribute string) []string {
	out := make([]string, 0)
	for _, entry := range s.entries {
		if entry.Attribute == attribute {
			out = append(out, entry.Message)
		}
	}
	return out
}

// String 逐行输出，如 "* name: can't be blank"
func (s ErrorSnapshot) String() string {
	var builder strings.Builder
	for i, entry := range s.entries {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString("* ")
		builder.WriteString(entry.Attribute)
		builder.WriteString(": ")
		builder.WriteString(entry.Message)
	}
	return builder.String()
}
