package validator

import (
	"strings"
	"sync"
)

// maxPooledBuilderCap 超过该容量的 Builder 不再归还
const maxPooledBuilderCap = 64 * 1024

// stringBuilderPool strings.Builder 对象池
// 用于错误集合和诊断消息的拼接
var stringBuilderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

// acquireStringBuilder 从对象池获取已重置的 strings.Builder
// 使用后必须调用 releaseStringBuilder 归还
func acquireStringBuilder() *strings.Builder {
	sb := stringBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// releaseStringBuilder 将 strings.Builder 归还到对象池
func releaseStringBuilder(sb *strings.Builder) {
	if sb == nil || sb.Cap() > maxPooledBuilderCap {
		return
	}
	sb.Reset()
	stringBuilderPool.Put(sb)
}

// joinWith 使用池化的 Builder 拼接字符串
func joinWith(sep string, parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	sb := acquireStringBuilder()
	defer releaseStringBuilder(sb)

	size := len(sep) * (len(parts) - 1)
	for _, p := range parts {
		size += len(p)
	}
	sb.Grow(size)

	for i, p := range parts {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(p)
	}
	return sb.String()
}
