package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringBuilderPool(t *testing.T) {
	sb := acquireStringBuilder()
	sb.WriteString("dirty")
	releaseStringBuilder(sb)

	again := acquireStringBuilder()
	assert.Equal(t, 0, again.Len())
	releaseStringBuilder(again)

	// 过大的 Builder 不归还，nil 安全
	big := &strings.Builder{}
	big.Grow(maxPooledBuilderCap + 1)
	releaseStringBuilder(big)
	releaseStringBuilder(nil)
}

func TestJoinWith(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"空", nil, ""},
		{"单个", []string{"a"}, "a"},
		{"多个", []string{"a", "b", "c"}, "a; b; c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinWith("; ", tt.parts))
		})
	}
}
