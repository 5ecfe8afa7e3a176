package matcher

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedMessage(t *testing.T) {
	tests := []struct {
		name       string
		expected   ExpectedMessage
		messages   []string
		wantAny    bool
		wantString string
	}{
		{"未指定且有消息", AnyMessage(), []string{"is invalid"}, true, "any message"},
		{"未指定且无消息", AnyMessage(), []string{}, false, "any message"},
		{"精确匹配", Message("can't be blank"), []string{"is invalid", "can't be blank"}, true, `"can't be blank"`},
		{"精确匹配失败", Message("can't be blank"), []string{"Name can't be blank"}, false, `"can't be blank"`},
		{"正则匹配", MustPattern(`can't be blank$`), []string{"Name can't be blank"}, true, "/can't be blank$/"},
		{"正则匹配失败", Pattern(regexp.MustCompile(`^is`)), []string{"can't be blank"}, false, "/^is/"},
		{"空消息也需精确匹配", Message(""), []string{""}, true, `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAny, tt.expected.MatchesAny(tt.messages))
			assert.Equal(t, tt.wantString, tt.expected.String())
		})
	}
}

func TestExpectedMessage_Kinds(t *testing.T) {
	assert.True(t, AnyMessage().IsAbsent())
	assert.True(t, ExpectedMessage{}.IsAbsent())
	assert.True(t, Pattern(nil).IsAbsent())
	assert.False(t, Message("x").IsAbsent())
	assert.False(t, Message("x").IsPattern())
	assert.True(t, MustPattern("x").IsPattern())
	assert.True(t, AnyMessage().Matches("anything"))
	assert.Panics(t, func() { MustPattern("(") })
}
