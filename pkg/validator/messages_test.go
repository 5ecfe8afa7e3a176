package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages_Lookup(t *testing.T) {
	messages := DefaultMessages()

	tests := []struct {
		tag   string
		param string
		want  string
	}{
		{"required", "", "can't be blank"},
		{"min", "3", "is too short (minimum is 3 characters)"},
		{"lte", "150", "must be less than or equal to 150"},
		{"oneof", "a b", "is not included in the list"},
		{"no_such_tag", "", "is invalid"},
		{"Required", "", "can't be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, messages.Lookup(tt.tag, tt.param))
		})
	}
}

func TestMessages_Merge(t *testing.T) {
	base := DefaultMessages()
	merged := base.Merge(map[string]string{"required": "must be filled", "isSlug": "is not a valid slug"})

	assert.Equal(t, "must be filled", merged.Lookup("required", ""))
	// 标签区分大小写
	assert.Equal(t, "is not a valid slug", merged.Lookup("isSlug", ""))
	assert.Equal(t, "is invalid", merged.Lookup("isslug", ""))
	// 原目录不受影响
	assert.Equal(t, "can't be blank", base.Lookup("required", ""))
}

func TestLoadMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	content := "messages:\n  required: \"must be filled\"\n  min: \"needs at least %s\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	messages, err := LoadMessages(path)
	require.NoError(t, err)
	assert.Equal(t, "must be filled", messages.Lookup("required", ""))
	assert.Equal(t, "needs at least 2", messages.Lookup("min", "2"))
	assert.Equal(t, "is invalid", messages.Lookup("email", ""))

	_, err = LoadMessages(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
