package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantErr   bool
		wantLevel zapcore.Level
	}{
		{"默认配置", "info", FormatConsole, false, zapcore.InfoLevel},
		{"JSON 格式", "debug", FormatJSON, false, zapcore.DebugLevel},
		{"级别大小写与空白", " WARN ", "", false, zapcore.WarnLevel},
		{"非法级别", "loud", FormatConsole, true, zapcore.InfoLevel},
		{"非法格式", "info", "xml", true, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Level = tt.level
			cfg.Format = tt.format

			log, err := New(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.wantLevel))
			assert.False(t, log.Core().Enabled(tt.wantLevel-1))
		})
	}
}

func TestNew_FileSink(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = FormatJSON
	cfg.File = filepath.Join(t.TempDir(), "matcher.log")

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("validation attempt evaluated")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"validation attempt evaluated"`)
}
