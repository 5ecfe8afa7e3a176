package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katydid-common-matcher/pkg/matcher"
	"katydid-common-matcher/pkg/validator"
)

const testConfig = `
log:
  level: debug
  format: json
messages:
  required: "must be present"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matcher.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
	assert.Empty(t, cfg.Messages)
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, "must be present", cfg.Messages["required"])
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("KATYDID_MATCHER_LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_MessageCatalog(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	catalog := cfg.MessageCatalog()
	assert.Equal(t, "must be present", catalog.Lookup("required", ""))
	assert.Equal(t, "is invalid", catalog.Lookup("email", ""))
	// 不修改内置目录
	assert.Equal(t, "can't be blank", validator.DefaultMessages().Lookup("required", ""))

	v := cfg.NewValidator()
	errs, err := v.Validate(&struct {
		Name string `json:"name"`
	}{}, validator.SceneNone, []*validator.Rule{validator.NewRule("name", "required")})
	require.NoError(t, err)
	assert.Equal(t, []string{"must be present"}, errs.Index("name"))
}

func TestConfig_NewLogger(t *testing.T) {
	cfg := Default()
	log, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)

	cfg.Log.Level = "loud"
	_, err = cfg.NewLogger()
	assert.Error(t, err)
}

func TestConfig_BuildsMatcher(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	cfg.Log.File = filepath.Join(t.TempDir(), "matcher.log")

	log, err := cfg.NewLogger()
	require.NoError(t, err)

	subject := validator.NewSubject(&struct {
		Name *string `json:"name"`
	}{},
		validator.WithValidator(cfg.NewValidator()),
		validator.WithRules(validator.NewRule("name", "required")),
	)
	m := matcher.NewValidationMatcher("name", matcher.WithLogger(log)).Bind(subject)

	ok, err := m.DisallowsValueOf(nil, matcher.Message("must be present"))
	require.NoError(t, err)
	assert.True(t, ok)
	_ = log.Sync()

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"probing value"`)
}
