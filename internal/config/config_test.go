package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every MATHEX_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MATHEX_COUNT", "MATHEX_RANGE", "MATHEX_SEED", "MATHEX_EXERCISES_FILE",
		"MATHEX_ANSWERS_FILE", "MATHEX_GRADE_FILE", "MATHEX_BUNDLE_FILE",
		"MATHEX_OUTPUT_DIR", "MATHEX_HISTORY", "MATHEX_COLOR", "MATHEX_CONFIG",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10, cfg.Count)
	assert.Equal(t, 10, cfg.Range)
	assert.Equal(t, "Exercises.txt", cfg.ExercisesFile)
	assert.Equal(t, "Answers.txt", cfg.AnswersFile)
	assert.Equal(t, "Grade.txt", cfg.GradeFile)
	assert.True(t, cfg.History)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATHEX_COUNT", "25")
	t.Setenv("MATHEX_RANGE", "7")
	t.Setenv("MATHEX_SEED", "42")
	t.Setenv("MATHEX_HISTORY", "false")
	t.Setenv("MATHEX_COLOR", "NEVER")
	t.Setenv("MATHEX_ANSWERS_FILE", "key.txt")

	cfg := FromEnv()
	assert.Equal(t, 25, cfg.Count)
	assert.Equal(t, 7, cfg.Range)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.False(t, cfg.History)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "key.txt", cfg.AnswersFile)
	assert.Equal(t, "Exercises.txt", cfg.ExercisesFile)
}

func TestFromEnv_IgnoresGarbage(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATHEX_COUNT", "many")
	t.Setenv("MATHEX_HISTORY", "perhaps")

	cfg := FromEnv()
	assert.Equal(t, 10, cfg.Count)
	assert.True(t, cfg.History)
}

func TestLoad_FileOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATHEX_COUNT", "25")
	t.Setenv("MATHEX_RANGE", "7")

	path := filepath.Join(t.TempDir(), "mathex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 50\noutput_dir: worksheets\ncolor: always\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Count, "file beats env")
	assert.Equal(t, 7, cfg.Range, "env beats defaults")
	assert.Equal(t, "worksheets", cfg.OutputDir)
	assert.Equal(t, ColorAlways, cfg.Color)
}

func TestLoad_ConfigFromEnvVar(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "mathex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("range: 20\n"), 0o644))
	t.Setenv("MATHEX_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Range)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("count: [1, 2\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parse YAML")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("range: 1\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "Range must be at least 2")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero count", func(c *Config) { c.Count = 0 }, "Count must be at least 1"},
		{"range one", func(c *Config) { c.Range = 1 }, "Range must be at least 2"},
		{"huge range", func(c *Config) { c.Range = 2000000 }, "Range must be at most 1000000"},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, "Color must be one of [auto always never]"},
		{"no answers file", func(c *Config) { c.AnswersFile = "" }, "AnswersFile is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
