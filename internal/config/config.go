// Package config resolves mathex settings from defaults, environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all mathex configuration.
type Config struct {
	// Count is the number of exercises to generate. Default: 10.
	Count int `yaml:"count" json:"count" validate:"gte=1,lte=100000"`

	// Range is the exclusive bound on naturals, whole parts and
	// denominators. Default: 10.
	Range int `yaml:"range" json:"range" validate:"gte=2,lte=1000000"`

	// Seed makes generation reproducible. Zero means a random seed.
	Seed uint64 `yaml:"seed" json:"seed"`

	ExercisesFile string `yaml:"exercises_file" json:"exercises_file" validate:"required"`
	AnswersFile   string `yaml:"answers_file" json:"answers_file" validate:"required"`
	GradeFile     string `yaml:"grade_file" json:"grade_file" validate:"required"`
	BundleFile    string `yaml:"bundle_file" json:"bundle_file" validate:"required"`

	// OutputDir is where generated files are written. Default: ".".
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	// DBPath overrides the run-history database location. Empty means
	// the store default (MATHEX_DB or the XDG data directory).
	DBPath string `yaml:"db_path" json:"db_path"`

	// History enables the run-history log. Default: true.
	History bool `yaml:"history" json:"history"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color" json:"color" validate:"oneof=auto always never"`
}

var validate = validator.New()

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Count:         10,
		Range:         10,
		ExercisesFile: "Exercises.txt",
		AnswersFile:   "Answers.txt",
		GradeFile:     "Grade.txt",
		BundleFile:    "Exercises.json",
		OutputDir:     ".",
		History:       true,
		Color:         ColorAuto,
	}
}

// FromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()
	applyEnv(&cfg)
	return cfg
}

// Load resolves the configuration: defaults, then environment, then the
// YAML file at path. An empty path falls back to MATHEX_CONFIG; with
// neither set no file is read. The result is validated.
func Load(path string) (Config, error) {
	cfg := FromEnv()

	if path == "" {
		path = os.Getenv("MATHEX_CONFIG")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse YAML: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MATHEX_COUNT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Count = i
		}
	}
	if v := os.Getenv("MATHEX_RANGE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Range = i
		}
	}
	if v := os.Getenv("MATHEX_SEED"); v != "" {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = s
		}
	}
	if v := os.Getenv("MATHEX_EXERCISES_FILE"); v != "" {
		cfg.ExercisesFile = v
	}
	if v := os.Getenv("MATHEX_ANSWERS_FILE"); v != "" {
		cfg.AnswersFile = v
	}
	if v := os.Getenv("MATHEX_GRADE_FILE"); v != "" {
		cfg.GradeFile = v
	}
	if v := os.Getenv("MATHEX_BUNDLE_FILE"); v != "" {
		cfg.BundleFile = v
	}
	if v := os.Getenv("MATHEX_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("MATHEX_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.History = b
		}
	}
	if v := os.Getenv("MATHEX_COLOR"); v != "" {
		cfg.Color = strings.ToLower(v)
	}
}

// Validate checks field bounds and enum values.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}
