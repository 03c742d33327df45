package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rhyrak/planlekcji/pkg/model"
)

// EnvPrefix marks environment overrides, e.g. PLAN_SCHEDULE__PATH.
const EnvPrefix = "PLAN_"

const DefaultSchedulePath = "plan_lekcji.txt"

type Config struct {
	Schedule ScheduleConfig `json:"schedule"`
	Log      LogConfig      `json:"log"`
}

// ScheduleConfig locates the schedule file and its time labels.
type ScheduleConfig struct {
	// Path is the schedule file, relative to the working directory unless absolute.
	Path string `json:"path"`
	// LessonTimes replaces the built-in time labels. Must have one entry per slot.
	LessonTimes []string `json:"lesson_times"`
}

type LogConfig struct {
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Schedule.Path == "" {
		c.Schedule.Path = DefaultSchedulePath
	}
	if len(c.Schedule.LessonTimes) == 0 {
		c.Schedule.LessonTimes = append([]string(nil), model.LessonTimes...)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Schedule.Path) == "" {
		return fmt.Errorf("schedule.path is required")
	}
	if n := len(c.Schedule.LessonTimes); n != model.TimeSlotCount {
		return fmt.Errorf("schedule.lesson_times has %d entries, want %d", n, model.TimeSlotCount)
	}
	return nil
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// Load reads path (YAML or JSON by extension) when it exists, applies
// PLAN_ environment overrides, then defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			parser, err := parserFor(path)
			if err != nil {
				return nil, err
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}
