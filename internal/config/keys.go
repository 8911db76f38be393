package config

import (
	"fmt"
	"os"
	"strconv"
)

type keyType int

const (
	kString keyType = iota
	kInt
)

type keySpec struct {
	key     string
	typ     keyType
	env     string
	apply   func(cfg *Config, v any)
	extract func(cfg Config) any
}

var specs = []keySpec{
	{
		key: "storage.data_dir", typ: kString, env: "ADHIKAR_STORAGE_DATA_DIR",
		apply:   func(cfg *Config, v any) { cfg.Storage.DataDir = v.(string) },
		extract: func(cfg Config) any { return cfg.Storage.DataDir },
	},
	{
		key: "templates.dir", typ: kString, env: "ADHIKAR_TEMPLATES_DIR",
		apply:   func(cfg *Config, v any) { cfg.Templates.Dir = v.(string) },
		extract: func(cfg Config) any { return cfg.Templates.Dir },
	},
	{
		key: "applicant.name", typ: kString, env: "ADHIKAR_APPLICANT_NAME",
		apply:   func(cfg *Config, v any) { cfg.Applicant.Name = v.(string) },
		extract: func(cfg Config) any { return cfg.Applicant.Name },
	},
	{
		key: "applicant.address", typ: kString, env: "ADHIKAR_APPLICANT_ADDRESS",
		apply:   func(cfg *Config, v any) { cfg.Applicant.Address = v.(string) },
		extract: func(cfg Config) any { return cfg.Applicant.Address },
	},
	{
		key: "output.language", typ: kString, env: "ADHIKAR_OUTPUT_LANGUAGE",
		apply:   func(cfg *Config, v any) { cfg.Output.Language = v.(string) },
		extract: func(cfg Config) any { return cfg.Output.Language },
	},
	{
		key: "tracker.upcoming_days", typ: kInt, env: "ADHIKAR_TRACKER_UPCOMING_DAYS",
		apply:   func(cfg *Config, v any) { cfg.Tracker.UpcomingDays = v.(int) },
		extract: func(cfg Config) any { return cfg.Tracker.UpcomingDays },
	},
}

func applyBackend(cfg *Config, b ConfigBackend) error {
	for _, s := range specs {
		switch s.typ {
		case kString:
			v, ok, err := b.GetString(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		case kInt:
			v, ok, err := b.GetInt(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	for _, s := range specs {
		if s.env == "" {
			continue
		}
		raw := os.Getenv(s.env)
		if raw == "" {
			continue
		}
		switch s.typ {
		case kString:
			s.apply(cfg, raw)
		case kInt:
			if i, err := strconv.Atoi(raw); err == nil {
				s.apply(cfg, i)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] could not parse integer from env var %s=%q: %v. Using default value.\n", s.env, raw, err)
			}
		}
	}
}
