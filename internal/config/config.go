package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StageDev  = "dev"
	StageProd = "prod"
)

const (
	DefaultAddr        = "127.0.0.1:4239"
	DefaultMaxSessions = 64
	DefaultThinkBudget = 5 * time.Minute
)

type Config struct {
	Stage       string
	Addr        string
	MaxSessions int64
	ThinkBudget time.Duration
}

// Loads configuration from the environment.
//
// Outside of prod, variables from `envFile` are loaded first;
// a missing file is fine, variables already set win.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	return FromLookup(os.LookupEnv)
}

func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	conf := Config{
		Stage:       StageDev,
		Addr:        DefaultAddr,
		MaxSessions: DefaultMaxSessions,
		ThinkBudget: DefaultThinkBudget,
	}

	if stage, ok := lookup("STAGE"); ok && stage != "" {
		if stage != StageDev && stage != StageProd {
			return conf, fmt.Errorf("stage must be either %s or %s, got %q", StageDev, StageProd, stage)
		}
		conf.Stage = stage
	}

	if addr, ok := lookup("ADDR"); ok && addr != "" {
		conf.Addr = addr
	}

	if str, ok := lookup("MAX_SESSIONS"); ok && str != "" {
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return conf, fmt.Errorf("invalid MAX_SESSIONS: %w", err)
		}
		if n <= 0 {
			return conf, fmt.Errorf("non-positive MAX_SESSIONS: %d", n)
		}
		conf.MaxSessions = n
	}

	if str, ok := lookup("THINK_BUDGET"); ok && str != "" {
		d, err := time.ParseDuration(str)
		if err != nil {
			return conf, fmt.Errorf("invalid THINK_BUDGET: %w", err)
		}
		if d <= 0 {
			return conf, fmt.Errorf("non-positive THINK_BUDGET: %s", d)
		}
		conf.ThinkBudget = d
	}

	return conf, nil
}
