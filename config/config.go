// Package config loads tool configuration from propcheck.ini with
// environment overrides. The engine itself takes plain parameter structs;
// this package only serves the command-line tooling.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ConfigFilename is the default config file name, looked up in the
// working directory.
const ConfigFilename = "propcheck.ini"

// Environment overrides, applied after the file. PROPCHECK_SEED mirrors
// the seed printed on failure, so a CI failure reproduces with one
// exported variable.
const (
	EnvSeed = "PROPCHECK_SEED"
	EnvRuns = "PROPCHECK_RUNS"
)

// Config holds the tool settings.
type Config struct {
	// Seed keys every session the tool starts. When neither file nor
	// environment provides one, a time-based seed is chosen at load so
	// the run is still reproducible from the logged value.
	Seed uint32

	// Runs is the per-property run budget. Zero lets the runner default
	// apply.
	Runs int

	// JournalPath is where suite runs are recorded. Empty disables the
	// journal.
	JournalPath string

	// WatchPaths are the files or directories the watch mode observes.
	WatchPaths []string

	// Dev switches logging to the pretty development handler.
	Dev bool
}

// Load reads path (ConfigFilename if empty) and applies environment
// overrides. A missing file is not an error; overrides and defaults still
// apply.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigFilename
	}

	cfg := Config{}
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if cfg, err = parse(f); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults only
	default:
		return Config{}, fmt.Errorf("open %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint32(time.Now().UnixNano())
	}
	return cfg, nil
}

// parse reads the ini-style config: [section] headers, key = value lines,
// # or ; comments.
func parse(r io.Reader) (Config, error) {
	cfg := Config{}
	section := ""

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, ";") {
			continue
		}
		if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
			section = strings.ToLower(strings.Trim(text, "[]"))
			continue
		}

		key, value, ok := strings.Cut(text, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if err := cfg.set(section, key, value); err != nil {
			return Config{}, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return cfg, scanner.Err()
}

func (c *Config) set(section, key, value string) error {
	switch section + "." + key {
	case "run.seed":
		seed, err := parseUint32(value)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		c.Seed = seed
	case "run.runs":
		runs, err := strconv.Atoi(value)
		if err != nil || runs < 1 {
			return fmt.Errorf("runs: %q is not a positive integer", value)
		}
		c.Runs = runs
	case "journal.path":
		c.JournalPath = value
	case "watch.paths":
		for _, p := range strings.Split(value, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.WatchPaths = append(c.WatchPaths, p)
			}
		}
	case "log.dev":
		c.Dev = value == "true" || value == "1" || value == "yes"
	}
	// Unknown keys are ignored so configs stay forward-compatible
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := parseUint32(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvRuns); v != "" {
		runs, err := strconv.Atoi(v)
		if err != nil || runs < 1 {
			return fmt.Errorf("%s: %q is not a positive integer", EnvRuns, v)
		}
		c.Runs = runs
	}
	return nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not an unsigned 32-bit integer", s)
	}
	return uint32(v), nil
}
