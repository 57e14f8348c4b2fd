package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"monkey/internal/logs"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// DefaultFile is looked up in the working directory when no config path is given.
	DefaultFile = "monkey.toml"
	// DefaultEnvFile is loaded into the environment when present.
	DefaultEnvFile = ".env"

	envPrefix = "MONKEY_"
)

// Modes the REPL can run in.
const (
	ModeParse  = "parse"
	ModeTokens = "tokens"
)

// Output formats for parsed programs.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	modes   = []string{ModeParse, ModeTokens}
	formats = []string{FormatText, FormatJSON, FormatYAML}
)

// Config holds the complete application configuration
type Config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Mode        string `toml:"mode"`
	Color       bool   `toml:"color"`
	Banner      bool   `toml:"banner"`
	Format      string `toml:"format"`
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Prompt:   ">> ",
		Mode:     ModeParse,
		Color:    true,
		Banner:   true,
		Format:   FormatText,
		LogLevel: "warn",
	}
}

// Load builds the configuration from defaults, the .env file at envPath, the
// TOML file at path and MONKEY_* environment variables, in that order.
// An empty path falls back to MONKEY_CONFIG and then to ./monkey.toml when it exists.
// The result is validated.
func Load(path, envPath string) (*Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return nil, err
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(envPrefix + "CONFIG")
		explicit = path != ""
	}
	if !explicit {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	if path != "" {
		if err := cfg.decodeFile(os.ExpandEnv(path)); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file without overriding ones already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (c *Config) decodeFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config file not found: %s", path)
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// applyEnv overrides fields from MONKEY_* variables. NO_COLOR turns color off.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"PROMPT":       &c.Prompt,
		"HISTORY_FILE": &c.HistoryFile,
		"MODE":         &c.Mode,
		"FORMAT":       &c.Format,
		"LOG_LEVEL":    &c.LogLevel,
		"LOG_FILE":     &c.LogFile,
	}
	for name, field := range strs {
		if v, ok := lookup(envPrefix + name); ok {
			*field = v
		}
	}

	bools := map[string]*bool{
		"COLOR":  &c.Color,
		"BANNER": &c.Banner,
	}
	for name, field := range bools {
		v, ok := lookup(envPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
		}
		*field = b
	}

	if _, ok := lookup("NO_COLOR"); ok {
		c.Color = false
	}
	return nil
}

// Validate rejects modes, formats and log levels the tools do not know.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(modes, c.Mode) {
		errs = append(errs, fmt.Errorf("unknown mode %q (want one of %s)", c.Mode, strings.Join(modes, ", ")))
	}
	if !slices.Contains(formats, c.Format) {
		errs = append(errs, fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(formats, ", ")))
	}
	if _, err := logs.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
