package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pelletier/go-toml/v2"

	"github.com/hushlog/hush/logger"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for console output.
type Logging struct {
	// Level is the minimum severity: trace, debug, info, warn or error.
	Level string `toml:"level"`
	// Color is one of auto, always or never. Auto colors only when stdout
	// is a terminal.
	Color string `toml:"color"`
	// Trace includes caller function names in the module segment.
	Trace bool `toml:"trace"`
	// CoarseClock timestamps records from a shared 500µs clock instead of
	// reading the wall clock per record.
	CoarseClock bool `toml:"coarse_clock"`
}

// Modules contains module path configuration.
type Modules struct {
	// Root is the application's module path; call sites under it log with
	// this prefix stripped.
	Root string `toml:"root"`
	// Whitelist restricts output to the listed module subtrees. Empty
	// admits everything.
	Whitelist []string `toml:"whitelist"`
}

// Config encapsulates all configuration values for the logging backend.
type Config struct {
	Logging Logging `toml:"logging"`
	Modules Modules `toml:"modules"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level: "info",
			Color: "auto",
		},
	}
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/hush/config.toml")
}

// Load locates, parses, and validates a configuration file. An empty path
// falls back to DefaultConfigPath; a missing file yields the defaults. The
// returned bool reports whether a file was actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	} else {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		path = expanded
	}

	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return path, true, nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Color = strings.ToLower(strings.TrimSpace(c.Logging.Color))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Color == "" {
		c.Logging.Color = "auto"
	}
	c.Modules.Root = strings.TrimSpace(c.Modules.Root)

	kept := c.Modules.Whitelist[:0]
	for _, m := range c.Modules.Whitelist {
		if m = strings.TrimSpace(m); m != "" {
			kept = append(kept, m)
		}
	}
	c.Modules.Whitelist = kept
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	switch c.Logging.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("logging.color: must be auto, always or never, got %q", c.Logging.Color)
	}
	return nil
}

// ColorEnabled reports whether output to f should carry ANSI colors under
// this configuration.
func (c *Config) ColorEnabled(f *os.File) bool {
	switch c.Logging.Color {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Install applies the configuration: it sets the global color mode and
// installs the asynchronous console backend. Returns
// logger.ErrAlreadyInitialized when a backend is already installed.
func (c *Config) Install() (*logger.Logger, error) {
	color.NoColor = !c.ColorEnabled(os.Stdout)

	return logger.InstallWith(logger.InstallOptions{
		Level:       logger.ParseLevel(c.Logging.Level),
		RootModule:  c.Modules.Root,
		Whitelist:   c.Modules.Whitelist,
		Trace:       c.Logging.Trace,
		CoarseClock: c.Logging.CoarseClock,
	})
}

// WriteSample writes the annotated sample configuration to path, refusing
// to overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(expanded, []byte(sampleConfig), 0o644)
}
