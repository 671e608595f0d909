// Package config loads course-sidebar settings from defaults, a YAML file,
// COURSE_SIDEBAR_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	appName   = "course-sidebar"
	envPrefix = "COURSE_SIDEBAR_"

	DefaultContentDir = "src/content/docs"
	DefaultFormat     = "json"
	DefaultOut        = "-"
	DefaultWindow     = "edit"
)

// localNames are looked up in the working directory before the user config
var localNames = []string{appName + ".yaml", appName + ".yml"}

// Tmux contains tmux-related configuration
type Tmux struct {
	Window string `koanf:"window"`
}

// Config holds all configuration options
type Config struct {
	Title      string `koanf:"title"`
	Definition string `koanf:"definition"`
	ContentDir string `koanf:"content_dir"`
	Format     string `koanf:"format"`
	Out        string `koanf:"out"`
	Editor     string `koanf:"editor"`
	Verbose    bool   `koanf:"verbose"`
	Tmux       Tmux   `koanf:"tmux"`

	// File is the config file that was read, if any
	File string `koanf:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ContentDir: DefaultContentDir,
		Format:     DefaultFormat,
		Out:        DefaultOut,
		Editor:     defaultEditor(),
		Tmux:       Tmux{Window: DefaultWindow},
	}
}

func defaultEditor() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

// configPath returns the path to the user config file
func configPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, "config.yaml")
}

// Path returns the user config file path (for help text)
func Path() string {
	return configPath()
}

// findConfigFile picks the file to read.
// Priority: explicit path > ./course-sidebar.yaml > ./course-sidebar.yml > user config
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range localNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if _, err := os.Stat(configPath()); err == nil {
		return configPath()
	}
	return ""
}

// configKey maps flag and env names onto config keys,
// e.g. "content-dir" -> "content_dir" and "tmux-window" -> "tmux.window"
func configKey(name string) string {
	key := strings.ToLower(strings.ReplaceAll(name, "-", "_"))
	if rest, ok := strings.CutPrefix(key, "tmux_"); ok {
		return "tmux." + rest
	}
	return key
}

// Load reads configuration. Precedence (highest to lowest):
// flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	def := DefaultConfig()

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"content_dir": def.ContentDir,
		"format":      def.Format,
		"out":         def.Out,
		"editor":      def.Editor,
		"verbose":     false,
		"tmux.window": def.Tmux.Window,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return configKey(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only explicitly set flags override lower layers
			if !f.Changed {
				return "", nil
			}
			return configKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that every command relies on
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir must not be empty")
	}
	if c.Tmux.Window == "" {
		return fmt.Errorf("tmux.window must not be empty")
	}
	return nil
}
