// Package config loads the tool configuration from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/catppuccin"
)

// Config holds the resolved settings shared by every command.
type Config struct {
	Flavor       catppuccin.Flavor
	NoBackground bool
	LogLevel     string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Flavor:       catppuccin.FlavorMocha,
		NoBackground: false,
		LogLevel:     "info",
	}
}

// Load resolves configuration with the usual precedence: defaults, then an
// optional config file, then CATPPUCCIN_* environment variables. file may be
// empty, in which case the default search path is used and a missing file is
// not an error.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("flavor", "mocha")
	v.SetDefault("no-background", false)
	v.SetDefault("log-level", "info")

	v.SetEnvPrefix("CATPPUCCIN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	flavorName := strings.ToLower(strings.TrimSpace(v.GetString("flavor")))
	flavor, ok := catppuccin.ParseFlavor(flavorName)
	if !ok {
		return nil, fmt.Errorf("unknown flavor %q (expected latte, frappe, macchiato, or mocha)", flavorName)
	}

	return &Config{
		Flavor:       flavor,
		NoBackground: v.GetBool("no-background"),
		LogLevel:     v.GetString("log-level"),
	}, nil
}

func searchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "catppuccin"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "catppuccin"))
	}
	return dirs
}
