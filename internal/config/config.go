package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"wrench.dev/wrench/internal/environment"
	"wrench.dev/wrench/internal/git"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "WRENCH"

// DefaultFileName is looked up in the working directory when no file is given
const DefaultFileName = "wrench.yaml"

// Config is the complete wrench configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	GitHub GitHubConfig `mapstructure:"github"`
	Tools  ToolsConfig  `mapstructure:"tools"`

	env environment.Accessor
}

// Env returns the process environment overlaid with the values of the .env file.
// Process variables win.
func (c *Config) Env() environment.Accessor {
	if c.env == nil {
		return environment.OS{}
	}
	return c.env
}

// LogConfig controls console and file logging
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

// GitHubConfig holds the defaults for GitReleaseManager commands
type GitHubConfig struct {
	Token      string `mapstructure:"token"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	Owner      string `mapstructure:"owner"`
	Repository string `mapstructure:"repository"`
}

// ToolsConfig overrides how external tools are found and run
type ToolsConfig struct {
	GitReleaseManager string        `mapstructure:"gitreleasemanager"`
	DotNet            string        `mapstructure:"dotnet"`
	Envman            string        `mapstructure:"envman"`
	Timeout           time.Duration `mapstructure:"timeout" validate:"gte=0"`
	SearchPaths       []string      `mapstructure:"search_paths"`
}

// Options controls where Load looks for configuration
type Options struct {
	// ConfigFile is an explicit YAML file; it must exist when set
	ConfigFile string
	// Dir is searched for .env and wrench.yaml; empty means the current directory.
	// wrench.yaml is also looked up at the root of the repository containing Dir.
	Dir string
	// Env replaces the process environment; nil reads os.LookupEnv
	Env environment.Accessor
}

var keys = []string{
	"log.level",
	"log.file",
	"github.token",
	"github.username",
	"github.password",
	"github.owner",
	"github.repository",
	"tools.gitreleasemanager",
	"tools.dotnet",
	"tools.envman",
	"tools.timeout",
	"tools.search_paths",
}

var validate = validator.New()

// Load reads, merges and validates the configuration
func Load(opts Options) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	base := opts.Env
	if base == nil {
		base = environment.OS{}
	}

	// .env is optional and never overrides variables that are already set
	dotenv, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	env := environment.Layered{base, environment.Map(dotenv)}

	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("tools.timeout", 0)

	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else if path, ok := findConfigFile(dir); ok {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// Empty variables are ignored, as viper does for AutomaticEnv
	for _, key := range keys {
		if value, ok := env.LookupEnv(EnvVar(key)); ok && value != "" {
			v.Set(key, value)
		}
	}

	cfg := Config{env: env}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile returns wrench.yaml in dir, or at the root of the repository containing dir
func findConfigFile(dir string) (string, bool) {
	candidates := []string{filepath.Join(dir, DefaultFileName)}
	if root, err := git.GetRepoRoot(dir); err == nil {
		candidates = append(candidates, filepath.Join(root, DefaultFileName))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Validate checks the struct tags
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// EnvVar returns the environment variable that overrides key
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
