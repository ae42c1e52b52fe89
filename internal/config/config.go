// Package config loads the settings of the pitchcharts command from a YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "PITCHCHARTS"

type Config struct {
	Render  RenderConfig  `mapstructure:"render"  yaml:"render"`
	Server  ServerConfig  `mapstructure:"server"  yaml:"server"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// RenderConfig holds the defaults of the render and export commands.
type RenderConfig struct {
	Width   float64 `mapstructure:"width"   yaml:"width"`
	Ratio   float64 `mapstructure:"ratio"   yaml:"ratio"`
	Format  string  `mapstructure:"format"  yaml:"format"` // "png" or "svg"
	Dir     string  `mapstructure:"dir"     yaml:"dir"`
	Workers int     `mapstructure:"workers" yaml:"workers"`
}

type ServerConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
	// MaxWidth bounds the width a client may ask for.
	MaxWidth float64 `mapstructure:"max_width" yaml:"max_width"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Logger builds a slog logger writing to w.
func (c LoggingConfig) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := slog.HandlerOptions{
		Level: level,
	}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, &opts))
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}

// Load reads the configuration from the first config.yaml found in
// ./config, ~/.pitchcharts and /etc/pitchcharts. A missing file is not an
// error. Environment variables override file values, e.g.
// PITCHCHARTS_SERVER_PORT.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".pitchcharts"))
	v.AddConfigPath("/etc/pitchcharts")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func Default() *Config {
	cfg, _ := decode(newViper())
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("render.width", 750)
	v.SetDefault("render.ratio", 1)
	v.SetDefault("render.format", "png")
	v.SetDefault("render.dir", ".")
	v.SetDefault("render.workers", 2)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.max_width", 4096)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
