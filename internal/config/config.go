// Package config loads pagesmith settings from an optional YAML file,
// .env files, PAGESMITH_* environment variables and bound CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PAGESMITH"

	SourceDir    = "dir"
	SourceSQLite = "sqlite"
)

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type Config struct {
	DataDir     string       `mapstructure:"data_dir"`
	Source      string       `mapstructure:"source"`
	SQLitePath  string       `mapstructure:"sqlite_path"`
	OutDir      string       `mapstructure:"out_dir"`
	AssetsDir   string       `mapstructure:"assets_dir"`
	CSSHref     string       `mapstructure:"css_href"`
	Concurrency int          `mapstructure:"concurrency"`
	FailFast    bool         `mapstructure:"fail_fast"`
	Locale      string       `mapstructure:"locale"`
	PhoneRegion string       `mapstructure:"phone_region"`
	MapsAPIKey  string       `mapstructure:"maps_api_key"`
	Dev         bool         `mapstructure:"dev"`
	Log         LogConfig    `mapstructure:"log"`
	Server      ServerConfig `mapstructure:"server"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "data")
	v.SetDefault("source", SourceDir)
	v.SetDefault("sqlite_path", "data/records.db")
	v.SetDefault("out_dir", "dist")
	v.SetDefault("assets_dir", "public")
	v.SetDefault("css_href", "/assets/index.css")
	v.SetDefault("concurrency", runtime.NumCPU())
	v.SetDefault("fail_fast", false)
	v.SetDefault("locale", "en")
	v.SetDefault("phone_region", "US")
	v.SetDefault("maps_api_key", "")
	v.SetDefault("dev", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("server.addr", ":8080")
}

// Load reads configuration into a Config. An empty path searches for
// pagesmith.yaml in the working directory and ./config; a missing file is
// not an error, a malformed one is.
func Load(v *viper.Viper, path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pagesmith")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnvFiles() error {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Source {
	case SourceDir:
		if c.DataDir == "" {
			return fmt.Errorf("config: data_dir is required for the %q source", SourceDir)
		}
	case SourceSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config: sqlite_path is required for the %q source", SourceSQLite)
		}
	default:
		return fmt.Errorf("config: unknown source %q (want %q or %q)", c.Source, SourceDir, SourceSQLite)
	}

	if c.OutDir == "" {
		return fmt.Errorf("config: out_dir is required")
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("config: concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.Locale == "" {
		return fmt.Errorf("config: locale is required")
	}
	return nil
}
