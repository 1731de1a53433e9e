package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/Garik-/nibbler/pkg/midi"
)

const envPrefix = "NIBBLER"

// DecoderConfig selects the message backend and the pending buffer bound.
type DecoderConfig struct {
	Backend    string `mapstructure:"backend"`
	MaxPending int    `mapstructure:"maxPending"`
}

// LumberjackConfig is the rotating log file. An empty Filename disables it.
type LumberjackConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"maxSize"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAge"`
	Compress   bool   `mapstructure:"compress"`
}

type LoggingConfig struct {
	Level  string           `mapstructure:"level"`
	Format string           `mapstructure:"format"`
	File   LumberjackConfig `mapstructure:"file"`
}

type MetricsConfig struct {
	Enable bool   `mapstructure:"enable"`
	Addr   string `mapstructure:"addr"`
	Path   string `mapstructure:"path"`
}

type ScanConfig struct {
	Parallel int `mapstructure:"parallel"`
}

type Config struct {
	Decoder DecoderConfig `mapstructure:"decoder"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Scan    ScanConfig    `mapstructure:"scan"`
}

// Load reads the config file at path. NIBBLER_* environment variables
// override the file, which overrides defaults. With an empty path
// NIBBLER_CONFIG is used, then a nibbler.{toml,yaml,json} found in the
// working directory or ./configs. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.SetConfigName("nibbler")
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values a decoder or CLI would reject later.
func (c *Config) Validate() error {
	if _, err := midi.NewBackend(c.Decoder.Backend); err != nil {
		return fmt.Errorf("decoder.backend: %w", err)
	}
	if c.Decoder.MaxPending < 0 {
		return fmt.Errorf("decoder.maxPending: %w: %d", midi.ErrInvalidLimit, c.Decoder.MaxPending)
	}
	if c.Scan.Parallel <= 0 {
		return fmt.Errorf("scan.parallel must be > 0, was %d", c.Scan.Parallel)
	}
	if c.Metrics.Enable && strings.TrimSpace(c.Metrics.Addr) == "" {
		return errors.New("metrics.addr is required when metrics are enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("decoder.backend", midi.BackendNative)
	v.SetDefault("decoder.maxPending", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.filename", "")
	v.SetDefault("logging.file.maxSize", 100)
	v.SetDefault("logging.file.maxBackups", 3)
	v.SetDefault("logging.file.maxAge", 7)
	v.SetDefault("logging.file.compress", false)

	v.SetDefault("metrics.enable", false)
	v.SetDefault("metrics.addr", ":9464")
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("scan.parallel", 10)
}
