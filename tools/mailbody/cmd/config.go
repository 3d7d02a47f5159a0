package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/zostay/go-mailbody/message"
)

// Config holds the settings of the mailbody command.
type Config struct {
	MaxDepth         int       `mapstructure:"max_depth"`
	MaxPartLength    int       `mapstructure:"max_part_length"`
	DefaultMediaType string    `mapstructure:"default_media_type"`
	Log              LogConfig `mapstructure:"log"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	File      string `mapstructure:"file"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
	MaxFiles  int    `mapstructure:"max_files"`
}

// LoadConfig reads the configuration into v. When path is empty, a file named
// mailbody.yaml is looked for in the working directory and in
// $HOME/.config/mailbody, and it is fine if there is none. Environment
// variables with the MAILBODY_ prefix override file values, e.g.,
// MAILBODY_LOG_LEVEL overrides log.level.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	v.SetDefault("max_depth", message.DefaultMaxMultipartDepth)
	v.SetDefault("max_part_length", message.DefaultMaxPartLength)
	v.SetDefault("default_media_type", message.DefaultMediaType)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_files", 3)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mailbody")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/mailbody")
	}

	v.SetEnvPrefix("MAILBODY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ParseOptions turns the configuration into options for the message parser.
func (c *Config) ParseOptions(logger zerolog.Logger) []message.ParseOption {
	return []message.ParseOption{
		message.WithMaxDepth(c.MaxDepth),
		message.WithMaxPartLength(c.MaxPartLength),
		message.WithDefaultMediaType(c.DefaultMediaType),
		message.WithLogger(logger),
	}
}
