// Package config resolves kmerge settings from flags, KMERGE_* environment
// variables and an optional YAML config file, in that order of precedence,
// using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable kmerge reads.
const EnvPrefix = "KMERGE"

// Keys shared by flags, environment and config file.
const (
	KeyLogLevel = "log-level"
	KeyStrategy = "strategy"
	KeyCheck    = "check"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel string `mapstructure:"log-level"`
	Strategy string `mapstructure:"strategy"`
	Check    bool   `mapstructure:"check"`
}

// Loader resolves a Config for one command invocation.
type Loader struct {
	v        *viper.Viper
	explicit string
}

// NewLoader returns a Loader. A non-empty path names the config file to
// read; otherwise $KMERGE_CONFIG is consulted, then kmerge.yaml is searched
// for in the working directory and the user config directory.
func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyStrategy, "heap")
	v.SetDefault(KeyCheck, true)

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("kmerge")
		v.SetConfigType("yaml")
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}
	return &Loader{v: v, explicit: path}
}

// Load binds fs, reads the config file if present and decodes the result.
// A missing config file is only an error when it was named explicitly.
func (l *Loader) Load(fs *pflag.FlagSet) (Config, error) {
	if fs != nil {
		if err := l.v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("config: failed to bind flags: %w", err)
		}
	}
	if err := l.read(); err != nil {
		return Config{}, err
	}
	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode: %w", err)
	}
	return c, nil
}

// ConfigFileUsed returns the config file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) read() error {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && l.explicit == "" {
			return nil
		}
		return fmt.Errorf("config: failed to read: %w", err)
	}
	return nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "kmerge"))
	}
	return dirs
}
