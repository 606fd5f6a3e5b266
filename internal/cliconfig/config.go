// Package cliconfig is the configuration layer shared by cmd/wildls and
// cmd/wildwatch: cobra/pflag surface the flags, viper layers in environment
// variables and an optional config file on top of them, and validator
// checks the merged result before either command touches a filesystem.
package cliconfig

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix viper uses when reading environment variables,
// e.g. WILDMATCH_PATTERN.
const EnvPrefix = "WILDMATCH"

// ConfigFileName is the optional config file both CLIs look for, in the
// current directory and in $HOME.
const ConfigFileName = ".wildmatch"

// Config is the merged, validated configuration for either CLI. Not every
// field applies to every command: wildwatch ignores Follow and NoReuse.
type Config struct {
	Pattern    string `mapstructure:"pattern"    validate:"required"`
	Root       string `mapstructure:"root"       validate:"required,dir"`
	IgnoreCase bool   `mapstructure:"ignore-case"`
	Basename   bool   `mapstructure:"basename"`
	Follow     bool   `mapstructure:"follow"`
	NoReuse    bool   `mapstructure:"no-reuse"`
}

// BindFlags registers the shared flag set on fs and binds it into v,
// so that viper's precedence order (flag > env > config file > default)
// governs the final values Load reads back out.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String("pattern", "", "wildcard pattern to compile and match")
	fs.String("root", ".", "directory to walk or watch")
	fs.Bool("ignore-case", false, "fold case while matching")
	fs.Bool("basename", false, "match against the basename instead of the full relative path")
	fs.Bool("follow", false, "follow symlinks while walking (wildls only)")
	fs.Bool("no-reuse", false, "recompile the pattern for every visited entry (wildls only, for benchmarking)")

	return v.BindPFlags(fs)
}

// NewViper returns a *viper.Viper preconfigured to read WILDMATCH_*
// environment variables and an optional .wildmatch.{yaml,json,toml} config
// file from the current directory or $HOME.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	return v
}

// Load reads the merged configuration out of v, validates it, and returns
// it. A missing config file is not an error; a present-but-malformed one
// is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound { //nolint:errorlint // viper's own sentinel type.
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
