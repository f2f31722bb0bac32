// Package config loads texstrip settings from flags, environment and an
// optional YAML file via viper, and validates them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names (TEXSTRIP_WORKERS, ...).
const EnvPrefix = "TEXSTRIP"

// Keys shared by flags, environment and config file.
const (
	KeyDebug        = "debug"
	KeyQuiet        = "quiet"
	KeyLogJSON      = "log_json"
	KeyWorkers      = "workers"
	KeySourceExt    = "ext"
	KeyTargetExt    = "out_ext"
	KeyDryRun       = "dry_run"
	KeyReport       = "report"
	KeyReportFormat = "report_format"
)

// Config holds the resolved settings for a run.
type Config struct {
	Debug   bool `mapstructure:"debug"`
	Quiet   bool `mapstructure:"quiet"`
	LogJSON bool `mapstructure:"log_json"`

	Workers   int    `mapstructure:"workers" validate:"min=1,max=256"`
	SourceExt string `mapstructure:"ext" validate:"required,startswith=.,excludes=/"`
	TargetExt string `mapstructure:"out_ext" validate:"required,startswith=.,excludes=/,nefield=SourceExt"`
	DryRun    bool   `mapstructure:"dry_run"`

	Report       string `mapstructure:"report"`
	ReportFormat string `mapstructure:"report_format" validate:"omitempty,oneof=json jsonl yaml yml"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeySourceExt, ".tex")
	v.SetDefault(KeyTargetExt, ".txt")
}

// Init points v at the config file and environment. An explicit cfgFile must
// exist; otherwise .texstrip.yaml is looked up in $HOME and the working
// directory and silently skipped when absent.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".texstrip")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
