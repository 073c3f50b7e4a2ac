package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aleksaelezovic/ontoview/pkg/ont"
	"github.com/aleksaelezovic/ontoview/pkg/vocab"
)

// Config is the resolved CLI configuration. Flags win over environment
// variables, which win over the config file.
type Config struct {
	Input               string `mapstructure:"input"`
	DB                  string `mapstructure:"db"`
	Profile             string `mapstructure:"profile"`
	Vocabulary          string `mapstructure:"vocabulary"`
	CollapseEquivalents bool   `mapstructure:"collapse_equivalents"`
	Verbose             int    `mapstructure:"verbose"`
}

// boundFlags maps configuration keys to the persistent flags that set them.
var boundFlags = map[string]string{
	"input":                "input",
	"db":                   "db",
	"profile":              "profile",
	"vocabulary":           "vocabulary",
	"collapse_equivalents": "collapse-equivalents",
	"verbose":              "verbose",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("profile", vocab.Strict.Name)
	v.SetDefault("collapse_equivalents", true)
}

// loadConfig reads the persistent flags of cmd, the ONTOVIEW_* environment
// and the optional --config file.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ONTOVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	flags := cmd.Flags()
	for key, name := range boundFlags {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag --%s", name)
			}
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

// newLogger builds a quiet production logger, or a development logger when
// verbose output is requested.
func newLogger(verbose int) (*zap.Logger, error) {
	if verbose > 0 {
		cfg := zap.NewDevelopmentConfig()
		if verbose == 1 {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// ontologyOptions turns the configuration into ontology options. A custom
// vocabulary may define its own profiles.
func (c *Config) ontologyOptions(logger *zap.Logger) ([]ont.Option, error) {
	opts := []ont.Option{
		ont.WithEquivalenceCollapsing(c.CollapseEquivalents),
		ont.WithLogger(logger),
	}
	if c.Vocabulary == "" {
		p, err := vocab.ParseProfile(c.Profile)
		if err != nil {
			return nil, err
		}
		return append(opts, ont.WithProfile(p)), nil
	}
	src, err := vocab.LoadSource(c.Vocabulary)
	if err != nil {
		return nil, err
	}
	p, err := src.Profile(c.Profile)
	if err != nil {
		return nil, err
	}
	return append(opts, ont.WithVocabulary(src), ont.WithProfile(p)), nil
}
