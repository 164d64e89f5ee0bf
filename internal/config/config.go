// Package config loads tabledef settings from defaults, an optional config
// file, TABLEDEF_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/tabledef-go/pkg/tabledef"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/render"
)

// EnvPrefix prefixes environment overrides, e.g. TABLEDEF_STRICT=true.
const EnvPrefix = "TABLEDEF"

// Config is the resolved configuration.
type Config struct {
	IndexTitle string        `mapstructure:"index_title" yaml:"index_title"`
	Encoding   string        `mapstructure:"encoding" yaml:"encoding"`
	Strict     bool          `mapstructure:"strict" yaml:"strict"`
	SheetNames string        `mapstructure:"sheet_names" yaml:"sheet_names"`
	Layout     models.Layout `mapstructure:"layout" yaml:"layout"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"index-title": "index_title",
	"encoding":    "encoding",
	"strict":      "strict",
	"sheet-names": "sheet_names",
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	opts := tabledef.DefaultOptions()
	return Config{
		IndexTitle: opts.IndexTitle,
		Encoding:   opts.Encoding,
		Strict:     opts.Strict,
		SheetNames: string(opts.NamePolicy),
		Layout:     opts.Layout,
	}
}

// Load resolves the configuration. cfgFile may be empty, in which case
// tabledef.yaml is looked up in the working directory and $HOME/.tabledef;
// a missing file is not an error. Flags that were set on the command line
// take precedence over everything else.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("index_title", defaults.IndexTitle)
	v.SetDefault("encoding", defaults.Encoding)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("sheet_names", defaults.SheetNames)
	v.SetDefault("layout.index.widths", defaults.Layout.Index.Widths)
	v.SetDefault("layout.index.centered", defaults.Layout.Index.Centered)
	v.SetDefault("layout.table.widths", defaults.Layout.Table.Widths)
	v.SetDefault("layout.table.centered", defaults.Layout.Table.Centered)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("tabledef")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.tabledef")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be expressed as types.
func (c *Config) Validate() error {
	if _, err := render.ParseNamePolicy(c.SheetNames); err != nil {
		return err
	}
	if strings.TrimSpace(c.IndexTitle) == "" {
		return errors.New("index_title must not be empty")
	}
	for kind, layout := range map[string]models.ColumnLayout{"index": c.Layout.Index, "table": c.Layout.Table} {
		for i, w := range layout.Widths {
			if w <= 0 {
				return fmt.Errorf("layout.%s.widths[%d] must be positive, got %v", kind, i, w)
			}
		}
		for _, col := range layout.Centered {
			if col < 1 {
				return fmt.Errorf("layout.%s.centered: column %d is not 1-based", kind, col)
			}
		}
	}
	return nil
}

// Options converts the configuration into conversion options.
func (c *Config) Options(logger *slog.Logger) tabledef.Options {
	policy, _ := render.ParseNamePolicy(c.SheetNames)
	return tabledef.Options{
		IndexTitle: c.IndexTitle,
		Encoding:   c.Encoding,
		Layout:     c.Layout,
		NamePolicy: policy,
		Strict:     c.Strict,
		Logger:     logger,
	}
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# tabledef configuration
# Every key can be overridden with a TABLEDEF_ environment variable,
# e.g. TABLEDEF_STRICT=true or TABLEDEF_LAYOUT_TABLE_WIDTHS=6,25,20,8,20,10,45
# sheet_names: error | suffix

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
