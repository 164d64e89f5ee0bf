package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/models"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/render"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "테이블 목록", cfg.IndexTitle)
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.Equal(t, "error", cfg.SheetNames)
	assert.Equal(t, models.DefaultLayout(), cfg.Layout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), *cfg)
	})

	t.Run("loads from config file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "tabledef.yaml")
		content := `
index_title: Tables
strict: true
sheet_names: suffix
layout:
  table:
    widths: [5, 20, 15]
    centered: [1]
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := Load(configFile, nil)
		require.NoError(t, err)
		assert.Equal(t, "Tables", cfg.IndexTitle)
		assert.True(t, cfg.Strict)
		assert.Equal(t, "suffix", cfg.SheetNames)
		assert.Equal(t, []float64{5, 20, 15}, cfg.Layout.Table.Widths)
		assert.Equal(t, []int{1}, cfg.Layout.Table.Centered)
		// Untouched keys keep their defaults.
		assert.Equal(t, models.DefaultLayout().Index, cfg.Layout.Index)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("TABLEDEF_STRICT", "true")
		t.Setenv("TABLEDEF_ENCODING", "euc-kr")

		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.True(t, cfg.Strict)
		assert.Equal(t, "euc-kr", cfg.Encoding)
	})

	t.Run("changed flags win", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("TABLEDEF_SHEET_NAMES", "suffix")

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("sheet-names", "error", "")
		flags.String("encoding", "utf-8", "")
		require.NoError(t, flags.Parse([]string{"--sheet-names=error"}))

		cfg, err := Load("", flags)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.SheetNames)
		assert.Equal(t, "utf-8", cfg.Encoding)
	})

	t.Run("invalid config file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "tabledef.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("sheet_names: rename\n"), 0o644))

		_, err := Load(configFile, nil)
		assert.Error(t, err)
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.Index.Widths = []float64{6, 0}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Layout.Table.Centered = []int{0}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.IndexTitle = " "
	assert.Error(t, cfg.Validate())
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SheetNames = "suffix"
	cfg.Strict = true

	opts := cfg.Options(nil)
	assert.Equal(t, render.NameSuffix, opts.NamePolicy)
	assert.True(t, opts.Strict)
	assert.Equal(t, cfg.Layout, opts.Layout)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabledef.yaml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}
