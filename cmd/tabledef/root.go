package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/tabledef-go/internal/config"
	"github.com/ukaji3/tabledef-go/pkg/tabledef"
)

// defaultInputName is looked up next to the executable when convert gets no argument.
const defaultInputName = "테이블정의서.md"

var (
	cfgFile    string
	verbose    bool
	outputPath string
	logger     *slog.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabledef",
		Short: "Generate table-definition workbooks",
		Long: `tabledef turns a database table-definition document into an xlsx workbook
with one index sheet and one formatted sheet per table.

Inputs:
  convert: a markdown document with "## <N>. <name> (<description>)" sections
  schema:  a YAML schema file listing categories, tables and columns`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tabledef.yaml or ~/.tabledef/tabledef.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// addConversionFlags registers the flags shared by commands that build workbooks.
func addConversionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (default: input path with .xlsx)")
	addParseFlags(cmd)
	cmd.Flags().Bool("strict", false, "Reject duplicate table numbers")
	cmd.Flags().String("sheet-names", "error", "Sheet name collision policy: error or suffix")
}

// addParseFlags registers the flags that affect markdown parsing.
func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().String("encoding", "utf-8", "Input text encoding (utf-8, euc-kr, utf-16le, ...)")
	cmd.Flags().String("index-title", "테이블 목록", "Heading of the index block and title of the index sheet")
}

func loadOptions(cmd *cobra.Command) (tabledef.Options, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return tabledef.Options{}, err
	}
	return cfg.Options(logger), nil
}

func defaultInput() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultInputName
	}
	return filepath.Join(filepath.Dir(exe), defaultInputName)
}

func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".xlsx"
}

func resolveOutput(input string) string {
	if outputPath != "" {
		return outputPath
	}
	return defaultOutput(input)
}
