package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/tabledef-go/pkg/tabledef"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [input.md]",
		Short: "Convert a markdown table-definition document into a workbook",
		Long: `Convert parses the "## 테이블 목록" index block and every
"## <N>. <name> (<description>)" table section of a markdown document and
writes one worksheet per table.

Without an argument, 테이블정의서.md next to the executable is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConvert,
	}
	addConversionFlags(cmd)
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := defaultInput()
	if len(args) == 1 {
		input = args[0]
	}

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	result, err := tabledef.ConvertMarkdown(input, resolveOutput(input), opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "workbook written: %s\n", result.Output)
	return nil
}
