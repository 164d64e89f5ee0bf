package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/tabledef-go/pkg/tabledef"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema <schema.yaml>",
		Short: "Convert a YAML schema file into a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runSchema,
	}
	addConversionFlags(cmd)
	return cmd
}

func runSchema(cmd *cobra.Command, args []string) error {
	input := args[0]

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	result, err := tabledef.ConvertSchema(input, resolveOutput(input), opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "workbook written: %s\n", result.Output)
	return nil
}
