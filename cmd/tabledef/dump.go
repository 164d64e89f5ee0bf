package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/tabledef-go/pkg/tabledef/output"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/readback"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <workbook.xlsx>",
		Short: "Print the sheets, cell text and layout of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	wb, err := readback.Read(args[0])
	if err != nil {
		return fmt.Errorf("failed to read workbook: %w", err)
	}

	encoded, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
