package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/tabledef-go/pkg/tabledef"
	"github.com/ukaji3/tabledef-go/pkg/tabledef/output"
)

var (
	format string
	pretty bool
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <input.md>",
		Short: "Print the sections parsed from a markdown document",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	addParseFlags(cmd)
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	doc, err := tabledef.ParseMarkdown(data, opts)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	encoded, err := output.Marshal(doc, outFormat, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
