package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ukaji3/tabledef-go/pkg/tabledef"
)

// settleDelay groups the burst of events an editor produces for one save.
const settleDelay = 200 * time.Millisecond

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <input.md>",
		Short: "Regenerate the workbook whenever the markdown document changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	addConversionFlags(cmd)
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	input, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	output := resolveOutput(input)

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	convert := func() {
		result, err := tabledef.ConvertMarkdown(input, output, opts)
		if err != nil {
			logger.Error("conversion failed", "input", input, "error", err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "workbook written: %s\n", result.Output)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(input), err)
	}

	convert()
	logger.Info("watching for changes", "input", input, "output", output)

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != input {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				settle.Reset(settleDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-settle.C:
			convert()
		}
	}
}
