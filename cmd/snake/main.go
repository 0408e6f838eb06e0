// Command snake reduces a single configuration to its canonical parity
// snake and prints the resulting path in the textual configuration
// format, optionally logging stage progress as JSON lines to a file.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/rofilog"
	"github.com/rofi-go/rofi/snake"
	"github.com/rofi-go/rofi/textfmt"
)

var logPath string

var rootCmd = &cobra.Command{
	Use:   "snake <init-cfg> [out]",
	Short: "Reduce a configuration to its canonical parity snake",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSnake,
}

func init() {
	rootCmd.Flags().StringVar(&logPath, "log", "", "write progress JSON lines to this file")
}

func runSnake(cmd *cobra.Command, args []string) error {
	logger := rofilog.New(os.Stderr, slog.LevelInfo)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("reading init configuration: %w", err)
	}
	defer f.Close()
	start, err := textfmt.ParseConfiguration(f)
	if err != nil {
		return err
	}

	var progress *os.File
	if logPath != "" {
		progress, err = os.Create(logPath)
		if err != nil {
			return err
		}
		defer progress.Close()
	}

	result := snake.ReconfigToSnake(start, snake.DefaultOptions())
	if progress != nil {
		enc := json.NewEncoder(progress)
		for i, stage := range result.StageReports {
			record := struct {
				RunID string `json:"run_id"`
				snake.StageReport
			}{RunID: result.RunID.String(), StageReport: stage}
			if err := enc.Encode(record); err != nil {
				return err
			}
			logger.Info("stage complete", "run_id", result.RunID, "index", i, "name", stage.Name, "finished", stage.Finished)
		}
	}
	if !result.Finished {
		logger.Error("snake reduction did not complete")
		return fmt.Errorf("snake: reduction incomplete")
	}

	out := os.Stdout
	if len(args) == 2 {
		var err error
		out, err = os.Create(args[1])
		if err != nil {
			return err
		}
		defer out.Close()
	}
	for _, c := range result.Path {
		if err := writeConfig(out, c); err != nil {
			return err
		}
	}
	return nil
}

func writeConfig(f *os.File, c *configuration.Configuration) error {
	return textfmt.WriteConfiguration(f, c)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
