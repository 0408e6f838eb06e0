// Command reconfig searches for a reconfiguration path between two
// configurations given in the textual configuration format and prints
// the resulting path, also in that format, to stdout.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rofi-go/rofi/configuration"
	"github.com/rofi-go/rofi/rofilog"
	"github.com/rofi-go/rofi/search"
	"github.com/rofi-go/rofi/textfmt"
)

var heuristicName string

var rootCmd = &cobra.Command{
	Use:   "reconfig <init-cfg> <goal-cfg>",
	Short: "Plan a reconfiguration path between two configurations",
	Args:  cobra.ExactArgs(2),
	RunE:  runReconfig,
}

func init() {
	rootCmd.Flags().StringVar(&heuristicName, "heuristic", "trivial",
		"search heuristic: trivial|joint-l2|shoe-center|shoe-transform")
}

func runReconfig(cmd *cobra.Command, args []string) error {
	logger := rofilog.New(os.Stderr, slog.LevelInfo)

	start, err := loadConfiguration(args[0])
	if err != nil {
		return fmt.Errorf("reading init configuration: %w", err)
	}
	goal, err := loadConfiguration(args[1])
	if err != nil {
		return fmt.Errorf("reading goal configuration: %w", err)
	}

	h, err := resolveHeuristic(heuristicName)
	if err != nil {
		return err
	}

	logger.Info("starting search", "heuristic", heuristicName, "modules", start.Len())
	path, ok := search.AStar(start, goal, 90, 1, h)
	if !ok {
		logger.Error("no reconfiguration path found")
		return fmt.Errorf("reconfig: no path found")
	}
	logger.Info("path found", "steps", len(path))

	for _, c := range path {
		if err := textfmt.WriteConfiguration(os.Stdout, c); err != nil {
			return err
		}
	}
	return nil
}

func loadConfiguration(path string) (*configuration.Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return textfmt.ParseConfiguration(f)
}

func resolveHeuristic(name string) (search.Heuristic, error) {
	switch name {
	case "trivial":
		return search.TrivialHeuristic, nil
	case "joint-l2":
		return search.JointAngleL2Heuristic, nil
	case "shoe-center":
		return search.ShoeCenterHeuristic, nil
	case "shoe-transform":
		return search.ShoeTransformHeuristic, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
