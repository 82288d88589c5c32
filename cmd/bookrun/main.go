// bookrun is a terminal game: help two friends find their lost course
// materials and carry every book to the shelf without touching a bug.
//
// Usage:
//
//	bookrun play             - Play the game
//	bookrun config           - Print the effective tuning as YAML
//	bookrun story            - Print the dialogue
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write logs to a file (the TUI owns the terminal)
//	--verbose          - Log every game event
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bookrun",
	Short: "Book Run - find the course materials, dodge the bugs",
	Long: `Book Run is a terminal game. Miriam and Mike lost their course
materials on the way to class. Pick up each book, carry it to an empty
slot on the top row, and stay clear of the bugs.

Available commands:
  play     - Play the game
  config   - Print the effective tuning as YAML
  story    - Print the dialogue

Examples:
  bookrun play
  bookrun play --difficulty hard
  bookrun play --seed 42 --log-file bookrun.log --verbose
  bookrun config --default > ~/.bookrun/configs/bookrun.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(storyCmd)
}

// newLogger builds the logger for a command. Without --log-file, logs go to
// fallback; pass io.Discard when the terminal is busy.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bookrun",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
