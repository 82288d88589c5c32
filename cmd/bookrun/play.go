package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bookrun/internal/audio"
	"github.com/vovakirdan/bookrun/internal/config"
	"github.com/vovakirdan/bookrun/internal/core"
	"github.com/vovakirdan/bookrun/internal/games/bookrun"
	"github.com/vovakirdan/bookrun/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagVolume     float64
	flagNoColor    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game. Without --difficulty a picker is shown first.

Controls:
  Arrows/WASD  - Move one tile
  Space        - Continue the dialogue
  P/Esc        - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - Bugs never speed up

Examples:
  bookrun play
  bookrun play --difficulty easy
  bookrun play --mute
  bookrun play --no-color
  bookrun play --config ./my-bookrun.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", audio.DefaultConfig().Volume, "Sound volume (0-1)")
	playCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Draw without colors")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, source, err := config.LoadBookrun(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	// Get terminal size early for the difficulty picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if preset == "" {
		selected, updatedCfg, selErr := tui.RunDifficultySelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User quit the picker
		if selected == nil {
			return
		}
		preset = *selected
	}
	config.ApplyPreset(&gameCfg, preset)
	logger.Info("difficulty", "preset", preset)

	var sound audio.Player = audio.Silent{}
	if !flagMute {
		audioCfg := audio.DefaultConfig()
		audioCfg.Volume = core.ClampF(flagVolume, 0, 1)
		sound, err = audio.Open(audioCfg)
		if err != nil {
			// Continue without sound - game still works
			logger.Warn("sound disabled", "error", err)
		}
	}
	defer sound.Close()

	opts := tui.Options{Logger: logger, Sound: sound}
	if flagNoColor {
		opts.Palette = tui.MonoPalette()
	}

	game := bookrun.New(gameCfg)
	if runErr := tui.Run(game, cfg, opts); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
