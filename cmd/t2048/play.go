package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var flagScreenshotDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of 2048",
	Long: `Start a single game of 2048.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  R                - New game
  T                - Next color theme
  Ctrl+S           - Save a text screenshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options (share of 4s among new tiles):
  easy   - 5%
  normal - 10%
  hard   - 25%

Examples:
  t2048 play
  t2048 play --difficulty hard
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Directory for Ctrl+S screenshots (default ~/.t2048/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runErr := tui.RunGame(tui.GameOptions{
		Rules:         rulesFrom(cfg),
		Config:        runtimeConfig(),
		Store:         resultStore(store),
		Logger:        logger,
		Themes:        tui.NewThemeSet(cfg, flagTheme, nil),
		Player:        currentUser(),
		ScreenshotDir: flagScreenshotDir,
	})
	if runErr != nil {
		logger.Error("game failed", "error", runErr)
	}
	return runErr
}
