package main

import (
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start 2048 with the main menu",
	Long: `Start 2048 in interactive menu mode.

The menu starts new games, shows the high score table and switches
color themes. After a game, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change theme (on the Theme item)
  Enter/Space  - Select
  Q/Esc        - Quit

Examples:
  t2048 menu
  t2048 menu --theme purple
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	return tui.RunSession(tui.SessionOptions{
		Rules:  rulesFrom(cfg),
		Config: runtimeConfig(),
		Store:  resultStore(store),
		Logger: logger,
		Themes: tui.NewThemeSet(cfg, flagTheme, nil),
		Player: currentUser(),
	})
}

// currentUser names the local player in stored results.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
