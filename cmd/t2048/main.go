// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play            - Play a single game
//	t2048 menu            - Start menu with game, scores and theme picker
//	t2048 serve           - Start SSH server for remote play
//	t2048 scores          - Show high scores
//	t2048 themes          - List color themes
//	t2048 config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Path to a custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.t2048/scores.db)
//	--theme <name>        - Initial color theme
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
	flagTheme      string
	flagLogLevel   string
	flagNoScores   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 puzzle for the terminal.

Slide the tiles with the arrow keys (or WASD / hjkl). Equal tiles merge
into their sum. Reach 2048 to win; run out of moves and the game is over.

Available commands:
  play     - Play a single game
  menu     - Interactive menu with scores and themes
  serve    - Start SSH server for remote play
  scores   - View high scores
  themes   - List color themes
  config   - Print the effective configuration

Examples:
  t2048 play
  t2048 play --difficulty hard --theme blue
  t2048 menu
  t2048 serve --ssh :2222
  t2048 scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Initial color theme (see 't2048 themes')")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoScores, "no-scores", false, "Do not store finished games")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the difficulty flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagTheme != "" {
		if _, ok := cfg.Theme(flagTheme); !ok {
			return config.Config{}, fmt.Errorf("unknown theme %q (run 't2048 themes')", flagTheme)
		}
	}

	return cfg, nil
}

// rulesFrom converts the configured rules to game rules.
func rulesFrom(cfg config.Config) t2048.Rules {
	return t2048.Rules{
		WinTile:    cfg.Rules.WinTile,
		Spawn4Prob: cfg.Rules.Spawn4Prob,
	}
}

// runtimeConfig returns the terminal size and seed for a local game.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still work without it,
// so failures are logged and a nil store is returned.
func openStore(logger *log.Logger) *storage.Store {
	if flagNoScores {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// resultStore avoids wrapping a nil *storage.Store in a non-nil interface.
func resultStore(store *storage.Store) tui.ResultStore {
	if store == nil {
		return nil
	}
	return store
}

// fileLogger logs to ~/.t2048/t2048.log since the TUI owns the terminal.
// The returned close func is never nil.
func fileLogger() (*log.Logger, func(), error) {
	noop := func() {}

	dir := config.UserDir()
	if dir == "" {
		logger, err := tui.NewLogger(io.Discard, flagLogLevel, "t2048")
		return logger, noop, err
	}

	f, err := tui.OpenLogFile(filepath.Join(dir, "t2048.log"))
	if err != nil {
		return nil, noop, err
	}

	logger, err := tui.NewLogger(f, flagLogLevel, "t2048")
	if err != nil {
		f.Close()
		return nil, noop, err
	}
	return logger, func() { f.Close() }, nil
}
