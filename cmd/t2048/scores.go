package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best stored games.

On a terminal the scores open in an interactive table. When the output
is piped, a plain listing is printed instead.

Examples:
  t2048 scores
  t2048 scores --limit 5
  t2048 scores --recent
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to list")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest games instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored games")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("All scores deleted.")
		return nil
	}

	interactive := !flagScoresRecent &&
		term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, tui.NewThemeSet(cfg, flagTheme, nil), width, height)
	}

	return printScores(store)
}

// printScores writes a plain-text score listing to stdout.
func printScores(store *storage.Store) error {
	var (
		results []storage.Result
		err     error
		title   = "High Scores"
	)
	if flagScoresRecent {
		title = "Recent Games"
		results, err = store.RecentResults(flagScoresLimit)
	} else {
		results, err = store.TopResults(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-9s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-9s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "------", "----")

	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-9s  %-12s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, r.Outcome, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d (%.0f%%)  Best: %d  Best tile: %d\n",
		stats.Games, stats.Wins, stats.WinRate()*100, stats.HighScore, stats.BestTile)
	return nil
}
