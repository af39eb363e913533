package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long:  `Shows the color themes from the active configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runThemes,
}

func runThemes(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Available themes:")
	fmt.Println()

	maxLen := 4 // "Name" header
	for _, name := range cfg.ThemeNames() {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Name", "Background")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "----------")

	for _, t := range cfg.Themes {
		marker := ""
		if t.Name == cfg.DefaultTheme {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxLen, t.Name, t.Background, marker)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --theme <name>' to pick one, or press T in game.")
	return nil
}
