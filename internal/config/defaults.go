package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the built-in configuration: classic rules and five themes.
func DefaultConfig() Config {
	return Config{
		Rules: RulesConfig{
			WinTile:    2048,
			Spawn4Prob: 0.10,
		},
		DefaultTheme: "light",
		Themes: []ThemeConfig{
			{
				Name:       "light",
				Background: "#faf8ef",
				Grid:       "#bbada0",
				Text:       "#f9f6f2",
				TextDark:   "#776e65",
				Muted:      "#a39489",
				Accent:     "#edc22e",
				Tiles: map[int]string{
					0:    "#cdc1b4",
					2:    "#eee4da",
					4:    "#ede0c8",
					8:    "#f2b179",
					16:   "#f59563",
					32:   "#f67c5f",
					64:   "#f65e3b",
					128:  "#edcf72",
					256:  "#edcc61",
					512:  "#edc850",
					1024: "#edc53f",
					2048: "#edc22e",
				},
				Overflow: "#3c3a32",
			},
			{
				Name:       "blue",
				Background: "#eaf2fb",
				Grid:       "#8fa9c4",
				Text:       "#f4f8fc",
				TextDark:   "#2f4a66",
				Muted:      "#6f8aa6",
				Accent:     "#1e88e5",
				Tiles: map[int]string{
					0:    "#c9d8e8",
					2:    "#e3eef9",
					4:    "#cfe2f5",
					8:    "#90caf9",
					16:   "#64b5f6",
					32:   "#42a5f5",
					64:   "#2196f3",
					128:  "#1e88e5",
					256:  "#1976d2",
					512:  "#1565c0",
					1024: "#0d47a1",
					2048: "#0a3d91",
				},
				Overflow: "#0b2545",
			},
			{
				Name:       "purple",
				Background: "#f5eefa",
				Grid:       "#b39ddb",
				Text:       "#faf5ff",
				TextDark:   "#4a2c6b",
				Muted:      "#8e72ad",
				Accent:     "#8e24aa",
				Tiles: map[int]string{
					0:    "#d9c9e8",
					2:    "#f3e5f5",
					4:    "#e1bee7",
					8:    "#ce93d8",
					16:   "#ba68c8",
					32:   "#ab47bc",
					64:   "#9c27b0",
					128:  "#8e24aa",
					256:  "#7b1fa2",
					512:  "#6a1b9a",
					1024: "#5e1790",
					2048: "#4a148c",
				},
				Overflow: "#2a0a4f",
			},
			{
				Name:       "red",
				Background: "#fdf0ef",
				Grid:       "#d7a19c",
				Text:       "#fff6f5",
				TextDark:   "#6b2c28",
				Muted:      "#a86a64",
				Accent:     "#e53935",
				Tiles: map[int]string{
					0:    "#ecd0cd",
					2:    "#ffebee",
					4:    "#ffcdd2",
					8:    "#ef9a9a",
					16:   "#e57373",
					32:   "#ef5350",
					64:   "#f44336",
					128:  "#e53935",
					256:  "#d32f2f",
					512:  "#c62828",
					1024: "#b71c1c",
					2048: "#9a1515",
				},
				Overflow: "#4a0d0d",
			},
			{
				Name:       "green",
				Background: "#eff8f0",
				Grid:       "#9cc7a0",
				Text:       "#f4fbf5",
				TextDark:   "#2c5a31",
				Muted:      "#6c9a70",
				Accent:     "#43a047",
				Tiles: map[int]string{
					0:    "#cfe5d1",
					2:    "#e8f5e9",
					4:    "#c8e6c9",
					8:    "#a5d6a7",
					16:   "#81c784",
					32:   "#66bb6a",
					64:   "#4caf50",
					128:  "#43a047",
					256:  "#388e3c",
					512:  "#2e7d32",
					1024: "#1b5e20",
					2048: "#145218",
				},
				Overflow: "#0b2e0e",
			},
		},
	}
}
