package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors the live view's chrome. Ribbon colors always come from the
// scene palette.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Graph  lipgloss.Color
}

var (
	ThemeAutumn = Theme{
		Name:   "autumn",
		Title:  lipgloss.Color("#d69836"), // Mustard
		Accent: lipgloss.Color("#a33232"), // Maroon
		Text:   lipgloss.Color("#f0e6d2"),
		Muted:  lipgloss.Color("#7a7062"),
		Border: lipgloss.Color("#3a3a3a"),
		Graph:  lipgloss.Color("#6b8e23"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#00a8cc"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Border: lipgloss.Color("#0a2a44"),
		Graph:  lipgloss.Color("#00ff88"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Title:  lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Border: lipgloss.Color("#444444"),
		Graph:  lipgloss.Color("#cccccc"),
	}

	CurrentTheme = ThemeAutumn

	Themes = []Theme{
		ThemeAutumn,
		ThemeOcean,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, or autumn.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeAutumn
}

// SetTheme makes name the theme new live views start with.
func SetTheme(name string) error {
	for _, t := range Themes {
		if t.Name == name {
			CurrentTheme = t
			return nil
		}
	}
	return fmt.Errorf("unknown theme: %s (available: %v)", name, ThemeNames())
}

// NextTheme returns the theme after current, wrapping around.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
