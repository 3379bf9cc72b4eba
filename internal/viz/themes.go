package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the live view.
type Theme struct {
	Name   string
	Trace  lipgloss.Color
	Rings  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:   "retro",
		Trace:  lipgloss.Color("#00ff00"),
		Rings:  lipgloss.Color("#005500"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
	}

	ThemeCrimson = Theme{
		Name:   "crimson",
		Trace:  lipgloss.Color("#ff4466"),
		Rings:  lipgloss.Color("#662233"),
		Text:   lipgloss.Color("#ffccd5"),
		Muted:  lipgloss.Color("#884455"),
		Accent: lipgloss.Color("#ffaa00"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Trace:  lipgloss.Color("#ffffff"),
		Rings:  lipgloss.Color("#555555"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Accent: lipgloss.Color("#0088ff"),
	}
)

var themes = []Theme{ThemeRetroGreen, ThemeCrimson, ThemeMinimal}

// CurrentTheme is the active theme
var CurrentTheme = ThemeRetroGreen

func SetTheme(name string) bool {
	for _, t := range themes {
		if t.Name == name {
			CurrentTheme = t
			return true
		}
	}
	return false
}

func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
