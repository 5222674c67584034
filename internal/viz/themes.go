package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Bright  lipgloss.Color
	Mid     lipgloss.Color
	Faint   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Warning lipgloss.Color
}

var (
	// ThemeAzure matches the #007bff particles of the web page.
	ThemeAzure = Theme{
		Name:    "azure",
		Bright:  lipgloss.Color("#007bff"),
		Mid:     lipgloss.Color("#0a5cb8"),
		Faint:   lipgloss.Color("#1c3a5e"),
		Text:    lipgloss.Color("#e6f0ff"),
		Muted:   lipgloss.Color("#5c6b80"),
		Border:  lipgloss.Color("#25405f"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Bright:  lipgloss.Color("#ffffff"),
		Mid:     lipgloss.Color("#aaaaaa"),
		Faint:   lipgloss.Color("#555555"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Border:  lipgloss.Color("#444444"),
		Warning: lipgloss.Color("#ffaa00"),
	}
)

var themes = map[string]Theme{
	ThemeAzure.Name:   ThemeAzure,
	ThemeMinimal.Name: ThemeMinimal,
}

// ThemeByName returns the named theme, falling back to azure.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return ThemeAzure
}
