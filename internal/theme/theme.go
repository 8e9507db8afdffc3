package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the reader
type Theme struct {
	Name string

	// Text colors
	Text       lipgloss.Color
	Invocation lipgloss.Color
	Marker     lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color

	// UI element colors
	Border    lipgloss.Color
	Highlight lipgloss.Color
}

// Available themes
var (
	// Midnight follows the dark and gold palette of the mobile app.
	Midnight = Theme{
		Name:       "Midnight",
		Text:       lipgloss.Color("#F5F5F5"),
		Invocation: lipgloss.Color("#FFD700"),
		Marker:     lipgloss.Color("#FFD700"),
		Accent:     lipgloss.Color("#E63946"),
		Muted:      lipgloss.Color("#888888"),
		Error:      lipgloss.Color("#FF5555"),
		Border:     lipgloss.Color("#2A2A2A"),
		Highlight:  lipgloss.Color("#1E1E1E"),
	}

	Parchment = Theme{
		Name:       "Parchment",
		Text:       lipgloss.Color("#3B2F2F"),
		Invocation: lipgloss.Color("#8B4513"),
		Marker:     lipgloss.Color("#B8860B"),
		Accent:     lipgloss.Color("#A0522D"),
		Muted:      lipgloss.Color("#9C8C74"),
		Error:      lipgloss.Color("#B22222"),
		Border:     lipgloss.Color("#D8C8A8"),
		Highlight:  lipgloss.Color("#EFE4CC"),
	}

	Dracula = Theme{
		Name:       "Dracula",
		Text:       lipgloss.Color("#f8f8f2"),
		Invocation: lipgloss.Color("#50fa7b"),
		Marker:     lipgloss.Color("#f1fa8c"),
		Accent:     lipgloss.Color("#ff79c6"),
		Muted:      lipgloss.Color("#6272a4"),
		Error:      lipgloss.Color("#ff5555"),
		Border:     lipgloss.Color("#44475a"),
		Highlight:  lipgloss.Color("#44475a"),
	}
)

var byKey = map[string]Theme{
	"midnight":  Midnight,
	"parchment": Parchment,
	"dracula":   Dracula,
}

// AllThemes returns a list of all available themes
func AllThemes() []Theme {
	return []Theme{Midnight, Parchment, Dracula}
}

// GetTheme returns a theme by key, defaulting to Midnight if not found
func GetTheme(key string) Theme {
	if theme, ok := byKey[key]; ok {
		return theme
	}
	return Midnight
}

// Styles are the lipgloss styles every screen renders with.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Header     lipgloss.Style
	Text       lipgloss.Style
	Invocation lipgloss.Style
	Marker     lipgloss.Style
	Bookmark   lipgloss.Style
	Selected   lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
}

func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Invocation),
		Subtitle: lipgloss.NewStyle().
			Italic(true).
			Foreground(t.Accent),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Invocation).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Text: lipgloss.NewStyle().
			Foreground(t.Text),
		Invocation: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Invocation),
		Marker: lipgloss.NewStyle().
			Foreground(t.Marker),
		Bookmark: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Marker),
		Selected: lipgloss.NewStyle().
			Background(t.Highlight),
		Help: lipgloss.NewStyle().
			Foreground(t.Muted),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),
	}
}
