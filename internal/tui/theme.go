package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a color palette for the terminal UI. Themes are plain values;
// the model holds the active one and passes it to rendering.
type Theme struct {
	Name        string
	Background  lipgloss.Color
	Panel       lipgloss.Color
	HeaderBg    lipgloss.Color
	HeaderText  lipgloss.Color
	Button      lipgloss.Color
	ButtonHover lipgloss.Color
	ButtonText  lipgloss.Color
	Text        lipgloss.Color
	Accent      lipgloss.Color
	ListBg      lipgloss.Color
	ListFg      lipgloss.Color
}

// LightTheme returns the light palette.
func LightTheme() Theme {
	return Theme{
		Name:        "light",
		Background:  lipgloss.Color("#FAFAFA"),
		Panel:       lipgloss.Color("#F0F0F0"),
		HeaderBg:    lipgloss.Color("#E0E0E0"),
		HeaderText:  lipgloss.Color("#333333"),
		Button:      lipgloss.Color("#8BC34A"),
		ButtonHover: lipgloss.Color("#7CB342"),
		ButtonText:  lipgloss.Color("#FFFFFF"),
		Text:        lipgloss.Color("#333333"),
		Accent:      lipgloss.Color("#DCEDC8"),
		ListBg:      lipgloss.Color("#F0F0F0"),
		ListFg:      lipgloss.Color("#333333"),
	}
}

// DarkTheme returns the dark palette.
func DarkTheme() Theme {
	return Theme{
		Name:        "dark",
		Background:  lipgloss.Color("#121212"),
		Panel:       lipgloss.Color("#1E1E1E"),
		HeaderBg:    lipgloss.Color("#1F2933"),
		HeaderText:  lipgloss.Color("#E5E5E5"),
		Button:      lipgloss.Color("#4CAF50"),
		ButtonHover: lipgloss.Color("#66BB6A"),
		ButtonText:  lipgloss.Color("#FFFFFF"),
		Text:        lipgloss.Color("#E5E5E5"),
		Accent:      lipgloss.Color("#2E7D32"),
		ListBg:      lipgloss.Color("#1E1E1E"),
		ListFg:      lipgloss.Color("#E5E5E5"),
	}
}

// ThemeByName returns the named theme, falling back to light.
func ThemeByName(name string) Theme {
	if name == "dark" {
		return DarkTheme()
	}
	return LightTheme()
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return LightTheme()
	}
	return DarkTheme()
}
