package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jacksmith/plantpal/internal/model"
)

// Status colors stay the same in both themes.
var (
	overdueColor  = lipgloss.Color("#E53935")
	dueTodayColor = lipgloss.Color("#FB8C00")
	healthyColor  = lipgloss.Color("#43A047")
)

// styles is the set of lipgloss styles derived from one Theme.
type styles struct {
	header       lipgloss.Style
	headerButton lipgloss.Style
	banner       lipgloss.Style
	item         lipgloss.Style
	itemDesc     lipgloss.Style
	selected     lipgloss.Style
	selectedDesc lipgloss.Style
	panel        lipgloss.Style
	label        lipgloss.Style
	text         lipgloss.Style
	muted        lipgloss.Style
	message      lipgloss.Style
	errorText    lipgloss.Style
	help         lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(t.HeaderBg).
			Foreground(t.HeaderText),

		headerButton: lipgloss.NewStyle().
			Padding(0, 1).
			Background(t.Button).
			Foreground(t.ButtonText),

		banner: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Button).
			Foreground(t.Text),

		item: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(t.ListFg),

		itemDesc: lipgloss.NewStyle().
			PaddingLeft(2).
			Faint(true).
			Foreground(t.ListFg),

		selected: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Button).
			Foreground(t.Button),

		selectedDesc: lipgloss.NewStyle().
			PaddingLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Button).
			Foreground(t.ButtonHover),

		panel: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Foreground(t.Text),

		label: lipgloss.NewStyle().
			Bold(true).
			Width(20).
			Foreground(t.Text),

		text:      lipgloss.NewStyle().Foreground(t.Text),
		muted:     lipgloss.NewStyle().Faint(true).Foreground(t.Text),
		message:   lipgloss.NewStyle().Foreground(t.Button),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(overdueColor),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// statusBadge renders a short colored label for a watering status.
func statusBadge(status model.WaterStatus) string {
	style := lipgloss.NewStyle().Bold(true)
	switch status {
	case model.StatusOverdue:
		return style.Foreground(overdueColor).Render("overdue")
	case model.StatusDueToday:
		return style.Foreground(dueTodayColor).Render("due today")
	default:
		return style.Foreground(healthyColor).Render("healthy")
	}
}
