package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/jacksmith/plantpal/internal/photo"
)

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "backspace":
		m.mode = listView
		return m, nil

	case "w":
		m.water(m.detailID)
		return m, nil

	case "d":
		m.remove(m.detailID)
		m.mode = listView
		return m, nil

	case "c":
		if m.reminder == "" {
			m.message = "No plants need water."
			return m, nil
		}
		return m, copyToClipboard(m.clipboard, m.reminder)
	}
	return m, nil
}

func (m Model) viewDetail() string {
	idx := m.coll.IndexOf(m.detailID)
	p, err := m.coll.Get(idx)
	if err != nil {
		return m.styles.muted.Render("Plant no longer exists. Press esc to go back.")
	}

	image := "(none)"
	if p.ImagePath != "" {
		image = p.ImagePath
		if !photo.Exists(p.ImagePath) {
			image += " (missing)"
		}
	}

	rows := [][2]string{
		{"Name:", p.Name},
		{"ID:", model.ShortID(p.ID)},
		{"Water Every:", pluralDays(p.WaterIntervalDays)},
		{"Sunlight:", string(p.Sunlight)},
		{"Last Watered:", p.LastWatered.Format(model.DateLayout) + " (" + cli.WateredText(&p, m.today) + ")"},
		{"Next Watering:", model.DueDate(&p).Format(model.DateLayout) + " (" + cli.DueText(&p, m.today) + ")"},
		{"Status:", statusBadge(model.ComputeStatus(&p, m.today))},
		{"Image:", image},
	}

	var b strings.Builder
	b.WriteString(m.styles.text.Bold(true).Render("Plant Details"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(m.styles.label.Render(row[0]))
		b.WriteString(" ")
		b.WriteString(m.styles.text.Render(row[1]))
		b.WriteString("\n")
	}
	return m.styles.panel.Render(strings.TrimRight(b.String(), "\n"))
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
