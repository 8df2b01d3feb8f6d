package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jacksmith/plantpal/internal/cli"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/jacksmith/plantpal/internal/photo"
)

type plantItem struct {
	plant  model.Plant
	status model.WaterStatus
	due    string
}

func newPlantItem(p model.Plant, today time.Time) plantItem {
	return plantItem{
		plant:  p,
		status: model.ComputeStatus(&p, today),
		due:    cli.DueText(&p, today),
	}
}

func (i plantItem) FilterValue() string {
	return i.plant.Name
}

func (i plantItem) Title() string {
	marker := "▫"
	if photo.Exists(i.plant.ImagePath) {
		marker = "▣"
	}
	return marker + " " + i.plant.Name
}

func (i plantItem) Description() string {
	return fmt.Sprintf("every %d days | %s sun | %s", i.plant.WaterIntervalDays, i.plant.Sunlight, i.due)
}

// plantDelegate renders each plant as a two-line card with a status badge.
type plantDelegate struct {
	list.DefaultDelegate
	styles styles
}

func newPlantDelegate(st styles) plantDelegate {
	d := plantDelegate{DefaultDelegate: list.NewDefaultDelegate(), styles: st}
	d.SetHeight(2)
	d.SetSpacing(1)
	return d
}

func (d plantDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	p, ok := item.(plantItem)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	title := p.Title()
	desc := p.Description()

	if index == m.Index() {
		title = d.styles.selected.Render(title)
		desc = d.styles.selectedDesc.Render(desc)
	} else {
		title = d.styles.item.Render(title)
		desc = d.styles.itemDesc.Render(desc)
	}

	fmt.Fprintf(w, "%s  %s\n%s", title, statusBadge(p.status), desc)
}

func newPlantList(st styles, width, height int) list.Model {
	l := list.New(nil, newPlantDelegate(st), width, height)
	l.Title = ""
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	return l
}

// refreshList rebuilds the list items from the collection. The plant with
// selectID is selected when given; otherwise the cursor position is kept.
func (m *Model) refreshList(selectID string) {
	plants := m.coll.All()
	items := make([]list.Item, len(plants))
	selected := m.list.Index()
	for i, p := range plants {
		items[i] = newPlantItem(p, m.today)
		if selectID != "" && p.ID == selectID {
			selected = i
		}
	}
	m.list.SetItems(items)

	if selected >= len(items) {
		selected = len(items) - 1
	}
	if selected >= 0 {
		m.list.Select(selected)
	}
}

// selectedID returns the ID of the highlighted plant, or "" for an empty list.
func (m Model) selectedID() string {
	if item, ok := m.list.SelectedItem().(plantItem); ok {
		return item.plant.ID
	}
	return ""
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" {
		m.confirmQuit = false
	}

	switch key {
	case "q":
		if m.coll.Dirty() && !m.confirmQuit {
			m.confirmQuit = true
			m.err = nil
			m.message = "You have unsaved changes. Press q again to quit, or s to save."
			return m, nil
		}
		m.discardUnsaved()
		return m, tea.Quit

	case "a":
		m.form = newAddForm()
		m.mode = addView
		m.message = ""
		m.err = nil
		cmd := m.form.focus()
		return m, cmd

	case "enter":
		if id := m.selectedID(); id != "" {
			m.detailID = id
			m.mode = detailView
			m.message = ""
			m.err = nil
		} else {
			m.message = "Pick a plant first."
		}
		return m, nil

	case "w":
		if id := m.selectedID(); id != "" {
			m.water(id)
		} else {
			m.message = "Pick a plant first."
		}
		return m, nil

	case "d":
		if id := m.selectedID(); id != "" {
			m.remove(id)
		} else {
			m.message = "Select a plant to delete."
		}
		return m, nil

	case "s":
		m.save()
		return m, nil

	case "t":
		m.toggleTheme()
		return m, nil

	case "c":
		if m.reminder == "" {
			m.message = "No plants need water."
			return m, nil
		}
		return m, copyToClipboard(m.clipboard, m.reminder)

	case "esc":
		if m.showReminder {
			m.showReminder = false
			m.list.SetSize(m.width, m.listHeight())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) viewList() string {
	var b strings.Builder

	if m.showReminder {
		b.WriteString(m.styles.banner.Render(m.reminder))
		b.WriteString("\n")
	}

	if m.coll.Len() == 0 {
		b.WriteString(m.styles.muted.Render("No plants yet. Press a to add one."))
		b.WriteString("\n")
		return b.String()
	}

	stats := m.coll.Stats(m.today)
	b.WriteString(m.styles.muted.Render(fmt.Sprintf("%d plants | %d overdue | %d due today | %d healthy",
		stats.Total, stats.Overdue, stats.DueToday, stats.Healthy)))
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.header.Render("🌿 My Plant Pal")
	label := "Dark Mode"
	if m.theme.Name == "dark" {
		label = "Light Mode"
	}
	button := m.styles.headerButton.Render("t " + label)

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + button
}

func (m Model) viewStatus() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(m.styles.errorText.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString(m.styles.message.Render(m.message))
		b.WriteString("\n")
	}

	var help string
	switch m.mode {
	case addView:
		help = "tab next field | shift+tab previous | enter save | esc cancel"
	case detailView:
		help = "w mark watered | d delete | c copy reminder | esc back"
	default:
		help = "↑/↓ move | a add | enter details | w water | d delete | s save | t theme | c copy reminder | q quit"
	}
	if m.coll.Dirty() {
		help = "* unsaved | " + help
	}
	b.WriteString(m.styles.help.Render(help))
	return b.String()
}
