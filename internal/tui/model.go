// Package tui implements the interactive plant list.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/plantpal/internal/logging"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/jacksmith/plantpal/internal/ops"
	"github.com/rs/zerolog"
)

type viewMode int

const (
	listView viewMode = iota
	addView
	detailView
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures a Model.
type Options struct {
	Theme            Theme
	Today            time.Time
	ReminderTemplate string
	Photos           ops.PhotoStore
	Logger           zerolog.Logger

	// Clipboard writes text to the system clipboard. Defaults to atotto/clipboard.
	Clipboard func(string) error
}

// Model is the bubbletea model for the plant list. All reads and writes of
// the collection happen inside Update.
type Model struct {
	coll      *ops.Collection
	photos    ops.PhotoStore
	logger    zerolog.Logger
	today     time.Time
	clipboard func(string) error

	theme  Theme
	styles styles

	mode     viewMode
	list     list.Model
	form     addForm
	detailID string
	width    int
	height   int

	reminder     string
	showReminder bool
	message      string
	err          error
	confirmQuit  bool

	// Managed photos of deleted plants, removed once the deletion is saved.
	pendingPhotoDeletes []string
	// Photos copied in for plants added since the last save.
	pendingPhotoImports []string
}

// New builds the model and runs the startup reminder check.
func New(coll *ops.Collection, opts Options) Model {
	if opts.Theme.Name == "" {
		opts.Theme = LightTheme()
	}
	if opts.Today.IsZero() {
		opts.Today = model.Today()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	m := Model{
		coll:      coll,
		photos:    opts.Photos,
		logger:    logging.Component(opts.Logger, "tui"),
		today:     model.Day(opts.Today),
		clipboard: opts.Clipboard,
		theme:     opts.Theme,
		styles:    newStyles(opts.Theme),
		mode:      listView,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.list = newPlantList(m.styles, m.width, m.listHeight())
	m.refreshList("")

	names := coll.Reminders(m.today)
	text, err := ops.RenderReminder(opts.ReminderTemplate, names, m.today)
	if err != nil {
		m.logger.Warn().Err(err).Msg("reminder template failed, using default")
		text, _ = ops.RenderReminder("", names, m.today)
	}
	m.reminder = text
	m.showReminder = text != ""
	m.list.SetSize(m.width, m.listHeight())
	m.logger.Info().Int("plants", coll.Len()).Int("reminders", len(names)).Msg("started")

	return m
}

// Theme returns the active theme.
func (m Model) Theme() Theme {
	return m.theme
}

// Reminder returns the startup reminder text, empty when nothing needs water.
func (m Model) Reminder() string {
	return m.reminder
}

func (m Model) Init() tea.Cmd {
	return nil
}

type clipboardMsg struct {
	err error
}

func copyToClipboard(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: write(text)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.listHeight())
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("failed to copy reminder: %w", msg.err)
			m.message = ""
		} else {
			m.err = nil
			m.message = "Reminder copied to clipboard."
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.discardUnsaved()
			return m, tea.Quit
		}

		switch m.mode {
		case addView:
			return m.updateForm(msg)
		case detailView:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.mode {
	case addView:
		body = m.viewForm()
	case detailView:
		body = m.viewDetail()
	default:
		body = m.viewList()
	}
	return m.viewHeader() + "\n" + body + "\n" + m.viewStatus()
}

// listHeight is the space left for the list after header, banner and footer.
func (m Model) listHeight() int {
	h := m.height - 4
	if m.showReminder {
		h -= 4
	}
	if h < 4 {
		h = 4
	}
	return h
}

// save writes the collection and settles pending photo imports and deletions.
func (m *Model) save() {
	if err := m.coll.Save(); err != nil {
		m.err = err
		m.message = ""
		return
	}
	ops.DeletePhotos(m.photos, m.pendingPhotoDeletes, m.logger)
	m.pendingPhotoDeletes = nil
	m.pendingPhotoImports = nil
	m.err = nil
	m.message = "Plants saved successfully."
}

// discardUnsaved removes photos imported for plants that were never saved.
func (m *Model) discardUnsaved() {
	if len(m.pendingPhotoImports) == 0 {
		return
	}
	m.logger.Debug().Int("photos", len(m.pendingPhotoImports)).Msg("discarding unsaved photo imports")
	ops.DeletePhotos(m.photos, m.pendingPhotoImports, m.logger)
	m.pendingPhotoImports = nil
}

// water marks the plant with id as watered today.
func (m *Model) water(id string) {
	p, err := m.coll.MarkWateredByID(id, m.today)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.message = fmt.Sprintf("%s marked as watered today.", p.Name)
	m.refreshList(id)
}

// remove deletes the plant with id and selects its neighbour.
func (m *Model) remove(id string) {
	idx := m.coll.IndexOf(id)
	p, err := m.coll.Remove(id)
	if err != nil {
		m.err = err
		return
	}
	if m.photos != nil && m.photos.Owns(p.ImagePath) {
		m.pendingPhotoDeletes = append(m.pendingPhotoDeletes, p.ImagePath)
	}
	m.err = nil
	m.message = fmt.Sprintf("Deleted %s.", p.Name)

	next := ""
	if m.coll.Len() > 0 {
		if idx >= m.coll.Len() {
			idx = m.coll.Len() - 1
		}
		if np, err := m.coll.Get(idx); err == nil {
			next = np.ID
		}
	}
	m.refreshList(next)
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.styles = newStyles(m.theme)
	m.list.SetDelegate(newPlantDelegate(m.styles))
	m.logger.Debug().Str("theme", m.theme.Name).Msg("theme toggled")
}
