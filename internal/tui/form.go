package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/jacksmith/plantpal/internal/ops"
)

const (
	fieldName = iota
	fieldWater
	fieldSun
	fieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Plant Name:",
	"Water Every (days):",
	"Sunlight Level:",
	"Image (optional):",
}

// addForm collects the fields for a new plant.
type addForm struct {
	inputs  [fieldCount]textinput.Model
	focused int
	err     error
}

func newAddForm() addForm {
	var f addForm
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		f.inputs[i] = in
	}
	f.inputs[fieldName].Placeholder = "Monstera"
	f.inputs[fieldWater].Placeholder = "7"
	f.inputs[fieldWater].CharLimit = 4
	f.inputs[fieldSun].Placeholder = "Low / Medium / High"
	f.inputs[fieldSun].SetValue(string(model.SunlightMedium))
	f.inputs[fieldImage].Placeholder = "path/to/photo.jpg"
	return f
}

// focus moves keyboard focus to the current field.
func (f *addForm) focus() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focused {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

func (f *addForm) move(delta int) tea.Cmd {
	f.focused = (f.focused + delta + fieldCount) % fieldCount
	return f.focus()
}

// plant validates the form and builds a plant watered on today.
func (f addForm) plant(m *Model) (*model.Plant, error) {
	name := f.inputs[fieldName].Value()
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}

	interval, err := model.ParseInterval(f.inputs[fieldWater].Value())
	if err != nil {
		return nil, err
	}
	sun, err := model.ParseSunlight(f.inputs[fieldSun].Value())
	if err != nil {
		return nil, err
	}

	p, err := model.NewPlant(name, interval, sun, "", m.today)
	if err != nil {
		return nil, err
	}

	image := strings.TrimSpace(f.inputs[fieldImage].Value())
	p.ImagePath, err = ops.ImportPhoto(m.photos, image, p.Name)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = listView
		m.message = ""
		return m, nil

	case "tab", "down":
		cmd := m.form.move(1)
		return m, cmd

	case "shift+tab", "up":
		cmd := m.form.move(-1)
		return m, cmd

	case "enter":
		if m.form.focused < fieldCount-1 {
			cmd := m.form.move(1)
			return m, cmd
		}
		return m.submitForm()

	case "ctrl+s":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focused], cmd = m.form.inputs[m.form.focused].Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	p, err := m.form.plant(&m)
	if err != nil {
		m.form.err = err
		return m, nil
	}

	m.coll.Add(*p)
	if m.photos != nil && m.photos.Owns(p.ImagePath) {
		m.pendingPhotoImports = append(m.pendingPhotoImports, p.ImagePath)
	}
	m.logger.Debug().Str("id", p.ID).Str("name", p.Name).Msg("plant added")
	m.mode = listView
	m.err = nil
	m.message = fmt.Sprintf("Added %s.", p.Name)
	m.refreshList(p.ID)
	return m, nil
}

func (m Model) viewForm() string {
	var b strings.Builder
	b.WriteString(m.styles.text.Bold(true).Render("Add Plant"))
	b.WriteString("\n\n")
	for i, in := range m.form.inputs {
		b.WriteString(m.styles.label.Render(fieldLabels[i]))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if m.form.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.errorText.Render(m.form.err.Error()))
		b.WriteString("\n")
	}
	return m.styles.panel.Render(b.String())
}
