package ops

import (
	"fmt"
	"strings"
	"time"

	"github.com/cbroglie/mustache"
	"github.com/jacksmith/plantpal/internal/model"
)

// DefaultReminderTemplate lists each plant on its own line.
//
// Available data: plants (list of {name}), count, today (YYYY-MM-DD).
const DefaultReminderTemplate = `These plants need water:

{{#plants}}{{{name}}}
{{/plants}}`

// Reminders returns the names of plants that are overdue or due today,
// preserving collection order. Unlike Stats, both states share one bucket.
func Reminders(plants []model.Plant, today time.Time) []string {
	var names []string
	for i := range plants {
		if model.NeedsWater(&plants[i], today) {
			names = append(names, plants[i].Name)
		}
	}
	return names
}

// RenderReminder renders the reminder message for names.
// An empty template uses DefaultReminderTemplate. Returns "" when no plant
// needs water.
func RenderReminder(tmpl string, names []string, today time.Time) (string, error) {
	if len(names) == 0 {
		return "", nil
	}
	if strings.TrimSpace(tmpl) == "" {
		tmpl = DefaultReminderTemplate
	}

	plants := make([]map[string]string, 0, len(names))
	for _, n := range names {
		plants = append(plants, map[string]string{"name": n})
	}

	out, err := mustache.Render(tmpl, map[string]any{
		"plants": plants,
		"count":  len(names),
		"today":  model.Day(today).Format(model.DateLayout),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render reminder template: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
