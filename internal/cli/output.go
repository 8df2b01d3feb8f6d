package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/plantpal/internal/model"
	"golang.org/x/term"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiGray   = "\033[90m"
)

// colorEnabled starts from stdout terminal detection; the color config
// setting and --no-color override it.
var colorEnabled = IsTerminal(os.Stdout)

// SetColorEnabled forces color output on or off.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether plant listings are colored.
func ColorEnabled() bool {
	return colorEnabled
}

// ApplyColorMode applies the color setting from config.toml.
// "always" and "never" are absolute; anything else means auto, which colors
// only when w is a terminal.
func ApplyColorMode(mode string, w io.Writer) {
	switch mode {
	case "always":
		SetColorEnabled(true)
	case "never":
		SetColorEnabled(false)
	default:
		SetColorEnabled(IsTerminal(w))
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + ansiReset
}

// Red marks overdue plants and failures.
func Red(s string) string { return paint(ansiRed, s) }

// Yellow marks plants due today and warnings.
func Yellow(s string) string { return paint(ansiYellow, s) }

// Green marks healthy plants and success.
func Green(s string) string { return paint(ansiGreen, s) }

// Gray is for secondary details such as sunlight and missing images.
func Gray(s string) string { return paint(ansiGray, s) }

var statusPaint = map[model.WaterStatus]func(string) string{
	model.StatusOverdue:  Red,
	model.StatusDueToday: Yellow,
	model.StatusHealthy:  Green,
}

// StatusLabel renders a watering status as "[overdue]", "[due today]" or
// "[healthy]", colored to match. Unknown statuses are bracketed uncolored.
func StatusLabel(status model.WaterStatus) string {
	label := fmt.Sprintf("[%s]", status)
	if fn, ok := statusPaint[status]; ok {
		return fn(label)
	}
	return label
}

// DefaultMaxNameWidth caps the plant name column in list output.
const DefaultMaxNameWidth = 40

// Table lines up plant rows in columns two spaces apart. Widths are measured
// without color codes so colored status labels align with plain text.
type Table struct {
	rows   [][]string
	widths []int
	limits map[int]int
}

func NewTable() *Table {
	return &Table{limits: make(map[int]int)}
}

// SetMaxWidth caps column col at maxWidth visible characters. Longer cells
// are shortened with Truncate.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.limits[col] = maxWidth
}

func (t *Table) AddRow(cols ...string) {
	for i, cell := range cols {
		if i == len(t.widths) {
			t.widths = append(t.widths, 0)
		}
		t.widths[i] = max(t.widths[i], t.fit(i, visibleWidth(cell)))
	}
	t.rows = append(t.rows, cols)
}

// fit clamps width to the column's limit, if it has one.
func (t *Table) fit(col, width int) int {
	if limit, ok := t.limits[col]; ok {
		return min(width, limit)
	}
	return width
}

// Render writes the rows to w. The last column is never padded.
func (t *Table) Render(w io.Writer) {
	last := len(t.widths) - 1
	for _, row := range t.rows {
		var line strings.Builder
		for i, cell := range row {
			if limit, ok := t.limits[i]; ok {
				cell = Truncate(cell, limit)
			}
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(cell)
			if i < last {
				line.WriteString(strings.Repeat(" ", t.widths[i]-visibleWidth(cell)))
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

const ellipsis = "..."

// Truncate shortens s to at most maxWidth visible characters, ending it with
// "..." when there is room for one. Color codes before the cut are kept and
// closed with a reset.
func Truncate(s string, maxWidth int) string {
	switch {
	case maxWidth <= 0:
		return ""
	case visibleWidth(s) <= maxWidth:
		return s
	case maxWidth < len(ellipsis):
		head, _ := cut(s, maxWidth)
		return head
	}

	head, colored := cut(s, maxWidth-len(ellipsis))
	head += ellipsis
	if colored {
		head += ansiReset
	}
	return head
}

// cut returns the prefix of s holding n visible characters plus any escape
// sequences up to the next visible one, and whether it held an escape.
func cut(s string, n int) (string, bool) {
	var b strings.Builder
	colored := false
	visible := 0
	scan(s, func(r rune, escape bool) bool {
		if escape {
			colored = true
		} else if visible == n {
			return false
		} else {
			visible++
		}
		b.WriteRune(r)
		return true
	})
	return b.String(), colored
}

// visibleWidth counts the runes of s outside ANSI escape sequences.
func visibleWidth(s string) int {
	width := 0
	scan(s, func(_ rune, escape bool) bool {
		if !escape {
			width++
		}
		return true
	})
	return width
}

// scan calls fn for each rune of s, flagging runes inside an SGR escape
// sequence, until fn returns false.
func scan(s string, fn func(r rune, escape bool) bool) {
	inEscape := false
	for _, r := range s {
		escape := inEscape || r == '\033'
		switch {
		case r == '\033':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		}
		if !fn(r, escape) {
			return
		}
	}
}
