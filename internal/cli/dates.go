package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var dateFormats = []string{
	model.DateLayout,
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

// numericDate matches input written as a date (2024-02-30, 13/01/2024) so
// an impossible one is rejected instead of being read as a phrase.
var numericDate = regexp.MustCompile(`^\d+[-/]\d+([-/]\d+)?`)

// ParseDate parses a calendar date from user input. Exact layouts are tried
// first, then English phrases ("yesterday", "3 days ago") relative to now.
// A phrase must make up the whole input. The result is normalized to a
// calendar day.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &model.ValidationError{Field: "date", Message: "date is empty"}
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return model.Day(t), nil
		}
	}

	if numericDate.MatchString(s) {
		return time.Time{}, &model.ValidationError{Field: "date", Message: fmt.Sprintf("%q is not a valid date", s)}
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	result, err := w.Parse(s, now)
	if err == nil && result != nil && result.Index == 0 && len(result.Text) == len(s) {
		return model.Day(result.Time), nil
	}

	return time.Time{}, &model.ValidationError{Field: "date", Message: fmt.Sprintf("cannot understand %q", s)}
}

// DueText describes when a plant next needs water relative to today,
// e.g. "due today", "due in 3 days", "overdue by 1 day".
func DueText(p *model.Plant, today time.Time) string {
	today = model.Day(today)
	due := model.DueDate(p)
	switch days := model.DaysUntilDue(p, today); {
	case days == 0:
		return "due today"
	case days > 0:
		return "due in " + span(today, due)
	default:
		return "overdue by " + span(due, today)
	}
}

// WateredText describes the last watering relative to today, e.g. "2 days ago".
func WateredText(p *model.Plant, today time.Time) string {
	watered := model.Day(p.LastWatered)
	today = model.Day(today)
	if watered.Equal(today) {
		return "today"
	}
	return humanize.RelTime(watered, today, "ago", "from now")
}

func span(from, to time.Time) string {
	return strings.TrimSpace(humanize.RelTime(from, to, "", ""))
}
