package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/jacksmith/plantpal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDate(t *testing.T) {
	now := day("2024-03-15")

	tests := []struct {
		input string
		want  string
	}{
		{"2024-01-08", "2024-01-08"},
		{" 2024-01-08 ", "2024-01-08"},
		{"2024/02/29", "2024-02-29"},
		{"12/25/2023", "2023-12-25"},
		{"2024-01-08T22:30:00Z", "2024-01-08"},
		{"yesterday", "2024-03-14"},
		{"today", "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input, now)
			require.NoError(t, err)
			assert.Equal(t, day(tt.want), got)
		})
	}
}

func TestParseDateErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"not a date at all",
		"not a date at all noon",
		"banana yesterday",
		"yesterday banana",
		"2024-02-30",
		"2024-13-01",
		"2023/02/29",
		"13/45/2024",
		"2024-01",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input, day("2024-03-15"))
			var verr *model.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, "date", verr.Field)
		})
	}
}

func TestDueText(t *testing.T) {
	p := &model.Plant{Name: "Monstera", WaterIntervalDays: 7, LastWatered: day("2024-01-01")}

	tests := []struct {
		today string
		want  string
	}{
		{"2024-01-08", "due today"},
		{"2024-01-07", "due in 1 day"},
		{"2024-01-05", "due in 3 days"},
		{"2024-01-09", "overdue by 1 day"},
		{"2024-01-12", "overdue by 4 days"},
	}

	for _, tt := range tests {
		t.Run(tt.today, func(t *testing.T) {
			assert.Equal(t, tt.want, DueText(p, day(tt.today)))
		})
	}
}

func TestWateredText(t *testing.T) {
	p := &model.Plant{Name: "Fern", WaterIntervalDays: 3, LastWatered: day("2024-01-10")}

	assert.Equal(t, "today", WateredText(p, day("2024-01-10")))
	assert.Equal(t, "1 day ago", WateredText(p, day("2024-01-11")))
	assert.Equal(t, "3 days ago", WateredText(p, day("2024-01-13")))
}
