// Package model defines the core data structures for plantpal.
package model

import "time"

// DateLayout is the on-disk and display format for calendar dates.
const DateLayout = "2006-01-02"

// Sunlight represents how much light a plant needs.
type Sunlight string

const (
	SunlightLow    Sunlight = "Low"
	SunlightMedium Sunlight = "Medium"
	SunlightHigh   Sunlight = "High"
)

// SunlightLevels lists the valid sunlight levels in display order.
var SunlightLevels = []Sunlight{SunlightLow, SunlightMedium, SunlightHigh}

// Valid reports whether s is one of the known levels.
func (s Sunlight) Valid() bool {
	switch s {
	case SunlightLow, SunlightMedium, SunlightHigh:
		return true
	}
	return false
}

// WaterStatus represents the derived watering state of a plant.
type WaterStatus string

const (
	StatusOverdue  WaterStatus = "overdue"
	StatusDueToday WaterStatus = "due_today"
	StatusHealthy  WaterStatus = "healthy"
)

// Plant is a single tracked houseplant.
type Plant struct {
	ID                string
	Name              string
	WaterIntervalDays int
	Sunlight          Sunlight
	ImagePath         string    // optional; may point to a file that no longer exists
	LastWatered       time.Time // calendar date, midnight UTC
}

// Day truncates t to its calendar date, expressed as midnight UTC.
// The date is taken in t's own location, so a local "today" stays today.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date.
func Today() time.Time {
	return Day(time.Now())
}
