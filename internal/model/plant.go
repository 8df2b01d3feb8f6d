package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewPlant validates user-supplied fields and builds a plant watered on today.
// The returned plant has a fresh ID.
func NewPlant(name string, waterIntervalDays int, sunlight Sunlight, imagePath string, today time.Time) (*Plant, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateInterval(waterIntervalDays); err != nil {
		return nil, err
	}
	if !sunlight.Valid() {
		return nil, &ValidationError{Field: "sunlight", Message: "must be one of Low, Medium, High"}
	}

	return &Plant{
		ID:                NewID(),
		Name:              name,
		WaterIntervalDays: waterIntervalDays,
		Sunlight:          sunlight,
		ImagePath:         strings.TrimSpace(imagePath),
		LastWatered:       Day(today),
	}, nil
}

// NewID returns a new opaque plant identifier.
func NewID() string {
	return uuid.NewString()
}

// ShortID returns the first eight characters of an ID for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ValidateName checks that a plant name is not empty or whitespace-only.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "please enter a plant name"}
	}
	return nil
}

// ValidateInterval checks that the watering interval is at least one day.
func ValidateInterval(days int) error {
	if days < 1 {
		return &ValidationError{Field: "watering interval", Message: "must be at least 1 day"}
	}
	return nil
}

// ParseInterval converts user text into a watering interval.
func ParseInterval(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: "watering interval", Message: "must be a whole number"}
	}
	if err := ValidateInterval(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ParseSunlight converts user text into a sunlight level.
// Matching is case-insensitive and accepts a unique prefix ("med", "h").
func ParseSunlight(s string) (Sunlight, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", &ValidationError{Field: "sunlight", Message: "must be one of Low, Medium, High"}
	}

	var match Sunlight
	for _, level := range SunlightLevels {
		lower := strings.ToLower(string(level))
		if lower == s {
			return level, nil
		}
		if strings.HasPrefix(lower, s) {
			if match != "" {
				return "", &ValidationError{Field: "sunlight", Message: "ambiguous level " + strconv.Quote(s)}
			}
			match = level
		}
	}
	if match == "" {
		return "", &ValidationError{Field: "sunlight", Message: "must be one of Low, Medium, High"}
	}
	return match, nil
}

// MarkWatered sets the last-watered date; no other field changes.
func (p *Plant) MarkWatered(today time.Time) {
	p.LastWatered = Day(today)
}
