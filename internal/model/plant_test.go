package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlant(t *testing.T) {
	today := time.Date(2024, 4, 2, 18, 30, 0, 0, time.UTC)

	t.Run("valid plant is watered today", func(t *testing.T) {
		p, err := NewPlant("  Monstera ", 7, SunlightMedium, "", today)
		require.NoError(t, err)

		assert.Equal(t, "Monstera", p.Name)
		assert.Equal(t, 7, p.WaterIntervalDays)
		assert.Equal(t, SunlightMedium, p.Sunlight)
		assert.Equal(t, "", p.ImagePath)
		assert.Equal(t, date("2024-04-02"), p.LastWatered)
		assert.NotEmpty(t, p.ID)
	})

	t.Run("each plant gets its own id", func(t *testing.T) {
		a, err := NewPlant("Fern", 3, SunlightLow, "", today)
		require.NoError(t, err)
		b, err := NewPlant("Fern", 3, SunlightLow, "", today)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	tests := []struct {
		name     string
		plant    string
		interval int
		sun      Sunlight
		field    string
	}{
		{name: "empty name", plant: "", interval: 3, sun: SunlightLow, field: "name"},
		{name: "whitespace name", plant: "   ", interval: 3, sun: SunlightLow, field: "name"},
		{name: "zero interval", plant: "Fern", interval: 0, sun: SunlightLow, field: "watering interval"},
		{name: "negative interval", plant: "Fern", interval: -2, sun: SunlightLow, field: "watering interval"},
		{name: "unknown sunlight", plant: "Fern", interval: 2, sun: Sunlight("Blazing"), field: "sunlight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlant(tt.plant, tt.interval, tt.sun, "", today)
			require.Error(t, err)
			assert.Nil(t, p)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestParseInterval(t *testing.T) {
	n, err := ParseInterval(" 14 ")
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	for _, bad := range []string{"", "abc", "3.5", "0", "-1"} {
		_, err := ParseInterval(bad)
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr), "input %q", bad)
	}
}

func TestParseSunlight(t *testing.T) {
	tests := []struct {
		input string
		want  Sunlight
	}{
		{"Low", SunlightLow},
		{"medium", SunlightMedium},
		{"HIGH", SunlightHigh},
		{"med", SunlightMedium},
		{"h", SunlightHigh},
	}
	for _, tt := range tests {
		got, err := ParseSunlight(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "shade", "lowest"} {
		_, err := ParseSunlight(bad)
		assert.Error(t, err, bad)
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", ShortID("12345678-aaaa-bbbb"))
	assert.Equal(t, "abc", ShortID("abc"))
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	got := Day(time.Date(2024, 7, 1, 2, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), got)
}
