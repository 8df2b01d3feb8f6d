package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func samplePlants() []Plant {
	return []Plant{
		{ID: "id-1", Name: "Monstera", WaterIntervalDays: 7, Sunlight: SunlightMedium, ImagePath: "/photos/monstera.jpg", LastWatered: date("2024-01-01")},
		{ID: "id-2", Name: "Cactus", WaterIntervalDays: 21, Sunlight: SunlightHigh, LastWatered: date("2023-12-20")},
		{ID: "id-3", Name: "Cactus", WaterIntervalDays: 14, Sunlight: SunlightLow, LastWatered: date("2024-01-05")},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	plants := samplePlants()

	data, err := EncodePlants(plants)
	require.NoError(t, err)

	got, err := DecodePlants(data)
	require.NoError(t, err)
	assert.Equal(t, plants, got)
}

func TestEncodePlantsFieldNames(t *testing.T) {
	data, err := EncodePlants(samplePlants()[:1])
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)

	assert.Equal(t, "Monstera", raw[0]["name"])
	assert.EqualValues(t, 7, raw[0]["water"])
	assert.Equal(t, "Medium", raw[0]["sun"])
	assert.Equal(t, "/photos/monstera.jpg", raw[0]["image"])
	assert.Equal(t, "2024-01-01", raw[0]["last_watered"])
	assert.Equal(t, "id-1", raw[0]["id"])

	// Indented with four spaces
	assert.Contains(t, string(data), "\n        \"name\": \"Monstera\"")
}

func TestEncodeEmptyCollection(t *testing.T) {
	data, err := EncodePlants(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestDecodePlants(t *testing.T) {
	t.Run("file written without ids gets ids assigned", func(t *testing.T) {
		data := `[
    {"name": "Fern", "water": 3, "sun": "Low", "image": "", "last_watered": "2024-02-01"},
    {"name": "Aloe", "water": 10, "sun": "High", "image": "aloe.png", "last_watered": "2024-02-03"}
]`
		plants, err := DecodePlants([]byte(data))
		require.NoError(t, err)
		require.Len(t, plants, 2)

		assert.Equal(t, "Fern", plants[0].Name)
		assert.Equal(t, "Aloe", plants[1].Name)
		assert.Equal(t, "aloe.png", plants[1].ImagePath)
		assert.Equal(t, date("2024-02-03"), plants[1].LastWatered)
		assert.NotEmpty(t, plants[0].ID)
		assert.NotEqual(t, plants[0].ID, plants[1].ID)
	})

	t.Run("ids assigned to a file without ids are stable across decodes", func(t *testing.T) {
		data := `[
    {"name": "Fern", "water": 3, "sun": "Low", "image": "", "last_watered": "2024-02-01"},
    {"name": "Fern", "water": 3, "sun": "Low", "image": "", "last_watered": "2024-02-01"}
]`
		first, err := DecodePlants([]byte(data))
		require.NoError(t, err)
		second, err := DecodePlants([]byte(data))
		require.NoError(t, err)

		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Equal(t, first[1].ID, second[1].ID)
		assert.NotEqual(t, first[0].ID, first[1].ID, "identical entries at different positions")
	})

	t.Run("stored ids are kept", func(t *testing.T) {
		data := `[{"id": "abc-123", "name": "Fern", "water": 3, "sun": "Low", "image": "", "last_watered": "2024-02-01"}]`
		plants, err := DecodePlants([]byte(data))
		require.NoError(t, err)
		assert.Equal(t, "abc-123", plants[0].ID)
	})

	t.Run("empty input is an empty collection", func(t *testing.T) {
		plants, err := DecodePlants([]byte("  \n"))
		require.NoError(t, err)
		assert.Empty(t, plants)
	})

	malformed := map[string]string{
		"not json":         `{{{`,
		"object not array": `{"name": "Fern"}`,
		"string interval":  `[{"name": "Fern", "water": "3", "sun": "Low", "image": "", "last_watered": "2024-02-01"}]`,
		"zero interval":    `[{"name": "Fern", "water": 0, "sun": "Low", "image": "", "last_watered": "2024-02-01"}]`,
		"empty name":       `[{"name": "", "water": 3, "sun": "Low", "image": "", "last_watered": "2024-02-01"}]`,
		"bad sun":          `[{"name": "Fern", "water": 3, "sun": "Bright", "image": "", "last_watered": "2024-02-01"}]`,
		"bad date":         `[{"name": "Fern", "water": 3, "sun": "Low", "image": "", "last_watered": "02/01/2024"}]`,
		"one bad of two": `[
			{"name": "Fern", "water": 3, "sun": "Low", "image": "", "last_watered": "2024-02-01"},
			{"name": "Aloe", "water": 3, "sun": "Low", "image": ""}
		]`,
	}
	for name, data := range malformed {
		t.Run(name+" fails the whole decode", func(t *testing.T) {
			plants, err := DecodePlants([]byte(data))
			assert.Error(t, err)
			assert.Nil(t, plants)
		})
	}

	t.Run("entry errors name the position", func(t *testing.T) {
		_, err := DecodePlants([]byte(malformed["one bad of two"]))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plant 2")

		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
	})
}

func TestEncodePlantsYAML(t *testing.T) {
	today := date("2024-01-08")
	data, err := EncodePlantsYAML(samplePlants(), today)
	require.NoError(t, err)

	var doc struct {
		Generated string `yaml:"generated"`
		Stats     Stats  `yaml:"stats"`
		Plants    []struct {
			ID     string `yaml:"id"`
			Name   string `yaml:"name"`
			Water  int    `yaml:"water"`
			Sun    string `yaml:"sun"`
			Image  string `yaml:"image"`
			Due    string `yaml:"due"`
			Status string `yaml:"status"`
		} `yaml:"plants"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, "2024-01-08", doc.Generated)
	require.Len(t, doc.Plants, 3)
	assert.Equal(t, "Monstera", doc.Plants[0].Name)
	assert.Equal(t, "2024-01-08", doc.Plants[0].Due)
	assert.Equal(t, "due_today", doc.Plants[0].Status)
	assert.Equal(t, "", doc.Plants[1].Image)
	assert.Equal(t, 3, doc.Stats.Total)

	// Empty image is omitted rather than written as an empty string
	assert.Equal(t, 1, strings.Count(string(data), "image:"))
}

func TestEncodePlantsYAMLQuotesNumericNames(t *testing.T) {
	plants := []Plant{{ID: "x", Name: "42", WaterIntervalDays: 1, Sunlight: SunlightLow, LastWatered: date("2024-01-01")}}
	data, err := EncodePlantsYAML(plants, date("2024-01-01"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `name: "42"`)
}
