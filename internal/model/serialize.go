package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// legacyIDSpace namespaces IDs derived for entries saved without one.
var legacyIDSpace = uuid.MustParse("5f0c8a1e-3b7d-4c2a-9e61-7d4b2f8a9c10")

// plantRecord is the persisted shape of a plant. Field names match the
// plants.json files written by earlier versions of the app.
type plantRecord struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Water       int    `json:"water"`
	Sun         string `json:"sun"`
	Image       string `json:"image"`
	LastWatered string `json:"last_watered"`
}

// EncodePlants serializes plants as an indented JSON array, preserving order.
func EncodePlants(plants []Plant) ([]byte, error) {
	records := make([]plantRecord, 0, len(plants))
	for _, p := range plants {
		records = append(records, plantRecord{
			ID:          p.ID,
			Name:        p.Name,
			Water:       p.WaterIntervalDays,
			Sun:         string(p.Sunlight),
			Image:       p.ImagePath,
			LastWatered: Day(p.LastWatered).Format(DateLayout),
		})
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode plants: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodePlants parses a JSON array of plants.
// Any malformed entry fails the whole decode. Entries without an ID get one derived from
// their position and fields, so the same file always yields the same IDs.
func DecodePlants(data []byte) ([]Plant, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []plantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse plants: %w", err)
	}

	plants := make([]Plant, 0, len(records))
	for i, r := range records {
		p, err := r.toPlant(i)
		if err != nil {
			return nil, fmt.Errorf("plant %d: %w", i+1, err)
		}
		plants = append(plants, p)
	}
	return plants, nil
}

func (r plantRecord) toPlant(pos int) (Plant, error) {
	if err := ValidateName(r.Name); err != nil {
		return Plant{}, err
	}
	if err := ValidateInterval(r.Water); err != nil {
		return Plant{}, err
	}
	sun := Sunlight(r.Sun)
	if !sun.Valid() {
		return Plant{}, &ValidationError{Field: "sun", Message: fmt.Sprintf("unknown level %q", r.Sun)}
	}
	last, err := time.Parse(DateLayout, r.LastWatered)
	if err != nil {
		return Plant{}, &ValidationError{Field: "last_watered", Message: fmt.Sprintf("expected YYYY-MM-DD, got %q", r.LastWatered)}
	}

	id := r.ID
	if id == "" {
		id = r.derivedID(pos)
	}
	return Plant{
		ID:                id,
		Name:              r.Name,
		WaterIntervalDays: r.Water,
		Sunlight:          sun,
		ImagePath:         r.Image,
		LastWatered:       last,
	}, nil
}

func (r plantRecord) derivedID(pos int) string {
	key := fmt.Sprintf("%d|%s|%d|%s|%s|%s", pos, r.Name, r.Water, r.Sun, r.Image, r.LastWatered)
	return uuid.NewSHA1(legacyIDSpace, []byte(key)).String()
}
