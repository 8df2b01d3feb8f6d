package ops

import (
	"github.com/jacksmith/plantpal/internal/model"
)

// Store defines the persistence interface required by the collection.
// storage.FileStore (JSON) and db.Store (SQLite) implement it; tests use an
// in-memory version.
type Store interface {
	// Load returns all plants in order. A missing source yields no plants
	// and no error.
	Load() ([]model.Plant, error)
	// Save replaces the persisted plants with the given ordered list.
	Save(plants []model.Plant) error
}
