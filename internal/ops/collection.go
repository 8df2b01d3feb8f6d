// Package ops implements the plant collection and the operations the
// presentation layers perform on it.
package ops

import (
	"time"

	"github.com/jacksmith/plantpal/internal/logging"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/rs/zerolog"
)

// Collection is the ordered, in-memory list of plants.
// Positions stay stable until the next mutation; nothing reorders plants.
// A Collection has a single writer and is not safe for concurrent use.
type Collection struct {
	plants []model.Plant
	store  Store
	logger zerolog.Logger
	dirty  bool
}

// NewCollection returns an empty collection persisted through store.
func NewCollection(store Store, logger zerolog.Logger) *Collection {
	return &Collection{
		store:  store,
		logger: logging.Component(logger, "collection"),
	}
}

// Len returns the number of plants.
func (c *Collection) Len() int {
	return len(c.plants)
}

// Dirty reports whether the collection changed since the last load or save.
func (c *Collection) Dirty() bool {
	return c.dirty
}

// All returns a copy of the plants in order.
func (c *Collection) All() []model.Plant {
	out := make([]model.Plant, len(c.plants))
	copy(out, c.plants)
	return out
}

// Get returns the plant at index.
func (c *Collection) Get(index int) (model.Plant, error) {
	if err := c.checkIndex(index); err != nil {
		return model.Plant{}, err
	}
	return c.plants[index], nil
}

// IndexOf returns the position of the plant with id, or -1.
func (c *Collection) IndexOf(id string) int {
	for i := range c.plants {
		if c.plants[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends a plant. Names need not be unique.
func (c *Collection) Add(p model.Plant) {
	if p.ID == "" {
		p.ID = model.NewID()
	}
	c.plants = append(c.plants, p)
	c.dirty = true
	c.logger.Debug().Str("id", p.ID).Str("name", p.Name).Msg("added plant")
}

// RemoveAt deletes the plant at index and shifts later plants down by one.
// The collection is unchanged when index is out of range.
func (c *Collection) RemoveAt(index int) (model.Plant, error) {
	if err := c.checkIndex(index); err != nil {
		return model.Plant{}, err
	}

	removed := c.plants[index]
	c.plants = append(c.plants[:index:index], c.plants[index+1:]...)
	c.dirty = true
	c.logger.Debug().Str("id", removed.ID).Str("name", removed.Name).Msg("removed plant")
	return removed, nil
}

// Remove deletes the plant with the given id.
func (c *Collection) Remove(id string) (model.Plant, error) {
	i := c.IndexOf(id)
	if i < 0 {
		return model.Plant{}, &model.NotFoundError{Ref: id}
	}
	return c.RemoveAt(i)
}

// MarkWatered sets the last-watered date of the plant at index to today.
func (c *Collection) MarkWatered(index int, today time.Time) (model.Plant, error) {
	if err := c.checkIndex(index); err != nil {
		return model.Plant{}, err
	}

	c.plants[index].MarkWatered(today)
	c.dirty = true
	c.logger.Debug().Str("id", c.plants[index].ID).Str("date", model.Day(today).Format(model.DateLayout)).Msg("marked watered")
	return c.plants[index], nil
}

// MarkWateredByID sets the last-watered date of the plant with id to today.
func (c *Collection) MarkWateredByID(id string, today time.Time) (model.Plant, error) {
	i := c.IndexOf(id)
	if i < 0 {
		return model.Plant{}, &model.NotFoundError{Ref: id}
	}
	return c.MarkWatered(i, today)
}

// Load replaces the in-memory plants with the store's contents.
// On error the current plants are kept.
func (c *Collection) Load() error {
	plants, err := c.store.Load()
	if err != nil {
		c.logger.Error().Err(err).Msg("load failed")
		return err
	}

	c.plants = plants
	c.dirty = false
	c.logger.Info().Int("plants", len(plants)).Msg("loaded collection")
	return nil
}

// Save writes every plant, in order, to the store.
func (c *Collection) Save() error {
	if err := c.store.Save(c.plants); err != nil {
		c.logger.Error().Err(err).Msg("save failed")
		return err
	}

	c.dirty = false
	c.logger.Info().Int("plants", len(c.plants)).Msg("saved collection")
	return nil
}

// Stats aggregates watering status for today.
func (c *Collection) Stats(today time.Time) model.Stats {
	return model.ComputeStats(c.plants, today)
}

// Reminders returns the names of plants needing water today, in order.
func (c *Collection) Reminders(today time.Time) []string {
	return Reminders(c.plants, today)
}

func (c *Collection) checkIndex(index int) error {
	if index < 0 || index >= len(c.plants) {
		return &model.IndexError{Index: index, Len: len(c.plants)}
	}
	return nil
}
