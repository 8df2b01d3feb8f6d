// Package storage provides file system operations for a plantpal data directory.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jacksmith/plantpal/internal/logging"
	"github.com/jacksmith/plantpal/internal/model"
	"github.com/rs/zerolog"
)

// Storage provides access to a directory holding plant data and config.
type Storage struct {
	root string // directory containing plants.json and .plantpal.yaml
}

// Open returns a Storage for the given directory.
// Returns error if the directory does not exist.
func Open(dir string) (*Storage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s not found", dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	return &Storage{root: dir}, nil
}

// Init creates an empty plant file in dir using the configured data file name.
// Returns error if the data file already exists. For the sqlite backend only
// the directory is created.
func Init(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	s := &Storage{root: dir}
	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Backend != BackendJSON {
		// Database files are created when first opened
		return s, nil
	}

	path := s.Path(cfg.DataFile)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for %s: %w", path, err)
	}

	if err := NewFileStore(path, zerolog.Nop()).Save(nil); err != nil {
		return nil, err
	}
	return s, nil
}

// Root returns the data directory.
func (s *Storage) Root() string {
	return s.root
}

// Path resolves name relative to the data directory.
// Absolute names are returned unchanged.
func (s *Storage) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.root, name)
}

// FileStore persists plants as a JSON array in a single file.
type FileStore struct {
	path   string
	logger zerolog.Logger
}

// NewFileStore returns a store backed by the JSON file at path.
func NewFileStore(path string, logger zerolog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logging.Component(logger, "filestore").With().Str("path", path).Logger(),
	}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads all plants from the file.
// A missing file is an empty collection, not an error.
func (f *FileStore) Load() ([]model.Plant, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.logger.Debug().Msg("plant file missing, starting empty")
			return nil, nil
		}
		return nil, &model.StorageError{Op: "load", Path: f.path, Err: err}
	}

	plants, err := model.DecodePlants(data)
	if err != nil {
		return nil, &model.StorageError{Op: "load", Path: f.path, Err: err}
	}

	f.logger.Debug().Int("plants", len(plants)).Msg("loaded plants")
	return plants, nil
}

// Save writes all plants to the file.
// The data is written to a temporary file in the same directory and renamed
// over the target, so a failed write leaves the previous file intact.
func (f *FileStore) Save(plants []model.Plant) error {
	data, err := model.EncodePlants(plants)
	if err != nil {
		return &model.StorageError{Op: "save", Path: f.path, Err: err}
	}

	if err := writeFileAtomic(f.path, data); err != nil {
		return &model.StorageError{Op: "save", Path: f.path, Err: err}
	}

	f.logger.Debug().Int("plants", len(plants)).Msg("saved plants")
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
