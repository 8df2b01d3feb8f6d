// Package photo manages plant photos copied into a local directory.
package photo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jacksmith/plantpal/internal/logging"
	"github.com/rs/zerolog"
)

// LocalStore copies photos into a base directory owned by plantpal.
type LocalStore struct {
	basePath string
	logger   zerolog.Logger
}

// NewLocalStore creates the base directory if needed.
func NewLocalStore(basePath string, logger zerolog.Logger) (*LocalStore, error) {
	absBase, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("invalid photo directory: %w", err)
	}
	if err := os.MkdirAll(absBase, 0755); err != nil {
		return nil, fmt.Errorf("failed to create photo directory: %w", err)
	}
	return &LocalStore{
		basePath: absBase,
		logger:   logging.Component(logger, "photo"),
	}, nil
}

// BasePath returns the managed directory.
func (s *LocalStore) BasePath() string {
	return s.basePath
}

// Import copies the file at src into the store under a name derived from
// prefix and returns the stored path.
func (s *LocalStore) Import(src, prefix string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open photo: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat photo: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("photo %s is a directory", src)
	}

	filename := fmt.Sprintf("%s_%s%s", slug(prefix), uuid.NewString()[:8], normalizeExt(src))
	filePath := filepath.Join(s.basePath, filename)

	f, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, in); err != nil {
		if cerr := f.Close(); cerr != nil {
			s.logger.Error().Err(cerr).Msg("failed to close file after write error")
		}
		if rerr := os.Remove(filePath); rerr != nil {
			s.logger.Error().Err(rerr).Msg("failed to remove file after write error")
		}
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		if rerr := os.Remove(filePath); rerr != nil {
			s.logger.Error().Err(rerr).Msg("failed to remove file after close error")
		}
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	s.logger.Debug().Str("src", src).Str("dst", filePath).Msg("imported photo")
	return filePath, nil
}

// Owns reports whether path lives inside the managed directory.
func (s *LocalStore) Owns(path string) bool {
	if path == "" {
		return false
	}
	_, err := s.resolve(path)
	return err == nil
}

// Delete removes a managed photo. Paths outside the store are rejected.
func (s *LocalStore) Delete(path string) error {
	filePath, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("photo not found")
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	s.logger.Debug().Str("path", filePath).Msg("deleted photo")
	return nil
}

// Exists reports whether an image file is present at path.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// resolve maps a stored photo path back into the store.
func (s *LocalStore) resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	rel, err := filepath.Rel(s.basePath, abs)
	if err != nil {
		return "", fmt.Errorf("photo %s is not managed: %w", path, err)
	}
	return s.safeJoin(rel)
}

// safeJoin resolves key relative to basePath and rejects directory traversal.
func (s *LocalStore) safeJoin(key string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, key))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside the photo directory", key)
	}
	return absPath, nil
}

func normalizeExt(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".gif", ".webp", ".jpg":
		return ext
	case ".jpeg":
		return ".jpg"
	default:
		return ".jpg"
	}
}

func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "plant"
	}
	return b.String()
}
