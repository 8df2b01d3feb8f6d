package ops

import (
	"github.com/rs/zerolog"
)

// PhotoStore manages copies of plant photos in a directory plantpal owns.
type PhotoStore interface {
	Import(src, prefix string) (string, error)
	Owns(path string) bool
	Delete(path string) error
}

// ImportPhoto copies src into photos and returns the stored path. With no
// store configured, or no image given, src is returned unchanged.
func ImportPhoto(photos PhotoStore, src, plantName string) (string, error) {
	if photos == nil || src == "" {
		return src, nil
	}
	return photos.Import(src, plantName)
}

// DeletePhotos removes the managed photos among paths. Unmanaged paths are
// left alone; failures are logged and skipped.
func DeletePhotos(photos PhotoStore, paths []string, logger zerolog.Logger) {
	if photos == nil {
		return
	}
	for _, path := range paths {
		if !photos.Owns(path) {
			continue
		}
		if err := photos.Delete(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("failed to delete photo")
		}
	}
}
