package ops

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePhotos records calls; paths under "managed/" are owned.
type fakePhotos struct {
	imported []string
	deleted  []string
	failWith error
}

func (f *fakePhotos) Import(src, prefix string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.imported = append(f.imported, src)
	return "managed/" + prefix + ".jpg", nil
}

func (f *fakePhotos) Owns(path string) bool {
	return len(path) > len("managed/") && path[:len("managed/")] == "managed/"
}

func (f *fakePhotos) Delete(path string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deleted = append(f.deleted, path)
	return nil
}

func TestImportPhoto(t *testing.T) {
	t.Run("no store keeps source path", func(t *testing.T) {
		got, err := ImportPhoto(nil, "/tmp/fern.jpg", "Fern")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/fern.jpg", got)
	})

	t.Run("no image skips store", func(t *testing.T) {
		photos := &fakePhotos{}
		got, err := ImportPhoto(photos, "", "Fern")
		require.NoError(t, err)
		assert.Equal(t, "", got)
		assert.Empty(t, photos.imported)
	})

	t.Run("copies into store", func(t *testing.T) {
		photos := &fakePhotos{}
		got, err := ImportPhoto(photos, "/tmp/fern.jpg", "Fern")
		require.NoError(t, err)
		assert.Equal(t, "managed/Fern.jpg", got)
		assert.Equal(t, []string{"/tmp/fern.jpg"}, photos.imported)
	})

	t.Run("import failure is returned", func(t *testing.T) {
		photos := &fakePhotos{failWith: errors.New("disk full")}
		_, err := ImportPhoto(photos, "/tmp/fern.jpg", "Fern")
		assert.Error(t, err)
	})
}

func TestDeletePhotos(t *testing.T) {
	photos := &fakePhotos{}
	DeletePhotos(photos, []string{"managed/a.jpg", "/home/me/b.jpg", "", "managed/c.png"}, zerolog.Nop())
	assert.Equal(t, []string{"managed/a.jpg", "managed/c.png"}, photos.deleted)

	// Failures are skipped, nil store is a no-op
	DeletePhotos(&fakePhotos{failWith: errors.New("busy")}, []string{"managed/a.jpg"}, zerolog.Nop())
	DeletePhotos(nil, []string{"managed/a.jpg"}, zerolog.Nop())
}
