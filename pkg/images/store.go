// Package images decodes raster image sources and holds them in a
// host-managed, read-only-during-render store.
package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"
)

// DecodeBytes decodes an arbitrary image payload (PNG/JPEG/GIF) into an
// image.Image. Callers that need inline-SVG decoding should use
// RasterizeSVG instead, since SVG is not a raster format.
func DecodeBytes(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image decode error: %w", err)
	}
	return img, nil
}

// Store is the persistent image store described in spec.md §5 and §9: a map
// from source identifier (a URL or CLI-resolved path, resolved by the host)
// to a decoded image. Concurrent inserts are serialized by mu; renders read
// through Snapshot, which returns an immutable view that is never mutated
// after being handed out.
type Store struct {
	mu     sync.Mutex
	images map[string]image.Image
}

// NewStore creates an empty image store.
func NewStore() *Store {
	return &Store{images: make(map[string]image.Image)}
}

// Insert decodes data and registers it under id. Safe to call concurrently
// with other Inserts; must not be called concurrently with a render that
// holds a Snapshot (see spec.md §5: "mutations to these stores happen
// between renders").
func (s *Store) Insert(id string, data []byte) error {
	img, err := DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("inserting image %q: %w", id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[id] = img
	return nil
}

// InsertDecoded registers an already-decoded image under id.
func (s *Store) InsertDecoded(id string, img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[id] = img
}

// Snapshot returns a consistent, read-only view of the store's current
// contents for a single render call.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := make(map[string]image.Image, len(s.images))
	for k, v := range s.images {
		view[k] = v
	}
	return Snapshot{images: view}
}

// Snapshot is an immutable handle over a Store's contents, borrowed by a
// render context for the duration of one render call.
type Snapshot struct {
	images map[string]image.Image
}

// Lookup returns the decoded image registered under id, if any.
func (s Snapshot) Lookup(id string) (image.Image, bool) {
	img, ok := s.images[id]
	return img, ok
}
