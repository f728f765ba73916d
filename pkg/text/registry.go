// Package text adapts font storage and glyph measurement for the rest of
// the engine, standing in for the "text-layout library" collaborator that
// spec.md §1 treats as an external dependency.
package text

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
)

// FaceBlob is one registered font face: a family name plus the raw TTF/OTF
// bytes for a specific weight/style combination.
type FaceBlob struct {
	Family string
	Bold   bool
	Italic bool
	Data   []byte
}

// Registry is the font registry described in spec.md §5 and §9: keyed by
// family name to a list of face blobs, grown under an exclusive-writer
// discipline by the host before rendering, and accessed read-only during a
// render via Snapshot.
type Registry struct {
	mu    sync.RWMutex
	faces map[string][]FaceBlob
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	return &Registry{faces: make(map[string][]FaceBlob)}
}

// Register adds a face blob under family. Must not be called concurrently
// with a render holding a Snapshot of this registry.
func (r *Registry) Register(family string, data []byte, bold, italic bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces[family] = append(r.faces[family], FaceBlob{Family: family, Bold: bold, Italic: italic, Data: data})
}

// Snapshot returns an immutable, read-only view of the registry for the
// duration of one render call.
func (r *Registry) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	view := make(map[string][]FaceBlob, len(r.faces))
	for k, v := range r.faces {
		cp := make([]FaceBlob, len(v))
		copy(cp, v)
		view[k] = cp
	}
	return &Snapshot{faces: view, parsed: make(map[string]*truetype.Font)}
}

// Snapshot is a read-only, lazily-parsing view over a Registry's faces.
type Snapshot struct {
	faces map[string][]FaceBlob

	mu     sync.Mutex
	parsed map[string]*truetype.Font
}

// resolve finds the best face for the requested family list (first match
// wins, per spec.md §4.4 "font family list"), falling back across bold/italic
// combinations, and returns its parsed *truetype.Font.
func (s *Snapshot) resolve(families []string, bold, italic bool) (*truetype.Font, error) {
	blob, ok := s.findBlob(families, bold, italic)
	if !ok {
		return nil, fmt.Errorf("no registered font face for families %v (bold=%v italic=%v)", families, bold, italic)
	}

	key := fmt.Sprintf("%s|%v|%v", blob.Family, blob.Bold, blob.Italic)
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.parsed[key]; ok {
		return f, nil
	}
	f, err := truetype.Parse(blob.Data)
	if err != nil {
		return nil, fmt.Errorf("parsing font face %q: %w", blob.Family, err)
	}
	s.parsed[key] = f
	return f, nil
}

func (s *Snapshot) findBlob(families []string, bold, italic bool) (FaceBlob, bool) {
	for _, family := range families {
		blobs := s.faces[family]
		if len(blobs) == 0 {
			continue
		}
		var exact, boldOnly, any FaceBlob
		haveExact, haveBoldOnly := false, false
		for _, b := range blobs {
			if b.Bold == bold && b.Italic == italic {
				exact, haveExact = b, true
				break
			}
			if b.Bold == bold {
				boldOnly, haveBoldOnly = b, true
			}
		}
		if haveExact {
			return exact, true
		}
		if haveBoldOnly {
			return boldOnly, true
		}
		any = blobs[0]
		return any, true
	}
	return FaceBlob{}, false
}
