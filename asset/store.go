package asset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"sync"
)

var (
	// ErrNotFound is returned when no asset exists under the requested name
	ErrNotFound = errors.New("asset not found")
	// ErrEmpty is returned for assets with no drawable rows
	ErrEmpty = errors.New("asset is empty")
)

//go:embed animations/*.txt
var embedded embed.FS

// Store loads named sprites from a file system and caches them for the session
type Store struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]*Sprite
}

// NewStore creates a store reading from fsys
func NewStore(fsys fs.FS) *Store {
	return &Store{
		fsys:  fsys,
		cache: make(map[string]*Sprite),
	}
}

// Default returns a store over the frames compiled into the binary
func Default() *Store {
	sub, err := fs.Sub(embedded, "animations")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return NewStore(sub)
}

// Dir returns a store reading from a directory on disk
func Dir(dir string) *Store {
	return NewStore(os.DirFS(dir))
}

// Load returns the sprite stored under name, reading it on first use
func (s *Store) Load(name string) (*Sprite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sp, ok := s.cache[name]; ok {
		return sp, nil
	}

	if !fs.ValidPath(name) || path.Clean(name) != name {
		return nil, fmt.Errorf("load sprite %q: %w", name, ErrNotFound)
	}

	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load sprite %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("load sprite %q: %w", name, err)
	}

	sp, err := Parse(name, string(data))
	if err != nil {
		return nil, err
	}
	rows, cols := sp.Size()
	log.Printf("asset: loaded %s (%dx%d)", name, rows, cols)

	s.cache[name] = sp
	return sp, nil
}

// LoadAll loads every name, stopping at the first failure
func (s *Store) LoadAll(names ...string) ([]*Sprite, error) {
	out := make([]*Sprite, 0, len(names))
	for _, name := range names {
		sp, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, nil
}
