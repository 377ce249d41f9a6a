package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File persists each slot as one JSON file under a directory. Saves go
// through a temp file and rename so a crash never leaves a half-written
// slot behind.
type File struct {
	dir string
	mu  sync.Mutex
}

func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store: dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: create dir %q: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(slot string) string {
	// Slot names are internal constants, but keep path traversal out anyway.
	name := strings.ReplaceAll(slot, string(os.PathSeparator), "_")
	return filepath.Join(f.dir, name+".json")
}

func (f *File) Load(ctx context.Context, slot string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load slot %q: %w", slot, err)
	}
	return data, nil
}

func (f *File) Save(ctx context.Context, slot string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(slot)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

func (f *File) Has(ctx context.Context, slot string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, err := os.Stat(f.path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat slot %q: %w", slot, err)
	}
	return true, nil
}

func (f *File) Delete(ctx context.Context, slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(slot)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	return nil
}
