// Package session holds the authenticated identity for the lifetime of the
// process and persists it across runs as a single serialized record, the
// way the original browser client kept one localStorage key.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aka-Harsh/eventbook/internal/client/models"
)

// ErrMalformed marks a persisted record that exists but cannot be decoded
// into a usable identity. Callers treat it as "logged out", never as fatal.
var ErrMalformed = errors.New("malformed session record")

// Persistence stores at most one identity record. Implementations must
// tolerate Clear on an already-empty store.
type Persistence interface {
	// Save writes the record, replacing any previous one.
	Save(u *models.User) error
	// Load returns the stored record, (nil, nil) when none exists, or
	// an error wrapping ErrMalformed when the record is unreadable.
	Load() (*models.User, error)
	// Clear removes the record.
	Clear() error
}

// FilePersistence keeps the record as a JSON file.
type FilePersistence struct {
	path string
}

var _ Persistence = (*FilePersistence)(nil)

// NewFilePersistence stores the record at path, creating parent
// directories on first save.
func NewFilePersistence(path string) *FilePersistence {
	return &FilePersistence{path: path}
}

// Path returns the location of the record file.
func (f *FilePersistence) Path() string { return f.path }

func (f *FilePersistence) Save(u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (f *FilePersistence) Load() (*models.User, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if u.ID == 0 || !u.Role.Valid() {
		return nil, fmt.Errorf("%w: missing id or role", ErrMalformed)
	}
	return &u, nil
}

func (f *FilePersistence) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
