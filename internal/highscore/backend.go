package highscore

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// Storage location inside the gdata app directory.
const (
	scoresObject   = "highscores"
	scoresProperty = "best"
)

// DefaultAppName is the gdata application name; it picks the per-user data
// directory (for example ~/.local/share/unicorn_dash on Linux).
const DefaultAppName = "unicorn_dash"

// GdataBackend stores the score table with gdata, which picks a well-known
// per-user data location on every platform.
type GdataBackend struct {
	manager *gdata.Manager // nil means persistence is unavailable
}

// OpenGdata opens the gdata storage for appName.
func OpenGdata(appName string) (*GdataBackend, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &GdataBackend{}, fmt.Errorf("highscore: cannot open data directory: %v: %w", err, ErrPersistenceUnavailable)
	}
	return &GdataBackend{manager: m}, nil
}

// NewGdataBackend wraps an existing manager. A nil manager is allowed.
func NewGdataBackend(m *gdata.Manager) *GdataBackend {
	return &GdataBackend{manager: m}
}

// Load returns the stored payload, or nil if nothing has been saved yet.
func (b *GdataBackend) Load() ([]byte, error) {
	if b.manager == nil {
		return nil, ErrPersistenceUnavailable
	}
	if !b.manager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil, nil
	}
	data, err := b.manager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return nil, fmt.Errorf("load %s/%s: %w", scoresObject, scoresProperty, err)
	}
	return data, nil
}

// Save writes the payload.
func (b *GdataBackend) Save(data []byte) error {
	if b.manager == nil {
		return ErrPersistenceUnavailable
	}
	if err := b.manager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("save %s/%s: %w", scoresObject, scoresProperty, err)
	}
	return nil
}

// MemoryBackend keeps the payload in memory. Used by --no-save and in tests.
type MemoryBackend struct {
	mu      sync.Mutex
	data    []byte
	loadErr error
	saveErr error
	saves   int
}

// NewMemoryBackend creates a backend preloaded with data (may be nil).
func NewMemoryBackend(data []byte) *MemoryBackend {
	return &MemoryBackend{data: data}
}

func (b *MemoryBackend) Load() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	return append([]byte(nil), b.data...), nil
}

func (b *MemoryBackend) Save(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.saveErr != nil {
		return b.saveErr
	}
	b.data = append([]byte(nil), data...)
	b.saves++
	return nil
}

// FailLoad makes subsequent loads return err (nil clears it).
func (b *MemoryBackend) FailLoad(err error) {
	b.mu.Lock()
	b.loadErr = err
	b.mu.Unlock()
}

// FailSave makes subsequent saves return err (nil clears it).
func (b *MemoryBackend) FailSave(err error) {
	b.mu.Lock()
	b.saveErr = err
	b.mu.Unlock()
}

// Data returns the last saved payload.
func (b *MemoryBackend) Data() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.data...)
}

// Saves returns how many successful saves happened.
func (b *MemoryBackend) Saves() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saves
}
