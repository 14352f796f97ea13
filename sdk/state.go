package sdk

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"sync"
)

// State is the committed kv store under the chain. Write applies a whole tx
// at once; a nil value in changes deletes the key.
type State interface {
	Get(key string) (*string, error)
	Write(changes map[string]*string) error
	Close() error
}

// MemoryState keeps everything in a map. With a filename set it also dumps a
// JSON snapshot after every write so a devnet can be resumed.
type MemoryState struct {
	mu       sync.RWMutex
	db       map[string]string
	filename string
}

// snapshotEntry keeps raw bytes since keys carry binary prefixes.
type snapshotEntry struct {
	K []byte `json:"k"`
	V []byte `json:"v"`
}

func NewMemoryState() *MemoryState {
	return &MemoryState{db: make(map[string]string)}
}

// OpenFileState loads filename if it exists and keeps writing snapshots to it.
// Example payload: sdk.OpenFileState("state.json")
func OpenFileState(filename string) (*MemoryState, error) {
	m := &MemoryState{db: make(map[string]string), filename: filename}
	if err := m.loadFromFile(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MemoryState) Get(key string) (*string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.db[key]
	if !ok {
		return nil, nil
	}
	return &val, nil
}

func (m *MemoryState) Write(changes map[string]*string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range changes {
		if v == nil {
			delete(m.db, k)
			continue
		}
		m.db[k] = *v
	}
	if m.filename == "" {
		return nil
	}
	return m.saveToFile()
}

func (m *MemoryState) Close() error { return nil }

// Len reports how many keys are stored.
func (m *MemoryState) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.db)
}

// saveToFile writes the full map to the JSON file, sorted so diffs stay readable.
func (m *MemoryState) saveToFile() error {
	keys := make([]string, 0, len(m.db))
	for k := range m.db {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]snapshotEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, snapshotEntry{K: []byte(k), V: []byte(m.db[k])})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.filename, data, 0644)
}

// loadFromFile loads the map from the JSON file, a missing file is fine.
func (m *MemoryState) loadFromFile() error {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var entries []snapshotEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	for _, e := range entries {
		m.db[string(e.K)] = string(e.V)
	}
	return nil
}
