package audio

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefStore persists the mute preference across runs. The flag is the only
// durable audio state; everything else is rebuilt per process.
type PrefStore struct {
	path string
}

type prefFile struct {
	Muted bool `json:"muted"`
}

// NewPrefStore creates a store at path, or under the user config directory
// when path is empty.
func NewPrefStore(path string) *PrefStore {
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "reelspin", "audio.json")
		}
	}
	return &PrefStore{path: path}
}

// Muted reads the persisted flag. A missing or unreadable file means
// unmuted.
func (p *PrefStore) Muted() bool {
	if p.path == "" {
		return false
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return false
	}
	var pf prefFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return false
	}
	return pf.Muted
}

// SetMuted persists the flag. Write failures are returned but callers treat
// them as non-fatal: the in-memory flag still applies for this run.
func (p *PrefStore) SetMuted(muted bool) error {
	if p.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(prefFile{Muted: muted})
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}
