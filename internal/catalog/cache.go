package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const cacheFileName = "catalog.json"

// cacheFile is the on-disk snapshot of a fetched roster, so list and stats
// keep working offline after one successful refresh.
type cacheFile struct {
	Version   string     `json:"version"`
	FetchedAt time.Time  `json:"fetchedAt"`
	Champions []Champion `json:"champions"`
}

// SaveCache writes the roster snapshot atomically into dir.
func SaveCache(dir, version string, champs []Champion) error {
	data, err := json.MarshalIndent(cacheFile{
		Version:   version,
		FetchedAt: time.Now().UTC(),
		Champions: champs,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: marshal cache: %w", err)
	}

	path := filepath.Join(dir, cacheFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("catalog: write cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("catalog: rename cache: %w", err)
	}
	return nil
}

// LoadCache reads a previously saved roster snapshot from dir. ok is false
// when no usable cache exists; that is not an error, just "no catalog".
func LoadCache(dir string) (champs []Champion, version string, ok bool) {
	data, err := os.ReadFile(filepath.Join(dir, cacheFileName))
	if err != nil {
		return nil, "", false
	}
	var cf cacheFile
	if err := json.Unmarshal(data, &cf); err != nil || len(cf.Champions) == 0 {
		return nil, "", false
	}
	return cf.Champions, cf.Version, true
}
