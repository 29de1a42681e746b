package riot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const accountFileName = "riot.account.toml"

// Account is the linked Riot account profile persisted next to the
// progress file: which summoner to sync, where, and when it last happened.
type Account struct {
	Summoner   string    `toml:"summoner"`
	Region     string    `toml:"region"`
	LastSync   time.Time `toml:"last_sync"`
	SyncCount  int       `toml:"sync_count"`
	LastResult int       `toml:"last_result"` // champions imported by the last sync
}

// Linked reports whether an account has been configured.
func (a *Account) Linked() bool {
	return a.Summoner != ""
}

// LoadAccount reads the account profile from dir. A missing file yields an
// empty (unlinked) account, not an error.
func LoadAccount(dir string) (*Account, error) {
	data, err := os.ReadFile(filepath.Join(dir, accountFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Account{}, nil
		}
		return nil, fmt.Errorf("riot: reading account file: %w", err)
	}

	var a Account
	if err := toml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("riot: parsing account file: %w", err)
	}
	return &a, nil
}

// SaveAccount writes the account profile atomically (write temp + rename).
func SaveAccount(dir string, a *Account) error {
	data, err := toml.Marshal(a)
	if err != nil {
		return fmt.Errorf("riot: marshaling account: %w", err)
	}

	path := filepath.Join(dir, accountFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("riot: writing temp account file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("riot: renaming account file: %w", err)
	}
	return nil
}
