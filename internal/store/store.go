// Package store persists accounts and launch profiles as flat JSON
// files. The core launch pipeline never reads these directly; they only
// seed a launch request's initial values.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	AccountsFile = "accounts.json"
	ProfilesFile = "profiles.json"
)

// Accounts maps usernames to opaque per-account settings.
type Accounts map[string]map[string]any

// Profile is a saved launch configuration.
type Profile struct {
	Version   string `json:"version"`
	Username  string `json:"username"`
	RAM       int    `json:"ram"`
	ModFolder string `json:"mod_folder,omitempty"`
}

// Profiles maps profile names to saved configurations.
type Profiles map[string]Profile

// LoadAccounts reads the accounts file from dir. A missing file yields
// an empty set.
func LoadAccounts(dir string) (Accounts, error) {
	a := make(Accounts)
	if err := loadJSON(filepath.Join(dir, AccountsFile), &a); err != nil {
		return nil, err
	}
	return a, nil
}

// SaveAccounts writes the accounts file to dir.
func (a Accounts) Save(dir string) error {
	return saveJSON(filepath.Join(dir, AccountsFile), a)
}

// Names returns account usernames in sorted order.
func (a Accounts) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadProfiles reads the profiles file from dir. A missing file yields
// an empty set.
func LoadProfiles(dir string) (Profiles, error) {
	p := make(Profiles)
	if err := loadJSON(filepath.Join(dir, ProfilesFile), &p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes the profiles file to dir.
func (p Profiles) Save(dir string) error {
	return saveJSON(filepath.Join(dir, ProfilesFile), p)
}

// Names returns profile names in sorted order.
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s dir: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
