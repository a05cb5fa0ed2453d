// Package layout describes where launcher state lives on disk. All path
// construction goes through a Layout value so directories stay
// configuration, never constants baked into consumers.
package layout

import (
	"os"
	"path/filepath"
)

// Layout is the on-disk arrangement of the game directory and the
// managed Java runtime root.
type Layout struct {
	// GameDir is the game root, conventionally ~/.minecraft.
	GameDir string
	// RuntimeDir holds installed Java runtimes, keyed by version string.
	RuntimeDir string
}

// Default returns the conventional layout under the user's home
// directory.
func Default() Layout {
	home, _ := os.UserHomeDir()
	return Layout{
		GameDir:    filepath.Join(home, ".minecraft"),
		RuntimeDir: filepath.Join(home, ".catclient", "java"),
	}
}

func (l Layout) VersionsDir() string {
	return filepath.Join(l.GameDir, "versions")
}

// VersionDir is the per-version directory holding <id>.json and <id>.jar.
func (l Layout) VersionDir(id string) string {
	return filepath.Join(l.VersionsDir(), id)
}

func (l Layout) DescriptorPath(id string) string {
	return filepath.Join(l.VersionDir(id), id+".json")
}

func (l Layout) ClientJarPath(id string) string {
	return filepath.Join(l.VersionDir(id), id+".jar")
}

func (l Layout) NativesDir(id string) string {
	return filepath.Join(l.VersionDir(id), "natives")
}

func (l Layout) LibrariesDir() string {
	return filepath.Join(l.GameDir, "libraries")
}

// LibraryPath resolves a library's manifest-declared relative artifact
// path under the libraries root.
func (l Layout) LibraryPath(rel string) string {
	return filepath.Join(l.LibrariesDir(), filepath.FromSlash(rel))
}

func (l Layout) AssetsDir() string {
	return filepath.Join(l.GameDir, "assets")
}

func (l Layout) SkinsDir() string {
	return filepath.Join(l.GameDir, "skins")
}
