// Package skin installs custom skin files into the game directory.
package skin

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/catclient/catclient/internal/layout"
)

const installedName = "custom_skin.png"

// Apply copies a PNG skin into the game's skins directory, replacing
// any previously applied skin. The write is atomic: a partial copy
// never replaces a good one.
func Apply(lay layout.Layout, srcPath string) (string, error) {
	if !strings.EqualFold(filepath.Ext(srcPath), ".png") {
		return "", fmt.Errorf("skin must be a .png file, got %q", filepath.Base(srcPath))
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("opening skin: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(lay.SkinsDir(), 0o755); err != nil {
		return "", fmt.Errorf("creating skins dir: %w", err)
	}

	dst := filepath.Join(lay.SkinsDir(), installedName)
	tmpPath := dst + ".tmp"
	out, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", tmpPath, err)
	}

	_, err = io.Copy(out, in)
	closeErr := out.Close()
	if err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing skin: %w", err)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing skin: %w", closeErr)
	}

	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("installing skin: %w", err)
	}
	return dst, nil
}
