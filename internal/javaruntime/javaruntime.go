// Package javaruntime locates a Java executable for launching the game.
// Provisioning (downloading and installing a runtime) is an external
// collaborator's job; this package only decides which path to use and
// exposes the provisioning contract as a stub.
package javaruntime

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/catclient/catclient/internal/launcherr"
	"github.com/catclient/catclient/internal/layout"
	"github.com/catclient/catclient/internal/platform"
)

// InstalledVersion is the runtime directory name a provisioned runtime
// is expected under.
const InstalledVersion = "jdk-21.0.5+11"

// Locate returns the Java executable to launch with: a java binary on
// PATH when one exists, otherwise the well-known path where a
// provisioned runtime is expected to live. The fallback path is
// returned even when nothing is installed there yet.
func Locate(lay layout.Layout, p platform.Platform) string {
	if path, err := exec.LookPath("java"); err == nil {
		return path
	}
	return InstalledPath(lay, p)
}

// InstalledPath is where a provisioned runtime's java binary lives.
func InstalledPath(lay layout.Layout, p platform.Platform) string {
	return filepath.Join(lay.RuntimeDir, InstalledVersion, "bin", p.ExecutableName("java"))
}

// Ensure is the runtime provisioning contract. Installation is not
// implemented here; callers that need a guaranteed runtime must go
// through the external installer.
func Ensure(ctx context.Context, lay layout.Layout, p platform.Platform) (string, error) {
	return "", fmt.Errorf("%w: runtime installation for %s is handled by the external installer", launcherr.ErrProvisioning, p)
}
