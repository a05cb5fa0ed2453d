package layout

import (
	"path/filepath"
	"testing"
)

func TestVersionPaths(t *testing.T) {
	t.Parallel()

	lay := Layout{GameDir: filepath.Join("/data", "game")}

	if got, want := lay.DescriptorPath("1.21"), filepath.Join("/data", "game", "versions", "1.21", "1.21.json"); got != want {
		t.Fatalf("DescriptorPath = %q, want %q", got, want)
	}
	if got, want := lay.ClientJarPath("1.21"), filepath.Join("/data", "game", "versions", "1.21", "1.21.jar"); got != want {
		t.Fatalf("ClientJarPath = %q, want %q", got, want)
	}
	if got, want := lay.NativesDir("1.21"), filepath.Join("/data", "game", "versions", "1.21", "natives"); got != want {
		t.Fatalf("NativesDir = %q, want %q", got, want)
	}
}

// Library paths in descriptors always use forward slashes; the layout
// maps them onto the host separator.
func TestLibraryPathConvertsSlashes(t *testing.T) {
	t.Parallel()

	lay := Layout{GameDir: "/data/game"}
	want := filepath.Join("/data/game", "libraries", "org", "lwjgl", "lwjgl.jar")
	if got := lay.LibraryPath("org/lwjgl/lwjgl.jar"); got != want {
		t.Fatalf("LibraryPath = %q, want %q", got, want)
	}
}

func TestDefaultUsesHomeDirectory(t *testing.T) {
	t.Parallel()

	lay := Default()
	if lay.GameDir == "" || lay.RuntimeDir == "" {
		t.Fatalf("Default layout has empty directories: %+v", lay)
	}
	if filepath.Base(lay.GameDir) != ".minecraft" {
		t.Fatalf("default game dir = %q, want ~/.minecraft", lay.GameDir)
	}
}
