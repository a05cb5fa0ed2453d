// Package platform names operating systems the way version manifests do.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

type Platform string

const (
	Windows Platform = "windows"
	OSX     Platform = "osx"
	Linux   Platform = "linux"
)

// Current reports the running platform using manifest naming
// (darwin is "osx" in manifest rules).
func Current() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return OSX
	default:
		return Linux
	}
}

// Parse validates a platform override string.
func Parse(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows":
		return Windows, nil
	case "osx", "darwin", "macos":
		return OSX, nil
	case "linux":
		return Linux, nil
	case "":
		return Current(), nil
	}
	return "", fmt.Errorf("unknown platform %q (want windows, osx, or linux)", s)
}

// ClasspathSeparator returns the path-list separator used when joining
// classpath entries for this platform.
func (p Platform) ClasspathSeparator() string {
	if p == Windows {
		return ";"
	}
	return ":"
}

// ExecutableName appends the platform executable suffix to base.
func (p Platform) ExecutableName(base string) string {
	if p == Windows {
		return base + ".exe"
	}
	return base
}

func (p Platform) String() string {
	return string(p)
}
