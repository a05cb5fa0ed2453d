// Package rules evaluates the conditional rule lists embedded in version
// descriptors. A rule list gates whether an argument applies on a given
// platform.
package rules

import "github.com/catclient/catclient/internal/platform"

type Action string

const (
	Allow    Action = "allow"
	Disallow Action = "disallow"
)

type OS struct {
	Name string `json:"name"`
}

type Rule struct {
	Action   Action          `json:"action"`
	OS       *OS             `json:"os,omitempty"`
	Features map[string]bool `json:"features,omitempty"`
}

// Evaluate applies rules in declaration order against the target
// platform. An empty list is unconditionally true. Otherwise nothing is
// allowed until an allow rule matches, and later rules override earlier
// ones.
//
// Feature-gated rules are skipped entirely, so an argument gated solely
// by a feature flag is never included. This matches the original
// behavior and is a known limitation.
func Evaluate(rs []Rule, p platform.Platform) bool {
	if len(rs) == 0 {
		return true
	}

	allowed := false
	for _, r := range rs {
		if len(r.Features) > 0 {
			continue
		}
		switch r.Action {
		case Allow:
			if r.OS == nil || r.OS.Name == p.String() {
				allowed = true
			}
		case Disallow:
			if r.OS != nil && r.OS.Name == p.String() {
				allowed = false
			}
		}
	}
	return allowed
}
