// Package manifest fetches and indexes the global version manifest.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/catclient/catclient/internal/launcherr"
)

const DefaultURL = "https://launchermeta.mojang.com/mc/game/version_manifest.json"

// httpClient is swappable in tests.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// Channel is a classification bucket for installable versions.
type Channel string

const (
	LatestRelease  Channel = "latest-release"
	LatestSnapshot Channel = "latest-snapshot"
	Release        Channel = "release"
	Snapshot       Channel = "snapshot"
	OldBeta        Channel = "old-beta"
	OldAlpha       Channel = "old-alpha"
)

// Channels returns all channels in display order.
func Channels() []Channel {
	return []Channel{LatestRelease, LatestSnapshot, Release, Snapshot, OldBeta, OldAlpha}
}

// ParseChannel validates a channel name from user input.
func ParseChannel(s string) (Channel, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")
	for _, c := range Channels() {
		if normalized == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown channel %q", s)
}

// Version is one entry of the version index.
type Version struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type document struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []Version `json:"versions"`
}

// Index is one immutable snapshot of the version manifest. A failed
// fetch never produces a partial Index: callers either get a complete
// replacement or keep whatever they already hold.
type Index struct {
	latestRelease  string
	latestSnapshot string
	versions       []Version
	byID           map[string]Version
}

// Fetch retrieves and parses the version manifest.
func Fetch(ctx context.Context, url string) (*Index, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", launcherr.ErrNetwork, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching manifest: %v", launcherr.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching manifest: HTTP %d", launcherr.ErrNetwork, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading manifest: %v", launcherr.ErrNetwork, err)
	}

	return Parse(data)
}

// Parse builds an Index from a raw manifest document.
func Parse(data []byte) (*Index, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing manifest: %v", launcherr.ErrParse, err)
	}

	idx := &Index{
		latestRelease:  doc.Latest.Release,
		latestSnapshot: doc.Latest.Snapshot,
		versions:       doc.Versions,
		byID:           make(map[string]Version, len(doc.Versions)),
	}
	for _, v := range doc.Versions {
		if _, dup := idx.byID[v.ID]; !dup {
			idx.byID[v.ID] = v
		}
	}
	return idx, nil
}

// Lookup resolves a version id. Entries with an unrecognized type are
// still resolvable here even though they appear in no channel.
func (i *Index) Lookup(id string) (Version, bool) {
	v, ok := i.byID[id]
	return v, ok
}

// LatestReleaseID returns the manifest's declared latest release pointer.
func (i *Index) LatestReleaseID() string {
	return i.latestRelease
}

// LatestSnapshotID returns the manifest's declared latest snapshot pointer.
func (i *Index) LatestSnapshotID() string {
	return i.latestSnapshot
}

// ListChannel returns version ids for a channel in manifest order.
//
// The latest-pointer channels hold exactly the pointed-at id (when it
// exists in the index); a version classified as latest still appears in
// its base-type channel as well.
func (i *Index) ListChannel(ch Channel) []string {
	switch ch {
	case LatestRelease:
		if _, ok := i.byID[i.latestRelease]; ok {
			return []string{i.latestRelease}
		}
		return nil
	case LatestSnapshot:
		if _, ok := i.byID[i.latestSnapshot]; ok {
			return []string{i.latestSnapshot}
		}
		return nil
	}

	var want string
	switch ch {
	case Release:
		want = "release"
	case Snapshot:
		want = "snapshot"
	case OldBeta:
		want = "old_beta"
	case OldAlpha:
		want = "old_alpha"
	default:
		return nil
	}

	var ids []string
	for _, v := range i.versions {
		if v.Type == want {
			ids = append(ids, v.ID)
		}
	}
	return ids
}

// ErrUnknownVersion helps callers distinguish "not in the index" from
// transport failures.
var ErrUnknownVersion = errors.New("version not in index")

// Resolve returns the entry for id or a config error naming it.
func (i *Index) Resolve(id string) (Version, error) {
	v, ok := i.byID[id]
	if !ok {
		return Version{}, fmt.Errorf("%w: %w: %q", launcherr.ErrConfig, ErrUnknownVersion, id)
	}
	if v.URL == "" {
		return Version{}, fmt.Errorf("%w: version %q has no descriptor URL", launcherr.ErrConfig, id)
	}
	return v, nil
}
