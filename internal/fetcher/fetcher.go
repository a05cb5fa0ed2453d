// Package fetcher downloads version descriptors and binary artifacts
// into the local store, verifying every artifact against its declared
// content digest. A local file that already matches its digest is never
// re-downloaded.
package fetcher

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/catclient/catclient/internal/descriptor"
	"github.com/catclient/catclient/internal/launcherr"
	"github.com/catclient/catclient/internal/layout"
	"github.com/catclient/catclient/internal/logging"
	"github.com/catclient/catclient/internal/manifest"
)

// httpClient is swappable in tests.
var httpClient = &http.Client{Timeout: 2 * time.Minute}

const maxRetries = 3

// retryBackoff scales the delay between download attempts. Tests set it
// to zero.
var retryBackoff = 2 * time.Second

// Ref names one downloadable artifact: where it comes from, where it
// lands, and the SHA-1 digest its content must match.
type Ref struct {
	// Name identifies the artifact in logs and progress output.
	Name string
	URL  string
	SHA1 string
	// Path is the absolute local destination.
	Path string
}

// Result is the outcome of one artifact in a batch fetch.
type Result struct {
	Ref Ref
	// Cached is true when the existing local copy already matched its
	// digest and no network call was made.
	Cached bool
	Err    error
}

// Progress reports batch completion counts.
type Progress struct {
	Completed int64
	Total     int64
}

// EnsureDescriptor fetches a version's descriptor document fresh,
// persists a pretty-printed copy under the version directory for
// inspection, and returns the decoded form. The local copy is never
// trusted as a substitute for the authoritative source.
func EnsureDescriptor(ctx context.Context, v manifest.Version, lay layout.Layout) (*descriptor.Descriptor, error) {
	if v.URL == "" {
		return nil, fmt.Errorf("%w: version %q has no descriptor URL", launcherr.ErrConfig, v.ID)
	}

	data, err := fetchBytes(ctx, v.URL)
	if err != nil {
		return nil, fmt.Errorf("descriptor for %s: %w", v.ID, err)
	}

	d, err := descriptor.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: descriptor for %s: %v", launcherr.ErrParse, v.ID, err)
	}

	if err := os.MkdirAll(lay.VersionDir(v.ID), 0o755); err != nil {
		return nil, fmt.Errorf("creating version dir: %w", err)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err == nil {
		data = pretty.Bytes()
	}
	if err := writeFileAtomic(lay.DescriptorPath(v.ID), data); err != nil {
		return nil, fmt.Errorf("persisting descriptor: %w", err)
	}
	logging.Debugf("Verbose: descriptor persisted version=%s path=%s\n", v.ID, lay.DescriptorPath(v.ID))

	return d, nil
}

// EnsureArtifact makes ref.Path hold content matching ref.SHA1 and
// returns that path. A valid existing copy short-circuits with no
// network call. After a download the digest is re-verified; on mismatch
// the file is removed so later calls cannot mistake it for valid, and
// the call fails with an integrity error.
func EnsureArtifact(ctx context.Context, ref Ref) (string, error) {
	path, _, err := ensureArtifact(ctx, ref)
	return path, err
}

func ensureArtifact(ctx context.Context, ref Ref) (string, bool, error) {
	if ref.URL == "" {
		return "", false, fmt.Errorf("%w: artifact %s has no download URL", launcherr.ErrConfig, ref.Name)
	}

	if ok, err := digestMatches(ref.Path, ref.SHA1); err == nil && ok {
		logging.Debugf("Verbose: artifact valid, skipping download name=%s\n", ref.Name)
		return ref.Path, true, nil
	}

	if err := os.MkdirAll(filepath.Dir(ref.Path), 0o755); err != nil {
		return "", false, fmt.Errorf("creating artifact dir: %w", err)
	}
	if err := downloadWithRetry(ctx, ref); err != nil {
		return "", false, err
	}

	ok, err := digestMatches(ref.Path, ref.SHA1)
	if err != nil {
		return "", false, fmt.Errorf("verifying %s: %w", ref.Name, err)
	}
	if !ok {
		os.Remove(ref.Path)
		return "", false, fmt.Errorf("%w: digest mismatch for %s (want %s)", launcherr.ErrIntegrity, ref.Name, ref.SHA1)
	}
	return ref.Path, false, nil
}

// EnsureAll fetches refs concurrently with the given worker count,
// calling onProgress after each completed item. Results come back in
// input order. Library artifacts are independent of each other, so
// parallel downloads preserve the verification contract: each file is
// digest-checked after its own write completes.
func EnsureAll(ctx context.Context, refs []Ref, concurrency int, onProgress func(Progress)) []Result {
	if concurrency < 1 {
		concurrency = 6
	}

	total := int64(len(refs))
	var completed atomic.Int64

	results := make([]Result, len(refs))
	work := make(chan int, len(refs))
	for i := range refs {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				_, cached, err := ensureArtifact(ctx, refs[i])
				results[i] = Result{Ref: refs[i], Cached: cached, Err: err}

				n := completed.Add(1)
				if onProgress != nil {
					onProgress(Progress{Completed: n, Total: total})
				}
			}
		}()
	}
	wg.Wait()
	return results
}

// ClientRef builds the Ref for a version's client jar.
func ClientRef(d *descriptor.Descriptor, versionID string, lay layout.Layout) (Ref, error) {
	if d.Downloads.Client == nil || d.Downloads.Client.URL == "" {
		return Ref{}, fmt.Errorf("%w: version %q declares no client download", launcherr.ErrConfig, versionID)
	}
	return Ref{
		Name: versionID + ".jar",
		URL:  d.Downloads.Client.URL,
		SHA1: d.Downloads.Client.SHA1,
		Path: lay.ClientJarPath(versionID),
	}, nil
}

// LibraryRefs builds Refs for every library that declares a downloadable
// artifact, in descriptor declaration order.
func LibraryRefs(d *descriptor.Descriptor, lay layout.Layout) []Ref {
	var refs []Ref
	for _, lib := range d.Libraries {
		art := lib.Downloads.Artifact
		if art == nil || art.URL == "" || art.Path == "" {
			continue
		}
		refs = append(refs, Ref{
			Name: lib.Name,
			URL:  art.URL,
			SHA1: art.SHA1,
			Path: lay.LibraryPath(art.Path),
		})
	}
	return refs
}

func downloadWithRetry(ctx context.Context, ref Ref) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			logging.Debugf("Verbose: retrying download %s attempt=%d/%d\n", ref.Name, attempt+1, maxRetries)
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", launcherr.ErrNetwork, ctx.Err())
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		lastErr = downloadOnce(ctx, ref)
		if lastErr == nil {
			return nil
		}
	}
	return lastErr
}

func downloadOnce(ctx context.Context, ref Ref) error {
	logging.Debugf("Verbose: download start name=%s url=%s\n", ref.Name, ref.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref.URL, nil)
	if err != nil {
		return fmt.Errorf("%w: creating request for %s: %v", launcherr.ErrNetwork, ref.Name, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: downloading %s: %v", launcherr.ErrNetwork, ref.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: downloading %s: HTTP %d", launcherr.ErrNetwork, ref.Name, resp.StatusCode)
	}

	tmpPath := ref.Path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmpPath, err)
	}

	_, err = io.Copy(f, resp.Body)
	closeErr := f.Close()
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: writing %s: %v", launcherr.ErrNetwork, ref.Name, err)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", ref.Name, closeErr)
	}

	if err := os.Rename(tmpPath, ref.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("finalizing %s: %w", ref.Name, err)
	}
	logging.Debugf("Verbose: download complete name=%s\n", ref.Name)

	return nil
}

// digestMatches reports whether the file at path exists and its SHA-1
// digest equals want (hex, case-insensitive). An empty want never
// matches: artifacts without a declared digest are always re-downloaded.
func digestMatches(path, want string) (bool, error) {
	if want == "" {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return false, err
	}
	got := hex.EncodeToString(h.Sum(nil))
	return strings.EqualFold(got, want), nil
}

func fetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", launcherr.ErrNetwork, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching: %v", launcherr.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching: HTTP %d", launcherr.ErrNetwork, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", launcherr.ErrNetwork, err)
	}
	return data, nil
}

// writeFileAtomic writes data via a temp file and rename so a partial
// write never replaces a good copy.
func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
