package manifest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/catclient/catclient/internal/launcherr"
)

const sampleManifest = `{
  "latest": {"release": "1.21", "snapshot": "1.22-pre1"},
  "versions": [
    {"id": "1.22-pre1", "type": "snapshot", "url": "https://example.test/1.22-pre1.json"},
    {"id": "1.21", "type": "release", "url": "https://example.test/1.21.json"},
    {"id": "1.20", "type": "release", "url": "https://example.test/1.20.json"},
    {"id": "b1.7.3", "type": "old_beta", "url": "https://example.test/b1.7.3.json"},
    {"id": "a1.0.4", "type": "old_alpha", "url": "https://example.test/a1.0.4.json"},
    {"id": "weird", "type": "experiment", "url": "https://example.test/weird.json"}
  ]
}`

func TestParseChannelBuckets(t *testing.T) {
	t.Parallel()

	idx, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		channel Channel
		want    []string
	}{
		{LatestRelease, []string{"1.21"}},
		{LatestSnapshot, []string{"1.22-pre1"}},
		// Latest pointers keep their base-type bucket membership.
		{Release, []string{"1.21", "1.20"}},
		{Snapshot, []string{"1.22-pre1"}},
		{OldBeta, []string{"b1.7.3"}},
		{OldAlpha, []string{"a1.0.4"}},
	}
	for _, tt := range tests {
		if got := idx.ListChannel(tt.channel); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("ListChannel(%s) = %v, want %v", tt.channel, got, tt.want)
		}
	}
}

func TestUnknownTypeResolvableButUnbucketed(t *testing.T) {
	t.Parallel()

	idx, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if _, ok := idx.Lookup("weird"); !ok {
		t.Fatalf("version with unknown type should still be resolvable by id")
	}
	for _, ch := range Channels() {
		for _, id := range idx.ListChannel(ch) {
			if id == "weird" {
				t.Fatalf("version with unknown type appeared in channel %s", ch)
			}
		}
	}
}

func TestListChannelPreservesManifestOrder(t *testing.T) {
	t.Parallel()

	doc := `{
	  "latest": {"release": "", "snapshot": ""},
	  "versions": [
	    {"id": "c", "type": "release", "url": "u"},
	    {"id": "a", "type": "release", "url": "u"},
	    {"id": "b", "type": "release", "url": "u"}
	  ]
	}`
	idx, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []string{"c", "a", "b"}
	if got := idx.ListChannel(Release); !reflect.DeepEqual(got, want) {
		t.Fatalf("ListChannel(Release) = %v, want manifest order %v", got, want)
	}
}

func TestLatestChannelEmptyWhenPointerMissing(t *testing.T) {
	t.Parallel()

	doc := `{
	  "latest": {"release": "9.9", "snapshot": ""},
	  "versions": [{"id": "1.0", "type": "release", "url": "u"}]
	}`
	idx, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := idx.ListChannel(LatestRelease); got != nil {
		t.Fatalf("ListChannel(LatestRelease) = %v, want nil for dangling pointer", got)
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("{not json"))
	if !errors.Is(err, launcherr.ErrParse) {
		t.Fatalf("Parse of malformed document = %v, want parse error", err)
	}
}

func TestParseChannel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Channel
		wantErr bool
	}{
		{input: "release", want: Release},
		{input: " Latest Release ", want: LatestRelease},
		{input: "old_beta", want: OldBeta},
		{input: "OLD-ALPHA", want: OldAlpha},
		{input: "daily", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseChannel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseChannel(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseChannel(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseChannel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	idx, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	v, err := idx.Resolve("1.21")
	if err != nil {
		t.Fatalf("Resolve(1.21) failed: %v", err)
	}
	if v.URL != "https://example.test/1.21.json" {
		t.Fatalf("Resolve(1.21) url = %q", v.URL)
	}

	_, err = idx.Resolve("0.0")
	if !errors.Is(err, launcherr.ErrConfig) || !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("Resolve of unknown id = %v, want config error wrapping ErrUnknownVersion", err)
	}
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(sampleManifest))
	}))
	defer server.Close()

	oldClient := httpClient
	httpClient = server.Client()
	t.Cleanup(func() { httpClient = oldClient })

	idx, err := Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if idx.LatestReleaseID() != "1.21" {
		t.Fatalf("latest release = %q, want 1.21", idx.LatestReleaseID())
	}
}

func TestFetchHTTPErrorIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	oldClient := httpClient
	httpClient = server.Client()
	t.Cleanup(func() { httpClient = oldClient })

	_, err := Fetch(context.Background(), server.URL)
	if !errors.Is(err, launcherr.ErrNetwork) {
		t.Fatalf("Fetch of HTTP 500 = %v, want network error", err)
	}
}
