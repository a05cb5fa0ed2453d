package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/catclient/catclient/internal/descriptor"
	"github.com/catclient/catclient/internal/fetcher"
	"github.com/catclient/catclient/internal/layout"
	"github.com/catclient/catclient/internal/logging"
	"github.com/catclient/catclient/internal/manifest"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var concurrency int

var fetchCmd = &cobra.Command{
	Use:   "fetch <version>",
	Short: "Download and verify a version's descriptor, client jar, and libraries",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := ensureVersionFiles(context.Background(), currentLayout(), args[0])
		return err
	},
}

// ensureVersionFiles brings the local store up to date for one version:
// descriptor re-fetched fresh, client jar and libraries digest-verified
// and downloaded only where the local copy is missing or invalid.
func ensureVersionFiles(ctx context.Context, lay layout.Layout, versionID string) (*descriptor.Descriptor, error) {
	logging.Infoln("Fetching version manifest...")
	idx, err := manifest.Fetch(ctx, manifestURL)
	if err != nil {
		return nil, err
	}
	entry, err := idx.Resolve(versionID)
	if err != nil {
		return nil, err
	}

	logging.Infof("Fetching descriptor for %s...\n", versionID)
	desc, err := fetcher.EnsureDescriptor(ctx, entry, lay)
	if err != nil {
		return nil, err
	}

	clientRef, err := fetcher.ClientRef(desc, versionID, lay)
	if err != nil {
		return nil, err
	}
	refs := append([]fetcher.Ref{clientRef}, fetcher.LibraryRefs(desc, lay)...)

	bar := progressbar.NewOptions(len(refs),
		progressbar.OptionSetDescription("Downloading artifacts"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	results := fetcher.EnsureAll(ctx, refs, concurrency, func(fetcher.Progress) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()

	var cached, downloaded int
	var errs []error
	for _, r := range results {
		switch {
		case r.Err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", r.Ref.Name, r.Err))
		case r.Cached:
			cached++
		default:
			downloaded++
		}
	}

	logging.Infof("Artifacts: %d downloaded, %d already valid\n", downloaded, cached)
	if len(errs) > 0 {
		return nil, fmt.Errorf("%d artifact(s) failed: %w", len(errs), errors.Join(errs...))
	}
	return desc, nil
}

func init() {
	fetchCmd.Flags().IntVar(&concurrency, "concurrency", 6, "Number of concurrent downloads")
	rootCmd.AddCommand(fetchCmd)
}
