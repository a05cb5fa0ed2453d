package cmd

import (
	"context"

	"github.com/catclient/catclient/internal/logging"
	"github.com/catclient/catclient/internal/manifest"
	"github.com/mitchellh/colorstring"
	"github.com/spf13/cobra"
)

var channelName string

var channelLabels = map[manifest.Channel]string{
	manifest.LatestRelease:  "[green]Latest Release",
	manifest.LatestSnapshot: "[yellow]Latest Snapshot",
	manifest.Release:        "Release",
	manifest.Snapshot:       "Snapshot",
	manifest.OldBeta:        "Old Beta",
	manifest.OldAlpha:       "Old Alpha",
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List installable versions grouped by channel",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := manifest.Fetch(context.Background(), manifestURL)
		if err != nil {
			return err
		}

		channels := manifest.Channels()
		if channelName != "" {
			ch, err := manifest.ParseChannel(channelName)
			if err != nil {
				return wrapUsageError(err)
			}
			channels = []manifest.Channel{ch}
		}

		for _, ch := range channels {
			ids := idx.ListChannel(ch)
			if len(ids) == 0 {
				continue
			}
			logging.Infof("%s\n", colorstring.Color("[bold]"+channelLabels[ch]))
			for _, id := range ids {
				logging.Infof("  %s\n", id)
			}
		}
		return nil
	},
}

func init() {
	versionsCmd.Flags().StringVar(&channelName, "channel", "", "Only list one channel (release, snapshot, old-beta, old-alpha, latest-release, latest-snapshot)")
	rootCmd.AddCommand(versionsCmd)
}
