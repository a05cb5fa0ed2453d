package cmd

import (
	"github.com/catclient/catclient/internal/identity"
	"github.com/catclient/catclient/internal/logging"
	"github.com/spf13/cobra"
)

var uuidCmd = &cobra.Command{
	Use:   "uuid <username>",
	Short: "Print the offline identity derived from a username",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Infoln(identity.OfflineUUID(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uuidCmd)
}
