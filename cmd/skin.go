package cmd

import (
	"github.com/catclient/catclient/internal/logging"
	"github.com/catclient/catclient/internal/skin"
	"github.com/spf13/cobra"
)

var skinCmd = &cobra.Command{
	Use:   "skin",
	Short: "Manage the applied skin",
}

var skinApplyCmd = &cobra.Command{
	Use:   "apply <file.png>",
	Short: "Copy a PNG skin into the game directory",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst, err := skin.Apply(currentLayout(), args[0])
		if err != nil {
			return err
		}
		logging.Infof("Skin applied: %s\n", dst)
		return nil
	},
}

func init() {
	skinCmd.AddCommand(skinApplyCmd)
	rootCmd.AddCommand(skinCmd)
}
