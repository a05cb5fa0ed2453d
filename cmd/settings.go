package cmd

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/catclient/catclient/internal/logging"
	"github.com/catclient/catclient/internal/settings"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the launcher settings file",
}

var settingsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current flag values as defaults",
	Long:  "Write explicitly-set global flags to the settings file so they become defaults for future runs.",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(settingsPath)
		if err != nil {
			return err
		}

		// Only flags the user actually set on this invocation are
		// persisted; everything else keeps its stored value.
		if cmd.Flags().Changed("game-dir") {
			s.GameDir = &gameDir
		}
		if cmd.Flags().Changed("runtime-dir") {
			s.RuntimeDir = &runtimeDir
		}
		if cmd.Flags().Changed("platform") {
			s.Platform = &platformName
		}
		if cmd.Flags().Changed("manifest-url") {
			s.ManifestURL = &manifestURL
		}
		if cmd.Flags().Changed("verbose") {
			s.Verbose = &verbose
		}
		if cmd.Flags().Changed("log-file") {
			s.LogFile = &logFile
		}

		if err := settings.Save(settingsPath, s); err != nil {
			return err
		}
		logging.Infof("Settings saved to %s\n", settingsPath)
		return nil
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored settings",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(settingsPath)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return err
		}
		logging.Infof("%s", buf.String())
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsSaveCmd, settingsShowCmd)
	rootCmd.AddCommand(settingsCmd)
}
