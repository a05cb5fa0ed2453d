package cmd

import (
	"fmt"

	"github.com/catclient/catclient/internal/logging"
	"github.com/catclient/catclient/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved launch profiles",
}

var (
	profVersion   string
	profUsername  string
	profRAM       int
	profModFolder string
)

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a launch profile",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		lay := currentLayout()
		profiles, err := store.LoadProfiles(lay.GameDir)
		if err != nil {
			return err
		}
		profiles[args[0]] = store.Profile{
			Version:   profVersion,
			Username:  profUsername,
			RAM:       profRAM,
			ModFolder: profModFolder,
		}
		if err := profiles.Save(lay.GameDir); err != nil {
			return err
		}
		logging.Infof("Profile %q saved.\n", args[0])
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a profile's contents",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := store.LoadProfiles(currentLayout().GameDir)
		if err != nil {
			return err
		}
		p, ok := profiles[args[0]]
		if !ok {
			return fmt.Errorf("profile %q not found", args[0])
		}
		logging.Infof("version:    %s\n", p.Version)
		logging.Infof("username:   %s\n", p.Username)
		logging.Infof("ram:        %dG\n", p.RAM)
		if p.ModFolder != "" {
			logging.Infof("mod-folder: %s\n", p.ModFolder)
		}
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := store.LoadProfiles(currentLayout().GameDir)
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			logging.Infoln("No profiles saved.")
			return nil
		}
		for _, name := range profiles.Names() {
			logging.Infoln(name)
		}
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		lay := currentLayout()
		profiles, err := store.LoadProfiles(lay.GameDir)
		if err != nil {
			return err
		}
		if _, ok := profiles[args[0]]; !ok {
			return fmt.Errorf("profile %q not found", args[0])
		}
		delete(profiles, args[0])
		if err := profiles.Save(lay.GameDir); err != nil {
			return err
		}
		logging.Infof("Profile %q deleted.\n", args[0])
		return nil
	},
}

func init() {
	profileSaveCmd.Flags().StringVar(&profVersion, "version", "", "Game version id")
	profileSaveCmd.Flags().StringVar(&profUsername, "username", "", "Player name")
	profileSaveCmd.Flags().IntVar(&profRAM, "ram", 4, "JVM max heap in gigabytes")
	profileSaveCmd.Flags().StringVar(&profModFolder, "mod-folder", "", "Mods folder")

	profileCmd.AddCommand(profileSaveCmd, profileShowCmd, profileListCmd, profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}
