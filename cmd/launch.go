package cmd

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/catclient/catclient/internal/launch"
	"github.com/catclient/catclient/internal/logging"
	"github.com/catclient/catclient/internal/store"
	"github.com/mitchellh/colorstring"
	"github.com/spf13/cobra"
)

var (
	launchUsername  string
	launchRAM       int
	launchModFolder string
	launchProfile   string
	launchDryRun    bool
)

var launchCmd = &cobra.Command{
	Use:   "launch [version]",
	Short: "Fetch a version's files and launch it",
	Args:  usageArgs(cobra.MaximumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		lay := currentLayout()
		pf, err := currentPlatform()
		if err != nil {
			return err
		}

		req := launch.Request{
			Username:     launchUsername,
			RAMGigabytes: launchRAM,
			ModFolder:    launchModFolder,
		}
		if len(args) == 1 {
			req.Version = args[0]
		}

		// Profile values fill in whatever the command line left unset.
		if launchProfile != "" {
			profiles, err := store.LoadProfiles(lay.GameDir)
			if err != nil {
				return err
			}
			p, ok := profiles[launchProfile]
			if !ok {
				return fmt.Errorf("profile %q not found", launchProfile)
			}
			if req.Version == "" {
				req.Version = p.Version
			}
			if !cmd.Flags().Changed("username") && p.Username != "" {
				req.Username = p.Username
			}
			if !cmd.Flags().Changed("ram") && p.RAM > 0 {
				req.RAMGigabytes = p.RAM
			}
			if !cmd.Flags().Changed("mod-folder") && p.ModFolder != "" {
				req.ModFolder = p.ModFolder
			}
		}

		if req.Version == "" {
			return wrapUsageError(fmt.Errorf("no version given (argument or profile)"))
		}
		if req.Username == "" {
			return wrapUsageError(fmt.Errorf("no username given (--username or profile)"))
		}

		desc, err := ensureVersionFiles(ctx, lay, req.Version)
		if err != nil {
			return err
		}

		plan, err := launch.Resolve(desc, req, lay, pf)
		if err != nil {
			return err
		}
		cmdline := plan.CommandLine(pf)

		if launchDryRun {
			logging.Infoln(strings.Join(cmdline, " "))
			return nil
		}

		logging.Infof("%s\n", colorstring.Color("[green]Launching "+req.Version))
		logging.Debugf("Verbose: launch command %q\n", cmdline)

		proc := exec.Command(cmdline[0], cmdline[1:]...)
		proc.Dir = lay.GameDir
		if err := proc.Start(); err != nil {
			return fmt.Errorf("starting game process: %w", err)
		}
		logging.Infof("Started %s as pid %d\n", req.Version, proc.Process.Pid)
		return proc.Process.Release()
	},
}

func init() {
	launchCmd.Flags().StringVarP(&launchUsername, "username", "u", "", "Player name for the offline identity")
	launchCmd.Flags().IntVar(&launchRAM, "ram", 4, "JVM max heap in gigabytes")
	launchCmd.Flags().StringVar(&launchModFolder, "mod-folder", "", "Mods folder recorded with the launch")
	launchCmd.Flags().StringVarP(&launchProfile, "profile", "p", "", "Load a saved launch profile by name")
	launchCmd.Flags().BoolVar(&launchDryRun, "dry-run", false, "Print the launch command instead of executing it")
	rootCmd.AddCommand(launchCmd)
}
