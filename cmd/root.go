package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/catclient/catclient/internal/layout"
	"github.com/catclient/catclient/internal/logging"
	"github.com/catclient/catclient/internal/manifest"
	"github.com/catclient/catclient/internal/platform"
	"github.com/catclient/catclient/internal/settings"
	"github.com/spf13/cobra"
)

var (
	gameDir      string
	runtimeDir   string
	platformName string
	manifestURL  string
	settingsPath string
	verbose      bool
	logFile      string
)

var rootCmd = &cobra.Command{
	Use:           "catclient",
	Short:         "Offline-mode game launcher",
	Long:          "Resolve game versions, fetch and verify their artifacts, and assemble a correct launch command line.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Apply settings-file defaults for flags not explicitly set by
		// the user.
		s, err := settings.Load(settingsPath)
		if err != nil {
			return err
		}
		if s.GameDir != nil && !cmd.Flags().Changed("game-dir") {
			gameDir = *s.GameDir
		}
		if s.RuntimeDir != nil && !cmd.Flags().Changed("runtime-dir") {
			runtimeDir = *s.RuntimeDir
		}
		if s.Platform != nil && !cmd.Flags().Changed("platform") {
			platformName = *s.Platform
		}
		if s.ManifestURL != nil && !cmd.Flags().Changed("manifest-url") {
			manifestURL = *s.ManifestURL
		}
		if s.Concurrency != nil && !cmd.Flags().Changed("concurrency") {
			concurrency = *s.Concurrency
		}
		if s.Verbose != nil && !cmd.Flags().Changed("verbose") {
			verbose = *s.Verbose
		}
		if s.LogFile != nil && !cmd.Flags().Changed("log-file") {
			logFile = *s.LogFile
		}

		logging.SetVerbose(verbose)
		if err := logging.SetOutputFile(logFile); err != nil {
			return fmt.Errorf("opening log file %q: %w", logFile, err)
		}
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	closeErr := logging.Close()
	if closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", closeErr)
		if err == nil {
			os.Exit(1)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if isUsageError(err) {
			if cmd, _, findErr := rootCmd.Find(os.Args[1:]); findErr == nil && cmd != nil {
				_ = cmd.Usage()
			} else {
				_ = rootCmd.Usage()
			}
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return wrapUsageError(err)
	})

	rootCmd.PersistentFlags().StringVarP(&gameDir, "game-dir", "d", "", "Game root directory (default ~/.minecraft)")
	rootCmd.PersistentFlags().StringVar(&runtimeDir, "runtime-dir", "", "Managed Java runtime root (default ~/.catclient/java)")
	rootCmd.PersistentFlags().StringVar(&platformName, "platform", "", "Target platform: windows, osx, or linux (default: current)")
	rootCmd.PersistentFlags().StringVar(&manifestURL, "manifest-url", manifest.DefaultURL, "Version manifest URL")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", settings.Path(), "Settings file location")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write command output to a log file")
}

// currentLayout resolves the layout from flags, falling back to the
// conventional defaults per directory.
func currentLayout() layout.Layout {
	lay := layout.Default()
	if gameDir != "" {
		lay.GameDir = gameDir
	}
	if runtimeDir != "" {
		lay.RuntimeDir = runtimeDir
	}
	return lay
}

func currentPlatform() (platform.Platform, error) {
	p, err := platform.Parse(platformName)
	if err != nil {
		return "", wrapUsageError(err)
	}
	return p, nil
}

type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func wrapUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if validate == nil {
			return nil
		}
		if err := validate(cmd, args); err != nil {
			return wrapUsageError(err)
		}
		return nil
	}
}

func isUsageError(err error) bool {
	var ue *usageError
	if errors.As(err, &ue) {
		return true
	}

	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command ")
}
