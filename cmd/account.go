package cmd

import (
	"fmt"

	"github.com/catclient/catclient/internal/logging"
	"github.com/catclient/catclient/internal/store"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage offline accounts",
}

var accountAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Add an account",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		lay := currentLayout()
		accounts, err := store.LoadAccounts(lay.GameDir)
		if err != nil {
			return err
		}
		name := args[0]
		if _, exists := accounts[name]; exists {
			return fmt.Errorf("account %q already exists", name)
		}
		accounts[name] = map[string]any{}
		if err := accounts.Save(lay.GameDir); err != nil {
			return err
		}
		logging.Infof("Account %q added.\n", name)
		return nil
	},
}

var accountRemoveCmd = &cobra.Command{
	Use:   "remove <username>",
	Short: "Remove an account",
	Args:  usageArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		lay := currentLayout()
		accounts, err := store.LoadAccounts(lay.GameDir)
		if err != nil {
			return err
		}
		name := args[0]
		if _, exists := accounts[name]; !exists {
			return fmt.Errorf("account %q not found", name)
		}
		delete(accounts, name)
		if err := accounts.Save(lay.GameDir); err != nil {
			return err
		}
		logging.Infof("Account %q removed.\n", name)
		return nil
	},
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		accounts, err := store.LoadAccounts(currentLayout().GameDir)
		if err != nil {
			return err
		}
		if len(accounts) == 0 {
			logging.Infoln("No accounts saved.")
			return nil
		}
		for _, name := range accounts.Names() {
			logging.Infoln(name)
		}
		return nil
	},
}

func init() {
	accountCmd.AddCommand(accountAddCmd, accountRemoveCmd, accountListCmd)
	rootCmd.AddCommand(accountCmd)
}
