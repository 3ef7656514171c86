package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/codexcli/internal/credentials"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage codex credentials",
	Long: `Inspect the credential state of the codex CLI provider.

Credentials live in ~/.codex/config.toml under the api_key key; this
command never writes that file.`,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current authentication state",
	RunE:  runAuthStatus,
}

var authResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the in-process credential state",
	RunE:  runAuthReset,
}

func init() {
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authResetCmd)
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	store := credentials.NewStore(nil)

	path, err := credentials.ConfigPath()
	if err != nil {
		return err
	}

	switch err := store.Authenticate(); {
	case err == nil:
		fmt.Printf("authenticated (api_key found in %s)\n", path)
	case errors.Is(err, credentials.ErrCredentialsNotFound):
		fmt.Printf("not authenticated: add api_key to %s\n", path)
	default:
		return err
	}
	return nil
}

func runAuthReset(cmd *cobra.Command, args []string) error {
	store := credentials.NewStore(nil)
	if err := store.Authenticate(); err != nil && !errors.Is(err, credentials.ErrCredentialsNotFound) {
		return err
	}
	if err := store.Reset(); err != nil {
		return err
	}
	fmt.Println("credential state cleared")
	return nil
}
