// ABOUTME: Whoami command
// ABOUTME: Shows current identity and database location

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/mastermind/internal/db"
	"github.com/harper/mastermind/internal/identity"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current identity",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	id := identity.GetIdentity(identityFlag, "cli")
	fmt.Printf("Identity: %s\n", id)

	path := dbPath
	if path == "" {
		path = cfg.GetDatabasePath(db.GetDefaultDBPath())
	}
	fmt.Printf("Database: %s\n", path)
	return nil
}
