// ABOUTME: Browse CLI command
// ABOUTME: Opens the interactive TUI calendar browser

package main

import (
	"github.com/spf13/cobra"

	"github.com/harper/mastermind/internal/db"
	"github.com/harper/mastermind/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <campaign>",
	Short: "Browse a campaign's calendars interactively",
	Long:  "Open a three-pane terminal browser: weeks, posts, and comment threads.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	camp, err := db.GetCampaign(dbConn, args[0])
	if err != nil {
		return err
	}

	return tui.Run(dbConn, camp.ID)
}
