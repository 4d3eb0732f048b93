// ABOUTME: History CLI commands
// ABOUTME: Implements history show and reset subcommands

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/mastermind/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect cross-week history",
	Long:  "Show or reset the accumulated topic and community history of a campaign.",
}

var historyShowCmd = &cobra.Command{
	Use:   "show <campaign>",
	Short: "Show a campaign's history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyResetCmd = &cobra.Command{
	Use:   "reset <campaign>",
	Short: "Clear a campaign's history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryReset,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd, historyResetCmd)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	camp, err := db.GetCampaign(dbConn, args[0])
	if err != nil {
		return err
	}

	hist, err := db.GetHistory(dbConn, camp.ID, camp.CompanyName)
	if err != nil {
		return err
	}

	color.Cyan("%s · %d weeks generated", hist.CompanyName, len(hist.Calendars))

	if len(hist.UsedCommunityPostCounts) > 0 {
		fmt.Println("\nCommunity usage:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for community, count := range hist.UsedCommunityPostCounts {
			fmt.Fprintf(w, "  %s\t%d posts\n", community, count)
		}
		w.Flush()
	}

	if len(hist.UsedTopics) > 0 {
		fmt.Println("\nCovered topics:")
		for _, topic := range hist.UsedTopics {
			fmt.Printf("  - %s\n", topic)
		}
	}
	return nil
}

func runHistoryReset(cmd *cobra.Command, args []string) error {
	camp, err := db.GetCampaign(dbConn, args[0])
	if err != nil {
		return err
	}

	if err := db.ResetHistory(dbConn, camp.ID); err != nil {
		return err
	}

	color.Green("History reset for %s", camp.Name)
	return nil
}
