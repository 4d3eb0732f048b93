// ABOUTME: Campaign CLI commands
// ABOUTME: Implements campaign import, list, show, delete subcommands

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/mastermind/internal/campaign"
	"github.com/harper/mastermind/internal/db"
	"github.com/harper/mastermind/internal/identity"
)

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Manage campaigns",
	Long:  "Import, list, inspect, and delete campaign definitions.",
}

var campaignImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Import a campaign definition",
	Args:  cobra.ExactArgs(1),
	RunE:  runCampaignImport,
}

var campaignListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all campaigns",
	RunE:  runCampaignList,
}

var campaignShowCmd = &cobra.Command{
	Use:   "show <campaign>",
	Short: "Show campaign details",
	Args:  cobra.ExactArgs(1),
	RunE:  runCampaignShow,
}

var campaignDeleteCmd = &cobra.Command{
	Use:   "delete <campaign>",
	Short: "Delete a campaign and all its calendars",
	Args:  cobra.ExactArgs(1),
	RunE:  runCampaignDelete,
}

func init() {
	rootCmd.AddCommand(campaignCmd)
	campaignCmd.AddCommand(campaignImportCmd, campaignListCmd, campaignShowCmd, campaignDeleteCmd)
}

func runCampaignImport(cmd *cobra.Command, args []string) error {
	def, err := campaign.Load(args[0])
	if err != nil {
		return err
	}

	id := identity.GetIdentity(identityFlag, "cli")
	c := db.NewCampaign(def, id)
	if err := db.CreateCampaign(dbConn, c); err != nil {
		return fmt.Errorf("failed to import campaign: %w", err)
	}

	color.Green("Imported campaign: %s", c.Name)
	fmt.Printf("Campaign ID: %s\n", c.ID.String()[:8])
	fmt.Printf("Company: %s · %d personas · %d communities · %d keywords\n",
		c.CompanyName, len(def.Personas), len(def.Communities), len(def.Keywords))
	return nil
}

func runCampaignList(cmd *cobra.Command, args []string) error {
	campaigns, err := db.ListCampaigns(dbConn)
	if err != nil {
		return err
	}

	if len(campaigns) == 0 {
		fmt.Println("No campaigns found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tCREATED")
	for _, c := range campaigns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			c.ID.String()[:8], c.Name, c.CompanyName, c.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func runCampaignShow(cmd *cobra.Command, args []string) error {
	c, err := db.GetCampaign(dbConn, args[0])
	if err != nil {
		return err
	}

	color.Cyan("%s", c.Name)
	fmt.Printf("ID: %s\n", c.ID.String()[:8])
	fmt.Printf("Company: %s (%s)\n", c.CompanyName, c.Definition.Company.Website)
	fmt.Printf("ICP: %s\n", c.Definition.Company.ICP)
	fmt.Printf("Posts per week: %d\n\n", c.Definition.PostsPerWeek)

	fmt.Println("Personas:")
	for _, p := range c.Definition.Personas {
		fmt.Printf("  u/%s", p.Username)
		if len(p.CommunityAffinities) > 0 {
			fmt.Printf(" (affinity: %v)", p.CommunityAffinities)
		}
		fmt.Println()
	}

	fmt.Printf("\nCommunities: %v\n", c.Definition.Communities)
	fmt.Printf("Keywords: %v\n", c.Definition.Keywords)
	return nil
}

func runCampaignDelete(cmd *cobra.Command, args []string) error {
	c, err := db.GetCampaign(dbConn, args[0])
	if err != nil {
		return err
	}

	if err := db.DeleteCampaign(dbConn, args[0]); err != nil {
		return err
	}

	color.Green("Deleted campaign: %s", c.Name)
	return nil
}
