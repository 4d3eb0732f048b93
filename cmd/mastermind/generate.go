// ABOUTME: Generate CLI command
// ABOUTME: Produces and persists next week's calendar for a campaign

package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/mastermind/internal/calendar"
	"github.com/harper/mastermind/internal/db"
	"github.com/harper/mastermind/internal/identity"
	"github.com/harper/mastermind/internal/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate <campaign>",
	Short: "Generate next week's calendar",
	Long: `Generate a posting calendar for the next week of a campaign.

Plans post slots across weekday peak hours, drafts titles and bodies,
simulates comment threads, scores the week, and persists both the
calendar and the rolled-forward history.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var weekStartFlag string

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&weekStartFlag, "week-start", "", "week start date (YYYY-MM-DD, default: current week)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	camp, err := db.GetCampaign(dbConn, args[0])
	if err != nil {
		return err
	}

	weekStart := time.Now()
	if weekStartFlag != "" {
		weekStart, err = time.Parse("2006-01-02", weekStartFlag)
		if err != nil {
			return fmt.Errorf("invalid week-start %q: use YYYY-MM-DD", weekStartFlag)
		}
	}

	seed := seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	hist, err := db.GetHistory(dbConn, camp.ID, camp.CompanyName)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	cal, next, err := calendar.New(seed).Generate(camp.Definition.Input(weekStart, 0), hist)
	if err != nil {
		return err
	}

	id := identity.GetIdentity(identityFlag, "cli")
	rec := db.NewCalendarRecord(camp.ID, cal, id)
	if err := db.CreateCalendar(dbConn, rec); err != nil {
		return fmt.Errorf("failed to store calendar: %w", err)
	}
	if err := db.SaveHistory(dbConn, camp.ID, next); err != nil {
		return fmt.Errorf("failed to store history: %w", err)
	}

	color.Green("Generated week %d for %s", cal.WeekNumber, camp.Name)
	fmt.Printf("Calendar ID: %s\n\n", rec.ID.String()[:8])

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tCOMMUNITY\tAUTHOR\tTYPE\tTITLE")
	for _, post := range cal.Posts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			post.Timestamp.Format("Mon 15:04"), post.Community,
			post.AuthorUsername, post.EngagementType, post.Title)
	}
	w.Flush()

	fmt.Printf("\n%d comments across %d threads\n", len(cal.Comments), threadCount(cal.Comments))
	fmt.Printf("Score: %d/10 (naturalness %d, diversity %d, keyword coverage %.0f%%)\n",
		cal.QualityMetrics.OverallScore, cal.QualityMetrics.Naturalness,
		cal.QualityMetrics.DiversityScore, cal.QualityMetrics.KeywordCoverage)

	for _, warning := range cal.QualityMetrics.Warnings {
		color.Yellow("⚠ %s", warning)
	}
	return nil
}

func threadCount(comments []models.Comment) int {
	seen := make(map[string]bool)
	for _, c := range comments {
		seen[c.PostID] = true
	}
	return len(seen)
}
