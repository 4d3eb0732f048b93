// ABOUTME: Calendar CLI commands
// ABOUTME: Implements calendar list and show subcommands

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/mastermind/internal/db"
	"github.com/harper/mastermind/internal/models"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Inspect generated calendars",
	Long:  "List and display the weeks generated for a campaign.",
}

var calendarListCmd = &cobra.Command{
	Use:   "list <campaign>",
	Short: "List calendars for a campaign",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarList,
}

var calendarShowCmd = &cobra.Command{
	Use:   "show <calendar-id>",
	Short: "Show one week in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarShow,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.AddCommand(calendarListCmd, calendarShowCmd)
}

func runCalendarList(cmd *cobra.Command, args []string) error {
	camp, err := db.GetCampaign(dbConn, args[0])
	if err != nil {
		return err
	}

	records, err := db.ListCalendars(dbConn, camp.ID.String())
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No calendars found. Run 'mastermind generate' first.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWEEK\tSTART\tPOSTS\tCOMMENTS\tSCORE")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%d/10\n",
			rec.ID.String()[:8], rec.Calendar.WeekNumber,
			rec.Calendar.WeekStartDate.Format("2006-01-02"),
			len(rec.Calendar.Posts), len(rec.Calendar.Comments),
			rec.Calendar.QualityMetrics.OverallScore)
	}
	return w.Flush()
}

func runCalendarShow(cmd *cobra.Command, args []string) error {
	rec, err := db.GetCalendar(dbConn, args[0])
	if err != nil {
		return err
	}
	cal := rec.Calendar

	color.Cyan("Week %d · %s – %s",
		cal.WeekNumber,
		cal.WeekStartDate.Format("Jan 2"),
		cal.WeekEndDate.Format("Jan 2, 2006"))
	fmt.Printf("Score: %d/10 (naturalness %d, diversity %d, keyword coverage %.0f%%)\n",
		cal.QualityMetrics.OverallScore, cal.QualityMetrics.Naturalness,
		cal.QualityMetrics.DiversityScore, cal.QualityMetrics.KeywordCoverage)
	for _, warning := range cal.QualityMetrics.Warnings {
		color.Yellow("⚠ %s", warning)
	}
	fmt.Println()

	faint := color.New(color.Faint)
	for _, post := range cal.Posts {
		fmt.Printf("%s · %s\n", post.Community, post.Title)
		faint.Printf("%s by u/%s · %s\n\n", post.Timestamp.Format("Mon Jan 2 15:04"),
			post.AuthorUsername, post.EngagementType)
		fmt.Println(post.Body)
		fmt.Println()

		for _, comment := range commentsFor(cal.Comments, post.ID) {
			indent := "  "
			if comment.ParentCommentID != nil {
				indent = "    "
			}
			faint.Printf("%su/%s · %s · %s\n", indent, comment.Username,
				comment.Timestamp.Format("15:04"), comment.SentimentType)
			fmt.Printf("%s%s\n\n", indent, comment.CommentText)
		}
	}
	return nil
}

func commentsFor(comments []models.Comment, postID string) []models.Comment {
	var out []models.Comment
	for _, c := range comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}
