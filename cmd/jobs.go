package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/maxaizer/jobfit/internal/repositories"
	"github.com/maxaizer/jobfit/internal/services"
	"github.com/spf13/cobra"
)

var (
	listStatus   string
	listMinScore int
	listLimit    int
	exportOutput string
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Track analyzed jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List analyzed jobs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter := repositories.JobFilter{MinScore: listMinScore, Limit: listLimit}
		if listStatus != "" {
			status, err := models.ToJobStatus(listStatus)
			if err != nil {
				return err
			}
			filter.Status = status
		}

		jobs, err := application.tracker.List(cmd.Context(), filter)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSCORE\tRECOMMENDATION\tSTATUS\tTITLE\tCOMPANY")
		for _, job := range jobs {
			fmt.Fprintf(w, "%s\t%d%%\t%s\t%s\t%s\t%s\n",
				job.JobID, job.MatchScore, job.Recommendation, job.Status, job.Title, job.Company)
		}
		return w.Flush()
	},
}

var jobsStatusCmd = &cobra.Command{
	Use:   "status <job-id> <status>",
	Short: "Set the application status (analyzed, applied, rejected, interviewing, offer, accepted)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := application.tracker.UpdateStatus(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", job.JobID, job.Status)
		return nil
	},
}

var jobsNotesCmd = &cobra.Command{
	Use:   "notes <job-id> <text>",
	Short: "Replace the notes of a job",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := application.tracker.SetNotes(cmd.Context(), args[0], args[1])
		return err
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <job-id>",
	Short: "Remove a job from the history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.tracker.Delete(cmd.Context(), args[0])
	},
}

var jobsExportCmd = &cobra.Command{
	Use:   "export <json|csv|md>",
	Short: "Export the history; writes job-analysis-<date>.<format> unless --out is given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, content, err := application.tracker.Export(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if exportOutput == "-" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), content)
			return err
		}
		if exportOutput != "" {
			name = exportOutput
		}
		if err = os.WriteFile(name, []byte(content), 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", name)
		return nil
	},
}

var jobsCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove jobs older than the retention period now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		removed, err := cleanOnce(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d jobs\n", removed)
		return nil
	},
}

func cleanOnce(ctx context.Context) (int64, error) {
	cfg := application.cfg.Analysis
	cleaner, err := services.NewJobsCleaner(application.jobs, cfg.RetentionDays, cfg.CleanupCron)
	if err != nil {
		return 0, err
	}
	defer cleaner.Stop()
	return cleaner.Clean(ctx)
}

func init() {
	jobsListCmd.Flags().StringVar(&listStatus, "status", "", "Only jobs with this status")
	jobsListCmd.Flags().IntVar(&listMinScore, "min-score", 0, "Only jobs scoring at least this")
	jobsListCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of jobs")
	jobsExportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output file, '-' for stdout")

	jobsCmd.AddCommand(jobsListCmd, jobsStatusCmd, jobsNotesCmd, jobsDeleteCmd, jobsExportCmd, jobsCleanCmd)
	rootCmd.AddCommand(jobsCmd)
}
