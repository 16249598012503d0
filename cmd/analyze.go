package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/maxaizer/jobfit/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	analyzeURL             string
	analyzeTitle           string
	analyzeCompany         string
	analyzeLocation        string
	analyzeDescriptionFile string
	analyzeHHVacancy       string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a job posting against the stored résumé",
	Long: "Scores either a posting given by flags (description read from a file, '-' for stdin) " +
		"or a HeadHunter vacancy fetched by id.",
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeURL, "url", "", "Posting URL")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Job title")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name")
	analyzeCmd.Flags().StringVar(&analyzeLocation, "location", "", "Job location")
	analyzeCmd.Flags().StringVarP(&analyzeDescriptionFile, "description", "d", "", "File with the job description, '-' for stdin")
	analyzeCmd.Flags().StringVar(&analyzeHHVacancy, "hh", "", "HeadHunter vacancy id")
	analyzeCmd.MarkFlagsMutuallyExclusive("hh", "url")
	analyzeCmd.MarkFlagsOneRequired("hh", "url")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	posting, err := postingFromFlags(cmd)
	if err != nil {
		return err
	}

	result, err := application.analyzer.Analyze(cmd.Context(), posting)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

func postingFromFlags(cmd *cobra.Command) (models.JobPosting, error) {
	if analyzeHHVacancy != "" {
		vacancy, err := application.hhClient.GetVacancy(cmd.Context(), analyzeHHVacancy)
		if err != nil {
			return models.JobPosting{}, errors.Wrap(err, "can't fetch vacancy")
		}
		return vacancy.ToJobPosting()
	}

	if analyzeDescriptionFile == "" {
		return models.JobPosting{}, fmt.Errorf("--description is required with --url")
	}

	var (
		description []byte
		err         error
	)
	if analyzeDescriptionFile == "-" {
		description, err = io.ReadAll(cmd.InOrStdin())
	} else {
		description, err = os.ReadFile(analyzeDescriptionFile)
	}
	if err != nil {
		return models.JobPosting{}, errors.Wrap(err, "can't read description")
	}

	return models.JobPosting{
		URL:         analyzeURL,
		Title:       analyzeTitle,
		Company:     analyzeCompany,
		Location:    analyzeLocation,
		Description: string(description),
	}, nil
}

func printJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
