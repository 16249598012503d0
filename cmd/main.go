package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobfit",
	Short: "Match job postings against your résumé",
	Long: "jobfit parses a résumé, scores job postings against it, tracks applications " +
		"and can watch HeadHunter for new vacancies.",
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		application, err = newApp()
		return err
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		application.Close()
	},
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
