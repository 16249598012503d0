package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage the stored résumé",
}

var resumeUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Parse a résumé file (pdf, docx, doc, odt, rtf, html, txt, md) and store it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stored, err := application.resumes.Upload(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		profile := stored.Profile
		fmt.Fprintf(cmd.OutOrStdout(), "Parsed %s\n", stored.FileName)
		fmt.Fprintf(cmd.OutOrStdout(), "Skills (%d): %s\n", len(profile.Skills), strings.Join(profile.Skills, ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "Experience: %d entries, %.1f years\n", len(profile.Experience), profile.TotalExperienceYears)
		return nil
	},
}

var resumeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		stored, err := application.resumes.Current(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, stored)
	},
}

func init() {
	resumeCmd.AddCommand(resumeUploadCmd, resumeShowCmd)
	rootCmd.AddCommand(resumeCmd)
}
