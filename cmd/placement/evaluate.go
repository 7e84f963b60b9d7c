package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/talentbruecke/placement-backend/internal/catalog"
	"github.com/talentbruecke/placement-backend/internal/db"
	"github.com/talentbruecke/placement-backend/internal/matching"
)

var evaluateCatalog string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <applicant-user-id> <job-id>",
	Short: "Evaluate an applicant against a job",
	Long:  `Run the eligibility check and match scorer for one applicant-job pair and print the result as JSON.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateCatalog, "catalog", "", "Path to a document requirements override file")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	applicantID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid applicant user ID: %w", err)
	}
	jobID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid job ID: %w", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cat := catalog.Default()
	if evaluateCatalog != "" {
		cat, err = catalog.Load(evaluateCatalog)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	job, err := database.GetJobByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return fmt.Errorf("job not found: %s", jobID)
	}

	profile, err := database.GetProfileByUserID(ctx, applicantID)
	if err != nil {
		return err
	}
	documents, err := database.ListDocumentsByApplicant(ctx, applicantID)
	if err != nil {
		return err
	}

	result := struct {
		Eligibility matching.EligibilityVerdict `json:"eligibility"`
		Match       matching.MatchScore         `json:"match"`
	}{
		Eligibility: matching.CheckEligibility(profile, job, documents, cat),
		Match:       matching.ComputeMatchScore(profile, job),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
