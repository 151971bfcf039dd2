package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"casestudypilot/internal/membership"
)

var verifyCompanyCmd = &cobra.Command{
	Use:   "verify-company",
	Short: "Verify a company against the CNCF end-user member list",
	Long:  "Fetches the CNCF landscape and checks whether the company is an end-user member, using exact then fuzzy name matching.",
	RunE:  runVerifyCompany,
}

var (
	verifyCompanyName   string
	verifyCompanyOutput string
)

func init() {
	verifyCompanyCmd.Flags().StringVarP(&verifyCompanyName, "company", "c", "", "Company name to verify (required)")
	verifyCompanyCmd.Flags().StringVarP(&verifyCompanyOutput, "out", "o", "", "Path to output verification JSON file (optional)")

	if err := verifyCompanyCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}

	rootCmd.AddCommand(verifyCompanyCmd)
}

func runVerifyCompany(cmd *cobra.Command, _ []string) error {
	checks := membership.ValidateSubject(verifyCompanyName, 1.0)
	if len(checks.Critical) > 0 {
		return fmt.Errorf("invalid company name: %s", checks.Critical[0])
	}

	verification, err := membership.NewClient().Verify(cmd.Context(), verifyCompanyName)
	if err != nil {
		return err
	}

	if verification.IsMember {
		fmt.Printf("%s is a CNCF end-user member (matched %q, confidence %.2f, method %s)\n",
			verification.QueryName, verification.MatchedName, verification.Confidence, verification.MatchMethod)
	} else {
		fmt.Printf("%s is NOT a CNCF end-user member (best match %q, confidence %.2f)\n",
			verification.QueryName, verification.MatchedName, verification.Confidence)
	}

	if verifyCompanyOutput != "" {
		return writeJSON(verifyCompanyOutput, verification)
	}
	if !verification.IsMember {
		return fmt.Errorf("company %q is not a CNCF end-user member", verification.QueryName)
	}
	return nil
}
