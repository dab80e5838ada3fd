package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/PGTReport/internal/engine"
	"github.com/JonMunkholm/PGTReport/internal/reader"
	"github.com/JonMunkholm/PGTReport/internal/report"
	"github.com/JonMunkholm/PGTReport/internal/schema"
)

var validateFlags struct {
	format string
	output string
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a submission file",
	Long: `Validate every row of a submission file and print the result.

The exit status is 0 when the submission has no errors and 1 otherwise.
Warnings do not fail the validation.

Examples:
  # Validate a Shanghai submission
  pgtcheck validate SH_PGTDRPT_09999_20250805.csv

  # Emit the result as JSON
  pgtcheck validate --format json SZ_PGTDRPT_01234_20250801.csv

  # Write the report to a file
  pgtcheck validate -o result.txt SH_PGTDRPT_09999_20250805.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.format, "format", "f", "text", "output format: text, json, yaml")
	validateCmd.Flags().StringVarP(&validateFlags.output, "output", "o", "", "write the report to a file instead of stdout")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := report.ParseFormat(validateFlags.format)
	if err != nil {
		return err
	}

	path := args[0]
	meta, err := reader.ParseFilename(filepath.Base(path), time.Now())
	if err != nil {
		return err
	}

	variant, err := schema.Get(meta.Variant)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "variant: %s, firm: %s, submission date: %s\n",
			meta.Variant, meta.FirmID, meta.SubmissionDate.Format("20060102"))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open submission: %w", err)
	}
	defer f.Close()

	rows, err := reader.ReadRows(f, variant)
	if err != nil {
		return err
	}

	rep := engine.New(variant).Validate(rows, engine.RunContext{
		FirmID:         meta.FirmID,
		SubmissionDate: meta.SubmissionDate,
	})

	out := os.Stdout
	if validateFlags.output != "" {
		out, err = os.Create(validateFlags.output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}
	if err := report.Write(out, rep, format); err != nil {
		return err
	}

	if !rep.Passed {
		os.Exit(1)
	}
	return nil
}
