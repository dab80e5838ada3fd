package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pgtcheck",
	Short: "Validate programmatic trading report submissions",
	Long: `Pgtcheck validates programmatic trading report submissions against the
Shanghai and Shenzhen exchange reporting requirements.

The schema variant, firm id, and submission date are derived from the
filename, which must follow the exchange convention:

  SH_PGTDRPT_<FIRM_ID>_<YYYYMMDD>.csv   (Shanghai)
  SZ_PGTDRPT_<FIRM_ID>_<YYYYMMDD>.csv   (Shenzhen)`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
