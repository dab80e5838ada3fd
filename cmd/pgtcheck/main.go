// Pgtcheck validates programmatic trading report submissions before they
// are sent to an exchange.
//
// Usage:
//
//	# Validate a submission and print the text report
//	pgtcheck validate SH_PGTDRPT_09999_20250805.csv
//
//	# Emit the result as JSON or YAML
//	pgtcheck validate --format json SZ_PGTDRPT_01234_20250801.csv
//
//	# Show version information
//	pgtcheck version
//
// The process exits with status 0 only when the submission has no errors.
package main

func main() {
	Execute()
}
