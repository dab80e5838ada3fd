// Package report renders validation reports for humans and machines.
//
// The text form is the line-oriented layout the compliance teams review; the
// JSON and YAML forms expose the same data for programmatic consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/PGTReport/internal/engine"
)

// Format selects a rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, json, or yaml)", s)
}

// Write renders the report in the given format.
func Write(w io.Writer, rep *engine.Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rep)
	default:
		_, err := io.WriteString(w, Text(rep))
		return err
	}
}

// Line formats a single finding:
//
//	[ERROR] Row 3 [Account: X, BCAN: C0001], Column 6 '券商客户编码' (client_code): message (value: 'C0001')
func Line(iss engine.Issue) string {
	var context string
	if iss.AccountName != "" || iss.ClientCode != "" {
		var parts []string
		if iss.AccountName != "" {
			parts = append(parts, "Account: "+iss.AccountName)
		}
		if iss.ClientCode != "" {
			parts = append(parts, "BCAN: "+iss.ClientCode)
		}
		context = " [" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("[%s] Row %d%s, Column %d '%s' (%s): %s (value: '%s')",
		iss.Severity, iss.RowOrdinal, context, iss.Position+1, iss.NameCN, iss.NameEN, iss.Message, iss.Value)
}

// Text renders the full line-oriented report: findings grouped by severity,
// then the summary block and the final verdict.
func Text(rep *engine.Report) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	b.WriteString(rule + "\n")
	switch rep.Variant {
	case "SHENZHEN":
		b.WriteString("SZSE Programmatic Trading Report Validation Results\n")
	default:
		b.WriteString("SSE Programmatic Trading Report Validation Results\n")
	}
	b.WriteString(rule + "\n\n")

	var errors, warnings []engine.Issue
	for _, iss := range rep.Issues {
		if iss.Severity == engine.SeverityError {
			errors = append(errors, iss)
		} else {
			warnings = append(warnings, iss)
		}
	}

	if len(errors) > 0 {
		b.WriteString(thin + "\nERRORS:\n" + thin + "\n")
		for _, iss := range errors {
			b.WriteString(Line(iss) + "\n")
		}
		b.WriteString("\n")
	}
	if len(warnings) > 0 {
		b.WriteString(thin + "\nWARNINGS:\n" + thin + "\n")
		for _, iss := range warnings {
			b.WriteString(Line(iss) + "\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total Rows: %d\n", rep.TotalRows)
	fmt.Fprintf(&b, "Valid Rows: %d\n", rep.ValidRows)
	fmt.Fprintf(&b, "Invalid Rows: %d\n", rep.InvalidRows)
	fmt.Fprintf(&b, "Total Errors: %d\n", rep.TotalErrors)
	fmt.Fprintf(&b, "Total Warnings: %d\n", rep.TotalWarnings)
	b.WriteString("\n")
	if rep.Passed {
		b.WriteString("Validation PASSED\n")
	} else {
		b.WriteString("Validation FAILED\n")
	}
	return b.String()
}
