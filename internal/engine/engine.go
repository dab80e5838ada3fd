package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/JonMunkholm/PGTReport/internal/schema"
)

// Validator validates row sets against one schema variant. It is stateless
// between runs and safe for concurrent use.
type Validator struct {
	variant *schema.Variant
}

// New binds a validator to an immutable schema variant.
func New(variant *schema.Variant) *Validator {
	return &Validator{variant: variant}
}

// run carries the mutable state of one row's validation: the row, its
// identity context for findings, and the accumulated issues.
type run struct {
	variant *schema.Variant
	rc      RunContext
	now     time.Time

	row     Row
	account string
	client  string
	issues  []Issue
}

// add records one finding for the current row.
func (r *run) add(spec schema.FieldSpec, value string, cat Category, sev Severity, msg string) {
	r.issues = append(r.issues, Issue{
		RowOrdinal:  r.row.Ordinal,
		Position:    spec.Position,
		NameCN:      spec.NameCN,
		NameEN:      spec.NameEN,
		Value:       value,
		Category:    cat,
		Severity:    sev,
		Message:     msg,
		AccountName: r.account,
		ClientCode:  r.client,
	})
}

// Validate checks every row and aggregates the findings into a report.
// Row content never aborts the run; the returned report is always complete.
func (v *Validator) Validate(rows []Row, rc RunContext) *Report {
	now := rc.Now
	if now.IsZero() {
		now = time.Now()
	}

	report := &Report{
		Variant: v.variant.Key,
		Rows:    make([]RowResult, 0, len(rows)),
		Issues:  make([]Issue, 0),
	}

	firstSeen := make(map[string]int, len(rows)) // client code -> first ordinal
	resultIdx := make(map[int]int, len(rows))    // ordinal -> index into report.Rows
	var duplicates []Issue

	for _, row := range rows {
		r := &run{
			variant: v.variant,
			rc:      rc,
			now:     now,
			row:     row,
			account: fieldValue(v.variant, row, "account_name"),
			client:  fieldValue(v.variant, row, "client_code"),
		}

		r.validateRow()

		// Within a row, findings are ordered by column position.
		sort.SliceStable(r.issues, func(i, j int) bool {
			return r.issues[i].Position < r.issues[j].Position
		})

		errs, warns := tally(r.issues)
		resultIdx[row.Ordinal] = len(report.Rows)
		report.Rows = append(report.Rows, RowResult{
			Ordinal:     row.Ordinal,
			AccountName: r.account,
			ClientCode:  r.client,
			Valid:       errs == 0,
			Errors:      errs,
			Warnings:    warns,
		})
		report.Issues = append(report.Issues, r.issues...)

		if r.client != "" {
			if first, dup := firstSeen[r.client]; dup {
				duplicates = append(duplicates, r.duplicateIssue(first))
			} else {
				firstSeen[r.client] = row.Ordinal
			}
		}
	}

	// Row-set findings come after all per-row findings.
	for _, iss := range duplicates {
		report.Issues = append(report.Issues, iss)
		res := &report.Rows[resultIdx[iss.RowOrdinal]]
		res.Errors++
		res.Valid = false
	}

	for _, res := range report.Rows {
		report.TotalRows++
		if res.Valid {
			report.ValidRows++
		} else {
			report.InvalidRows++
		}
		report.TotalErrors += res.Errors
		report.TotalWarnings += res.Warnings
	}
	report.Passed = report.TotalErrors == 0
	return report
}

// validateRow applies the per-field checks and row-scoped rules. Rows of
// the termination report type only get presence checks on the identity
// whitelist; nothing else is required or inspected for them.
func (r *run) validateRow() {
	if r.value("report_type") == schema.ReportTypeStop {
		for _, spec := range r.variant.Fields {
			if !schema.IsIdentityField(spec.NameEN) {
				continue
			}
			if r.value(spec.NameEN) == "" {
				r.add(spec, "", MissingRequired, SeverityError, "Required field")
			}
		}
		return
	}

	for _, spec := range r.variant.Fields {
		r.checkField(spec)
	}
	r.applyRowRules()
}

// duplicateIssue builds the row-set finding for a repeated client code.
func (r *run) duplicateIssue(firstOrdinal int) Issue {
	spec, _ := r.fieldSpec("client_code")
	return Issue{
		RowOrdinal:  r.row.Ordinal,
		Position:    spec.Position,
		NameCN:      spec.NameCN,
		NameEN:      spec.NameEN,
		Value:       r.client,
		Category:    DuplicateKey,
		Severity:    SeverityError,
		Message:     fmt.Sprintf("Duplicate client code (first occurrence: row %d)", firstOrdinal),
		AccountName: r.account,
		ClientCode:  r.client,
	}
}

func tally(issues []Issue) (errs, warns int) {
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			errs++
		} else {
			warns++
		}
	}
	return errs, warns
}
