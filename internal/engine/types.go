package engine

import (
	"time"

	"github.com/JonMunkholm/PGTReport/internal/schema"
)

// Severity classifies a finding. Only errors invalidate a row.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Category is the finding taxonomy. Every issue carries exactly one.
type Category string

const (
	MissingRequired        Category = "missing_required"
	FormatInvalid          Category = "format_invalid"
	MultiValueInvalid      Category = "multi_value_invalid"
	CrossFieldInconsistent Category = "cross_field_inconsistent"
	HFTComplianceViolation Category = "hft_compliance_violation"
	DuplicateKey           Category = "duplicate_key"
)

// Row is one record under validation: a mapping from 0-based column
// position to raw cell text, plus the 1-based source line for reporting.
// Absent cells read as empty strings. Rows are owned by a single run and
// never mutated by the engine.
type Row struct {
	Ordinal int
	Cells   map[int]string
}

// Get returns the raw value at the given column, or "" when absent.
func (r Row) Get(pos int) string {
	return r.Cells[pos]
}

// Issue is a single validation finding, immutable once created.
type Issue struct {
	RowOrdinal  int      `json:"row_num"`
	Position    int      `json:"field_col"` // 0-based column index
	NameCN      string   `json:"field_name_cn"`
	NameEN      string   `json:"field_name_en"`
	Value       string   `json:"value"`
	Category    Category `json:"category"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	AccountName string   `json:"account_name,omitempty"`
	ClientCode  string   `json:"client_code,omitempty"`
}

// RowResult summarizes one row's outcome.
type RowResult struct {
	Ordinal     int    `json:"row_num"`
	AccountName string `json:"account_name"`
	ClientCode  string `json:"client_code"`
	Valid       bool   `json:"is_valid"`
	Errors      int    `json:"error_count"`
	Warnings    int    `json:"warning_count"`
}

// Report is the aggregated outcome of one validation run.
type Report struct {
	Variant       schema.VariantKey `json:"variant"`
	TotalRows     int               `json:"total_rows"`
	ValidRows     int               `json:"valid_rows"`
	InvalidRows   int               `json:"invalid_rows"`
	TotalErrors   int               `json:"total_errors"`
	TotalWarnings int               `json:"total_warnings"`
	Rows          []RowResult       `json:"row_results"`
	Issues        []Issue           `json:"issues"`
	Passed        bool              `json:"passed"`
}

// RunContext carries per-run facts derived outside the engine, typically
// from the submission filename. Zero values disable the related checks.
type RunContext struct {
	// FirmID is the 5-digit broker code from the filename. When set, the
	// broker-code field of every row must match it.
	FirmID string

	// SubmissionDate bounds the report-date field. When zero, report dates
	// are bounded by Now instead.
	SubmissionDate time.Time

	// Now is the validation clock. Zero means time.Now at run start.
	Now time.Time
}
