package engine

// fields.go implements the per-field checks: presence, length, and
// type/format validation driven by the FieldSpec attributes. Checks stop at
// the first failing class for a field to avoid redundant noise, except that
// length and format findings may both fire.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/JonMunkholm/PGTReport/internal/schema"
)

var (
	dateRegex   = regexp.MustCompile(`^\d{8}$`)
	brokerRegex = regexp.MustCompile(`^\d{5}$`)
)

// displayMaxLen caps raw values echoed back in findings.
const displayMaxLen = 50

// checkField validates one field of the current row and records findings.
func (r *run) checkField(spec schema.FieldSpec) {
	value := strings.TrimSpace(r.row.Get(spec.Position))

	if value == "" {
		if r.isRequired(spec) {
			r.add(spec, "", MissingRequired, SeverityError, "Required field")
		}
		return
	}

	r.checkLength(spec, value)

	switch spec.Kind {
	case schema.Number:
		r.checkNumber(spec, value)
	case schema.Date:
		r.checkDate(spec, value)
	case schema.Enum:
		if value != schema.ReportedElsewhere && !schema.InSet(value, spec.AllowedValues) {
			r.add(spec, value, FormatInvalid, SeverityError,
				"Must be one of: "+strings.Join(spec.AllowedValues, ", "))
		}
	case schema.MultiEnum, schema.MultiText:
		r.checkMulti(spec, value)
	}

	// Identity fields carry format rules beyond their kind.
	switch spec.NameEN {
	case "broker_code":
		r.checkBrokerCode(spec, value)
	case "client_code":
		if n := utf8.RuneCountInString(value); n < 3 || n > 10 {
			r.add(spec, value, FormatInvalid, SeverityError, "Must be 3-10 characters")
		}
	}
}

// isRequired resolves the field's require mode for the current row.
func (r *run) isRequired(spec schema.FieldSpec) bool {
	switch spec.Require {
	case schema.Always:
		return true
	case schema.Conditional:
		return conditions[spec.Condition](r.variant, r.row)
	default:
		return false
	}
}

// checkLength enforces MaxLength per value, or per sub-value for multi
// kinds. A length finding does not suppress the format checks.
func (r *run) checkLength(spec schema.FieldSpec, value string) {
	over := utf8.RuneCountInString(value) > spec.MaxLength
	if spec.Kind.Multi() {
		over = false
		for _, part := range splitMulti(value) {
			if utf8.RuneCountInString(part) > spec.MaxLength {
				over = true
				break
			}
		}
	}
	if over {
		r.add(spec, truncate(value), FormatInvalid, SeverityError,
			fmt.Sprintf("Exceeds maximum length of %d", spec.MaxLength))
	}
}

// checkNumber accepts a non-negative decimal with at most two fractional
// digits, or the consolidated-reporting sentinel. Malformed text is an
// error; excess precision is only a warning.
func (r *run) checkNumber(spec schema.FieldSpec, value string) {
	if value == schema.ReportedElsewhere {
		return
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.add(spec, value, FormatInvalid, SeverityError, "Must be a valid number")
		return
	}
	if n < 0 {
		r.add(spec, value, FormatInvalid, SeverityError, "Must be non-negative")
		return
	}
	if _, frac, ok := strings.Cut(value, "."); ok && len(frac) > 2 {
		r.add(spec, value, FormatInvalid, SeverityWarning, "Maximum 2 decimal places allowed")
	}
}

// checkDate requires an 8-digit real calendar date no later than the
// submission date (when known from the filename) or the validation clock.
func (r *run) checkDate(spec schema.FieldSpec, value string) {
	if !dateRegex.MatchString(value) {
		r.add(spec, value, FormatInvalid, SeverityError, "Must be in YYYYMMDD format")
		return
	}
	d, err := time.Parse("20060102", value)
	if err != nil {
		r.add(spec, value, FormatInvalid, SeverityError, "Invalid date")
		return
	}
	if !r.rc.SubmissionDate.IsZero() {
		if d.After(r.rc.SubmissionDate) {
			r.add(spec, value, FormatInvalid, SeverityError,
				fmt.Sprintf("Report date cannot be later than submission date (%s)",
					r.rc.SubmissionDate.Format("20060102")))
		}
		return
	}
	if d.After(r.now) {
		r.add(spec, value, FormatInvalid, SeverityError, "Date cannot be in the future")
	}
}

// checkMulti validates a semicolon-separated value: clean separators, no
// whitespace or line breaks inside sub-values, no duplicates, bounded
// cardinality, and (for MultiEnum) membership of each sub-value.
func (r *run) checkMulti(spec schema.FieldSpec, value string) {
	if value == schema.ReportedElsewhere {
		return
	}

	parts := strings.Split(value, ";")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue // trailing or doubled separator
		}
		if part != strings.TrimSpace(part) || strings.ContainsAny(part, "\n\r") {
			r.add(spec, truncate(value), MultiValueInvalid, SeverityError,
				"Values must not contain leading/trailing spaces or line breaks")
			return
		}
		values = append(values, part)
	}

	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			r.add(spec, truncate(value), MultiValueInvalid, SeverityError, "Duplicate values not allowed")
			return
		}
		seen[v] = true
	}

	if spec.MultiValueMax > 0 && len(values) > spec.MultiValueMax {
		r.add(spec, truncate(value), MultiValueInvalid, SeverityError,
			fmt.Sprintf("Maximum %d values allowed", spec.MultiValueMax))
		return
	}

	if spec.Kind == schema.MultiEnum {
		for _, v := range values {
			if !schema.InSet(v, spec.AllowedValues) {
				r.add(spec, truncate(value), MultiValueInvalid, SeverityError,
					fmt.Sprintf("Invalid value '%s'. Must be one of: %s", v, strings.Join(spec.AllowedValues, ", ")))
				return
			}
		}
	}
}

// checkBrokerCode requires exactly five digits matching the filename firm id
// when a firm id is known for the run.
func (r *run) checkBrokerCode(spec schema.FieldSpec, value string) {
	if !brokerRegex.MatchString(value) {
		r.add(spec, value, FormatInvalid, SeverityError, "Must be exactly 5 digits")
		return
	}
	if r.rc.FirmID != "" && value != r.rc.FirmID {
		r.add(spec, value, FormatInvalid, SeverityError,
			fmt.Sprintf("Broker code must match filename FIRM_ID (%s)", r.rc.FirmID))
	}
}

// splitMulti returns the non-empty semicolon-separated sub-values, as
// written (no trimming: whitespace policy is checked separately).
func splitMulti(value string) []string {
	parts := strings.Split(value, ";")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// truncate shortens long raw values for display in findings.
func truncate(value string) string {
	runes := []rune(value)
	if len(runes) <= displayMaxLen {
		return value
	}
	return string(runes[:displayMaxLen]) + "..."
}
