package engine

// rules.go implements the row-scoped business rules that span multiple
// fields: fund-source/ratio arithmetic, leverage consistency, and the
// high-frequency trading disclosure requirements. All of them skip fields
// delegated via the consolidated-reporting sentinel, and all of them skip
// values the per-field checks already flagged as malformed.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/JonMunkholm/PGTReport/internal/schema"
)

// ratioRegex parses breakdown entries like "自有资金80%;募集资金20%".
var ratioRegex = regexp.MustCompile(`([^;]+?)(\d+(?:\.\d+)?)\s*%`)

// applyRowRules runs every cross-field rule for the current row.
func (r *run) applyRowRules() {
	hasLeverage := strings.Contains(r.value("fund_sources"), schema.FundSourceLeveraged)

	r.checkFundSourceRatio()
	r.checkLeverageRatio(hasLeverage)
	r.checkLeverageSize(hasLeverage)
	r.checkHighFreq()
}

// value returns the trimmed value of the named field, or "" when the
// variant has no such field.
func (r *run) value(nameEN string) string {
	pos := r.variant.Position(nameEN)
	if pos < 0 {
		return ""
	}
	return strings.TrimSpace(r.row.Get(pos))
}

// fieldSpec returns the spec of the named field. The bool is false when the
// variant lacks the field, in which case the rule keyed on it is skipped.
func (r *run) fieldSpec(nameEN string) (schema.FieldSpec, bool) {
	pos := r.variant.Position(nameEN)
	if pos < 0 {
		return schema.FieldSpec{}, false
	}
	return r.variant.Fields[pos], true
}

// checkFundSourceRatio requires one percentage entry per declared fund
// source and an exact sum of 100. Skipped entirely when any participating
// field is delegated to a consolidated filer.
func (r *run) checkFundSourceRatio() {
	spec, ok := r.fieldSpec("fund_source_ratio")
	if !ok {
		return
	}
	ratio := r.value("fund_source_ratio")
	sources := r.value("fund_sources")
	if ratio == "" || ratio == schema.ReportedElsewhere {
		return
	}
	if sources == "" || sources == schema.ReportedElsewhere {
		return
	}
	if r.value("fund_size") == schema.ReportedElsewhere {
		return
	}

	matches := ratioRegex.FindAllStringSubmatch(ratio, -1)
	if len(matches) == 0 {
		r.add(spec, ratio, CrossFieldInconsistent, SeverityError,
			"Invalid format. Expected: '来源1XX%;来源2XX%'")
		return
	}

	declared := make(map[string]bool, len(matches))
	var total int64
	for _, m := range matches {
		declared[strings.TrimSpace(m[1])] = true
		total += parsePercent(m[2])
	}

	for _, src := range splitMulti(sources) {
		src = strings.TrimSpace(src)
		if src != "" && !declared[src] {
			r.add(spec, ratio, CrossFieldInconsistent, SeverityError,
				"Missing ratio for source: "+src)
			return
		}
	}

	if total != 100*percentScale {
		r.add(spec, ratio, CrossFieldInconsistent, SeverityError,
			fmt.Sprintf("Ratios must sum to 100%% (current: %s%%)", formatPercent(total)))
	}
}

// percentScale fixes ratio arithmetic at four decimal places, so sums
// stay exact in decimal.
const percentScale = 10000

// parsePercent converts a percentage literal (digits with an optional
// fraction, per ratioRegex) into scaled integer form. Fraction digits
// beyond four are dropped.
func parsePercent(s string) int64 {
	intPart, frac, _ := strings.Cut(s, ".")
	n, _ := strconv.ParseInt(intPart, 10, 64)
	v := n * percentScale
	if len(frac) > 4 {
		frac = frac[:4]
	}
	for len(frac) < 4 {
		frac += "0"
	}
	f, _ := strconv.ParseInt(frac, 10, 64)
	return v + f
}

// formatPercent renders a scaled percentage in plain decimal, trailing
// zeros trimmed.
func formatPercent(n int64) string {
	whole := n / percentScale
	frac := n % percentScale
	if frac == 0 {
		return strconv.FormatInt(whole, 10)
	}
	return fmt.Sprintf("%d.%s", whole, strings.TrimRight(fmt.Sprintf("%04d", frac), "0"))
}

// checkLeverageRatio enforces the leverage ratio law: never below 100,
// exactly 100 without leveraged funds, strictly above 100 with them.
func (r *run) checkLeverageRatio(hasLeverage bool) {
	spec, ok := r.fieldSpec("leverage_ratio")
	if !ok {
		return
	}
	raw := r.value("leverage_ratio")
	if raw == "" || raw == schema.ReportedElsewhere {
		return
	}
	ratio, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return // malformed text already flagged by the field check
	}

	switch {
	case ratio < 100:
		r.add(spec, raw, CrossFieldInconsistent, SeverityError,
			"Must be >= 100 (leverage ratio cannot be less than 100%)")
	case !hasLeverage && ratio != 100:
		r.add(spec, raw, CrossFieldInconsistent, SeverityError,
			"Must be 100 when no leverage funds")
	case hasLeverage && ratio <= 100:
		r.add(spec, raw, CrossFieldInconsistent, SeverityError,
			"Must be > 100 when leverage funds exist")
	}
}

// checkLeverageSize ties the leveraged amount to the fund-source set: zero
// without leveraged funds, positive and within the total fund size with
// them.
func (r *run) checkLeverageSize(hasLeverage bool) {
	spec, ok := r.fieldSpec("leverage_size")
	if !ok {
		return
	}
	levRaw := r.value("leverage_size")
	fundRaw := r.value("fund_size")
	if levRaw == schema.ReportedElsewhere || fundRaw == schema.ReportedElsewhere {
		return
	}

	lev, ok := parseOrZero(levRaw)
	if !ok {
		return
	}
	fund, ok := parseOrZero(fundRaw)
	if !ok {
		return
	}

	switch {
	case !hasLeverage && lev != 0:
		r.add(spec, levRaw, CrossFieldInconsistent, SeverityError,
			"Must be 0 when leverage not in fund sources")
	case hasLeverage && lev <= 0:
		r.add(spec, levRaw, CrossFieldInconsistent, SeverityError,
			"Must be > 0 when leverage is in fund sources")
	case lev > fund && fund > 0:
		r.add(spec, levRaw, CrossFieldInconsistent, SeverityError,
			fmt.Sprintf("Cannot exceed total fund size (%s)", fundRaw))
	}
}

// checkHighFreq enforces the disclosure requirements for high-frequency
// rows. Declining to upload a test report is a violation unless the
// order-splitting exemption applies (qualifying-investor code present); the
// applied-for exemption value must be mirrored on the server-location field.
func (r *run) checkHighFreq() {
	if !isHighFreq(r.variant, r.row) {
		return
	}

	uploadSpec, ok := r.fieldSpec("upload_test_report")
	if !ok {
		return
	}
	serverSpec, ok := r.fieldSpec("hft_server_location")
	if !ok {
		return
	}

	upload := r.value("upload_test_report")
	server := r.value("hft_server_location")
	qfii := r.value("qfii_code")

	switch upload {
	case schema.ValueNo:
		if qfii == "" {
			r.add(uploadSpec, upload, HFTComplianceViolation, SeverityError,
				"High-frequency accounts must upload test report or apply for exemption")
		}
	case schema.ValueYes:
		if server == "" {
			r.add(serverSpec, server, HFTComplianceViolation, SeverityWarning,
				"Required for high-frequency trading accounts")
		}
	case schema.ExemptValue:
		if server != "" && server != schema.ExemptValue {
			r.add(serverSpec, server, HFTComplianceViolation, SeverityWarning,
				fmt.Sprintf("Should be '%s' when applying for exemption", schema.ExemptValue))
		}
	}
}

// parseOrZero parses a decimal, treating empty as zero. The bool is false
// for malformed text, which the per-field number check reports.
func parseOrZero(raw string) (float64, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
