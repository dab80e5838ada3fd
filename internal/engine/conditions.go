package engine

// conditions.go holds the closed dispatch table of requiredness predicates.
//
// Each schema.ConditionID maps to one pure function of other field values in
// the same row. A missing or blank referenced field evaluates to false, so
// predicates stay total over partially filled rows and never raise. The
// table is cross-checked against schema.ConditionIDs at init; a dangling id
// in either direction is a configuration fault.

import (
	"fmt"
	"strings"

	"github.com/JonMunkholm/PGTReport/internal/schema"
)

// predicate decides whether a conditionally required field is required for
// the given row under the given variant.
type predicate func(v *schema.Variant, row Row) bool

var conditions = map[schema.ConditionID]predicate{
	schema.CondFirstOrChange:       reqFirstOrChange,
	schema.CondFundSourceOther:     containsToken("fund_sources", schema.OtherToken),
	schema.CondHasLeverageSource:   containsToken("fund_sources", schema.FundSourceLeveraged),
	schema.CondLeverageSourceOther: containsToken("leverage_sources", schema.OtherToken),
	schema.CondQuantitative:        fieldEquals("is_quantitative", schema.ValueYes),
	schema.CondMainStrategyOther:   fieldEquals("main_strategy", schema.OtherToken),
	schema.CondMainStrategyFilled:  fieldFilled("main_strategy"),
	schema.CondSubStrategyOther:    containsToken("sub_strategy", schema.OtherToken),
	schema.CondSubStrategyFilled:   fieldFilled("sub_strategy"),
	schema.CondExecutionOther:      containsToken("execution_method", schema.OtherToken),
	schema.CondHighFreqNoExemption: reqHighFreqNoExemption,
	schema.CondQFIIExemption:       reqQFIIExemption,
}

func init() {
	for _, id := range schema.ConditionIDs {
		if _, ok := conditions[id]; !ok {
			panic(fmt.Sprintf("engine: no predicate for condition %q", id))
		}
	}
	if len(conditions) != len(schema.ConditionIDs) {
		panic("engine: predicate table contains ids outside schema.ConditionIDs")
	}
}

// fieldValue resolves a field by English name and returns its trimmed value.
// Fields absent from the variant read as "".
func fieldValue(v *schema.Variant, row Row, nameEN string) string {
	pos := v.Position(nameEN)
	if pos < 0 {
		return ""
	}
	return strings.TrimSpace(row.Get(pos))
}

func reqFirstOrChange(v *schema.Variant, row Row) bool {
	rt := fieldValue(v, row, "report_type")
	return rt == schema.ReportTypeInitial || rt == schema.ReportTypeChange
}

// containsToken matches a token inside a semicolon-joined multi-value field.
// Substring match mirrors the form's conventions: "其他" also matches an
// entry like "其他（说明）".
func containsToken(nameEN, token string) predicate {
	return func(v *schema.Variant, row Row) bool {
		return strings.Contains(fieldValue(v, row, nameEN), token)
	}
}

func fieldEquals(nameEN, want string) predicate {
	return func(v *schema.Variant, row Row) bool {
		return fieldValue(v, row, nameEN) == want
	}
}

func fieldFilled(nameEN string) predicate {
	return func(v *schema.Variant, row Row) bool {
		return fieldValue(v, row, nameEN) != ""
	}
}

// isHighFreq reports whether the row's order-rate or daily-order band falls
// in the high-volume enumerations. Band membership, not numeric comparison.
func isHighFreq(v *schema.Variant, row Row) bool {
	return schema.InSet(fieldValue(v, row, "max_order_rate"), schema.HighFreqRates) ||
		schema.InSet(fieldValue(v, row, "max_daily_orders"), schema.HighFreqDaily)
}

// reqHighFreqNoExemption makes the server-location field required for
// high-frequency rows on initial/change reports, unless an exemption has
// been applied for on the test-report field.
func reqHighFreqNoExemption(v *schema.Variant, row Row) bool {
	return isHighFreq(v, row) &&
		fieldValue(v, row, "upload_test_report") != schema.ExemptValue &&
		reqFirstOrChange(v, row)
}

// reqQFIIExemption makes the qualifying-investor code required exactly when
// the order-splitting exemption is being claimed: a high-frequency row on an
// initial/change report that declines to upload a test report.
func reqQFIIExemption(v *schema.Variant, row Row) bool {
	return isHighFreq(v, row) &&
		fieldValue(v, row, "upload_test_report") == schema.ValueNo &&
		reqFirstOrChange(v, row)
}
