package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/PGTReport/internal/schema"
)

// ============================================================================
// Presence
// ============================================================================

func TestCheckField_AlwaysRequired(t *testing.T) {
	for _, name := range []string{"ep_name", "broker_code", "account_name", "client_code", "report_type", "report_date"} {
		fields := validFields("A12345")
		delete(fields, name)

		rep := validate(t, fields)
		issues := issuesFor(rep, name)
		if len(issues) != 1 || issues[0].Category != MissingRequired {
			t.Errorf("missing %s: issues = %+v, want one missing_required", name, issues)
		}
	}
}

func TestCheckField_OptionalMayBeEmpty(t *testing.T) {
	rep := validate(t, validFields("A12345")) // optional fields all empty

	for _, name := range []string{"product_code", "fund_manager", "sub_strategy", "ep_contact"} {
		if issues := issuesFor(rep, name); len(issues) != 0 {
			t.Errorf("empty optional %s produced issues: %+v", name, issues)
		}
	}
}

func TestCheckField_ConditionallyRequired(t *testing.T) {
	// Quantitative rows must declare a main strategy.
	fields := validFields("A12345")
	fields["is_quantitative"] = "是"

	rep := validate(t, fields)
	wantOneIssue(t, rep, "main_strategy", MissingRequired, SeverityError, "Required field")

	// Filling the strategy (and its mandatory overview) satisfies it.
	fields["main_strategy"] = "量化套利策略"
	fields["main_strategy_desc"] = "跨市场价差套利"
	rep = validate(t, fields)
	if len(issuesFor(rep, "main_strategy")) != 0 {
		t.Errorf("filled main_strategy still reported: %+v", rep.Issues)
	}
}

func TestCheckField_OtherDescriptionRequired(t *testing.T) {
	fields := validFields("A12345")
	fields["fund_sources"] = "自有资金;其他"
	fields["fund_source_ratio"] = "自有资金80%;其他20%"

	rep := validate(t, fields)
	wantOneIssue(t, rep, "other_fund_desc", MissingRequired, SeverityError, "Required field")
}

// ============================================================================
// Length
// ============================================================================

func TestCheckField_MaxLength(t *testing.T) {
	fields := validFields("A12345")
	fields["ep_name"] = strings.Repeat("很", 101)

	rep := validate(t, fields)
	wantOneIssue(t, rep, "ep_name", FormatInvalid, SeverityError, "Exceeds maximum length of 100")
}

func TestCheckField_MaxLengthCountsRunes(t *testing.T) {
	// 100 CJK runes are within a 100-rune limit despite the byte length.
	fields := validFields("A12345")
	fields["ep_name"] = strings.Repeat("很", 100)

	rep := validate(t, fields)
	if issues := issuesFor(rep, "ep_name"); len(issues) != 0 {
		t.Errorf("100-rune value flagged: %+v", issues)
	}
}

func TestCheckField_MultiValueLengthPerSubValue(t *testing.T) {
	// Each sub-value is measured on its own; the separators don't count.
	fields := validFields("A12345")
	fields["software_name"] = strings.Repeat("a", 150) + ";" + strings.Repeat("b", 150)

	rep := validate(t, fields)
	if issues := issuesFor(rep, "software_name"); len(issues) != 0 {
		t.Errorf("sub-values within limit flagged: %+v", issues)
	}

	fields["software_name"] = strings.Repeat("a", 201)
	rep = validate(t, fields)
	wantOneIssue(t, rep, "software_name", FormatInvalid, SeverityError, "Exceeds maximum length of 200")
}

// ============================================================================
// Numbers
// ============================================================================

func TestCheckNumber(t *testing.T) {
	tests := []struct {
		value    string
		severity Severity
		msgPart  string
	}{
		{"abc", SeverityError, "Must be a valid number"},
		{"-5", SeverityError, "Must be non-negative"},
		{"12.345", SeverityWarning, "Maximum 2 decimal places allowed"},
	}

	for _, tt := range tests {
		fields := validFields("A12345")
		fields["fund_size"] = tt.value

		rep := validate(t, fields)
		wantOneIssue(t, rep, "fund_size", FormatInvalid, tt.severity, tt.msgPart)
	}
}

func TestCheckNumber_Accepts(t *testing.T) {
	for _, value := range []string{"0", "5000", "5000.5", "5000.25", "已在其他联交所参与者报告"} {
		fields := validFields("A12345")
		fields["fund_size"] = value

		rep := validate(t, fields)
		if issues := issuesFor(rep, "fund_size"); len(issues) != 0 {
			t.Errorf("fund_size %q flagged: %+v", value, issues)
		}
	}
}

// ============================================================================
// Dates
// ============================================================================

func TestCheckDate(t *testing.T) {
	tests := []struct {
		value   string
		msgPart string
	}{
		{"2025-08-01", "Must be in YYYYMMDD format"},
		{"0801", "Must be in YYYYMMDD format"},
		{"20251301", "Invalid date"},
		{"20250230", "Invalid date"},
		{"20250806", "Report date cannot be later than submission date (20250805)"},
	}

	for _, tt := range tests {
		fields := validFields("A12345")
		fields["report_date"] = tt.value

		rep := validate(t, fields)
		wantOneIssue(t, rep, "report_date", FormatInvalid, SeverityError, tt.msgPart)
	}
}

func TestCheckDate_FutureBoundWithoutSubmissionDate(t *testing.T) {
	// Without a filename-derived submission date, the clock bounds the date.
	v := mustVariant(t, schema.Shanghai)
	fields := validFields("A12345")
	fields["report_date"] = "20250810"
	row := makeRow(t, v, 1, fields)

	rc := testContext()
	rc.SubmissionDate = time.Time{}
	rep := New(v).Validate([]Row{row}, rc)

	wantOneIssue(t, rep, "report_date", FormatInvalid, SeverityError, "Date cannot be in the future")
}

// ============================================================================
// Enums
// ============================================================================

func TestCheckEnum(t *testing.T) {
	fields := validFields("A12345")
	fields["report_type"] = "初次"

	rep := validate(t, fields)
	wantOneIssue(t, rep, "report_type", FormatInvalid, SeverityError, "Must be one of: 首次, 变更, 停止使用")
}

func TestCheckEnum_SentinelAccepted(t *testing.T) {
	fields := validFields("A12345")
	fields["fund_sources"] = "已在其他联交所参与者报告"
	fields["fund_source_ratio"] = "已在其他联交所参与者报告"
	fields["fund_size"] = "已在其他联交所参与者报告"
	fields["leverage_size"] = "已在其他联交所参与者报告"
	fields["leverage_ratio"] = "已在其他联交所参与者报告"

	rep := validate(t, fields)
	if !rep.Passed {
		t.Fatalf("consolidated-reporting sentinel rejected: %+v", rep.Issues)
	}
}

// ============================================================================
// Multi-Value Fields
// ============================================================================

func TestCheckMulti(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		msgPart string
	}{
		{"space after separator", "trading_products", "股票; 基金", "Values must not contain leading/trailing spaces or line breaks"},
		{"line break inside value", "software_name", "系统A\n1.0", "Values must not contain leading/trailing spaces or line breaks"},
		{"duplicate values", "trading_products", "股票;股票", "Duplicate values not allowed"},
		{"too many values", "sub_strategy", "指数增强策略;市场中性策略;量化套利策略", "Maximum 2 values allowed"},
		{"unknown member", "trading_products", "股票;债券", "Invalid value '债券'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validFields("A12345")
			fields[tt.field] = tt.value

			rep := validate(t, fields)
			wantOneIssue(t, rep, tt.field, MultiValueInvalid, SeverityError, tt.msgPart)
		})
	}
}

func TestCheckMulti_Accepts(t *testing.T) {
	tests := []struct {
		field string
		value string
	}{
		{"trading_products", "股票;基金"},
		{"trading_products", "股票;基金;"},  // trailing separator tolerated
		{"trading_products", " 股票;基金 "}, // cell edges trimmed before checks
		{"software_name", "系统A V1.0;系统B V2.3"},
		{"sub_strategy", "指数增强策略;量化套利策略"},
	}

	for _, tt := range tests {
		fields := validFields("A12345")
		fields[tt.field] = tt.value

		rep := validate(t, fields)
		if issues := issuesFor(rep, tt.field); len(issues) != 0 {
			t.Errorf("%s = %q flagged: %+v", tt.field, tt.value, issues)
		}
	}
}

// ============================================================================
// Identity Formats
// ============================================================================

func TestCheckBrokerCode(t *testing.T) {
	tests := []struct {
		value   string
		msgPart string
	}{
		{"123", "Must be exactly 5 digits"},
		{"1234a", "Must be exactly 5 digits"},
		{"123456", "Must be exactly 5 digits"},
		{"12345", "Broker code must match filename FIRM_ID (09999)"},
	}

	for _, tt := range tests {
		fields := validFields("A12345")
		fields["broker_code"] = tt.value

		rep := validate(t, fields)
		wantOneIssue(t, rep, "broker_code", FormatInvalid, SeverityError, tt.msgPart)
	}
}

func TestCheckBrokerCode_NoFirmID(t *testing.T) {
	// Without a firm id in the run context, any five digits pass.
	v := mustVariant(t, schema.Shanghai)
	fields := validFields("A12345")
	fields["broker_code"] = "12345"
	row := makeRow(t, v, 1, fields)

	rc := testContext()
	rc.FirmID = ""
	rep := New(v).Validate([]Row{row}, rc)

	if issues := issuesFor(rep, "broker_code"); len(issues) != 0 {
		t.Errorf("broker_code flagged without firm id: %+v", issues)
	}
}

func TestCheckClientCode_Length(t *testing.T) {
	for _, value := range []string{"AB", "ABCDEFGHIJK"} {
		fields := validFields(value)

		rep := validate(t, fields)
		wantOneIssue(t, rep, "client_code", FormatInvalid, SeverityError, "Must be 3-10 characters")
	}

	for _, value := range []string{"ABC", "ABCDEFGHIJ"} {
		rep := validate(t, validFields(value))
		if issues := issuesFor(rep, "client_code"); len(issues) != 0 {
			t.Errorf("client_code %q flagged: %+v", value, issues)
		}
	}
}
