package reader

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/PGTReport/internal/schema"
)

var testNow = time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)

// ============================================================================
// Filename Parsing
// ============================================================================

func TestParseFilename_Valid(t *testing.T) {
	tests := []struct {
		name    string
		variant schema.VariantKey
		firmID  string
		date    string
	}{
		{"SH_PGTDRPT_09999_20250805.xlsx", schema.Shanghai, "09999", "20250805"},
		{"SZ_PGTDRPT_01234_20250801.xlsx", schema.Shenzhen, "01234", "20250801"},
		{"SH_PGTDRPT_09999_20250805.csv", schema.Shanghai, "09999", "20250805"},
		{"sh_pgtdrpt_09999_20250805.csv", schema.Shanghai, "09999", "20250805"}, // case-insensitive
	}

	for _, tt := range tests {
		meta, err := ParseFilename(tt.name, testNow)
		if err != nil {
			t.Errorf("ParseFilename(%s) error = %v", tt.name, err)
			continue
		}
		if meta.Variant != tt.variant {
			t.Errorf("ParseFilename(%s).Variant = %s, want %s", tt.name, meta.Variant, tt.variant)
		}
		if meta.FirmID != tt.firmID {
			t.Errorf("ParseFilename(%s).FirmID = %s, want %s", tt.name, meta.FirmID, tt.firmID)
		}
		if got := meta.SubmissionDate.Format("20060102"); got != tt.date {
			t.Errorf("ParseFilename(%s).SubmissionDate = %s, want %s", tt.name, got, tt.date)
		}
	}
}

func TestParseFilename_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		msgPart string
	}{
		{"report.xlsx", "invalid filename format"},
		{"BJ_PGTDRPT_09999_20250805.xlsx", "invalid filename format"},
		{"SH_PGTDRPT_999_20250805.xlsx", "invalid filename format"},  // firm id not 5 digits
		{"SH_PGTDRPT_09999_2025085.xlsx", "invalid filename format"}, // date not 8 digits
		{"SH_PGTDRPT_09999_20250805.pdf", "invalid filename format"},
		{"SH_PGTDRPT_09999_20251345.xlsx", "invalid date in filename"},
		{"SH_PGTDRPT_09999_20260101.xlsx", "cannot be in the future"},
	}

	for _, tt := range tests {
		_, err := ParseFilename(tt.name, testNow)
		if err == nil {
			t.Errorf("ParseFilename(%s) expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.msgPart) {
			t.Errorf("ParseFilename(%s) error = %q, want substring %q", tt.name, err, tt.msgPart)
		}
	}
}

// ============================================================================
// CSV Reading
// ============================================================================

func shanghaiVariant(t *testing.T) *schema.Variant {
	t.Helper()
	v, err := schema.Get(schema.Shanghai)
	if err != nil {
		t.Fatalf("schema.Get error = %v", err)
	}
	return v
}

// csvDoc builds a submission with banner rows above the header, in the shape
// the exchange templates export.
func csvDoc(dataRows ...string) string {
	var b strings.Builder
	b.WriteString("程序化交易报告表,,,\n")
	b.WriteString(",,,\n")
	b.WriteString("联交所参与者名称,经纪商代码,账户名称,证件号码\n")
	for _, row := range dataRows {
		b.WriteString(row + "\n")
	}
	return b.String()
}

func TestReadRows_HeaderDiscovery(t *testing.T) {
	v := shanghaiVariant(t)
	rows, err := ReadRows(strings.NewReader(csvDoc("某证券,09999,账户一,ID001")), v)
	if err != nil {
		t.Fatalf("ReadRows error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Ordinal != 1 {
		t.Errorf("Ordinal = %d, want 1", rows[0].Ordinal)
	}
	if got := rows[0].Get(0); got != "某证券" {
		t.Errorf("cell 0 = %q", got)
	}
	if got := rows[0].Get(1); got != "09999" {
		t.Errorf("cell 1 = %q", got)
	}
}

func TestReadRows_StripsBOMAndTrimsCells(t *testing.T) {
	v := shanghaiVariant(t)
	doc := "\xEF\xBB\xBF" + csvDoc(" 某证券 ,09999,账户一,ID001")

	rows, err := ReadRows(strings.NewReader(doc), v)
	if err != nil {
		t.Fatalf("ReadRows error = %v", err)
	}
	if got := rows[0].Get(0); got != "某证券" {
		t.Errorf("cell 0 = %q, want trimmed value", got)
	}
}

func TestReadRows_SkipsEmptyRowsKeepsOrdinals(t *testing.T) {
	v := shanghaiVariant(t)
	doc := csvDoc(
		"某证券,09999,账户一,ID001",
		",,,",
		"某证券,09999,账户二,ID002",
	)

	rows, err := ReadRows(strings.NewReader(doc), v)
	if err != nil {
		t.Fatalf("ReadRows error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (blank row skipped)", len(rows))
	}
	// Ordinals count source lines after the header, so the blank line
	// still advances the numbering.
	if rows[0].Ordinal != 1 || rows[1].Ordinal != 3 {
		t.Errorf("ordinals = %d, %d, want 1, 3", rows[0].Ordinal, rows[1].Ordinal)
	}
}

func TestReadRows_HeaderNotFound(t *testing.T) {
	v := shanghaiVariant(t)
	doc := "just,a,plain,csv\nwith,no,marker,row\n"

	_, err := ReadRows(strings.NewReader(doc), v)
	if !errors.Is(err, ErrHeaderNotFound) {
		t.Errorf("error = %v, want ErrHeaderNotFound", err)
	}
}

func TestReadRows_NoDataRows(t *testing.T) {
	v := shanghaiVariant(t)

	_, err := ReadRows(strings.NewReader(csvDoc()), v)
	if !errors.Is(err, ErrNoDataRows) {
		t.Errorf("error = %v, want ErrNoDataRows", err)
	}
}

func TestReadRows_IgnoresColumnsBeyondVariant(t *testing.T) {
	v := shanghaiVariant(t)
	long := make([]string, 50)
	long[0] = "某证券"
	long[49] = "overflow"

	rows, err := ReadRows(strings.NewReader(csvDoc(strings.Join(long, ","))), v)
	if err != nil {
		t.Fatalf("ReadRows error = %v", err)
	}
	if got := rows[0].Get(49); got != "" {
		t.Errorf("cell 49 = %q, want empty (beyond variant width)", got)
	}
}
