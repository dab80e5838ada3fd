package schema

import (
	"errors"
	"testing"
)

// ============================================================================
// Registry Tests
// ============================================================================

func TestGet_KnownVariants(t *testing.T) {
	tests := []struct {
		key        VariantKey
		fieldCount int
	}{
		{Shanghai, 42},
		{Shenzhen, 38},
	}

	for _, tt := range tests {
		v, err := Get(tt.key)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", tt.key, err)
		}
		if v.Key != tt.key {
			t.Errorf("Get(%s).Key = %s", tt.key, v.Key)
		}
		if v.FieldCount() != tt.fieldCount {
			t.Errorf("Get(%s).FieldCount() = %d, want %d", tt.key, v.FieldCount(), tt.fieldCount)
		}
	}
}

func TestGet_UnknownVariant(t *testing.T) {
	_, err := Get("BEIJING")
	if err == nil {
		t.Fatal("Get(BEIJING) expected error")
	}
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Get(BEIJING) error = %v, want ErrUnknownVariant", err)
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 2 {
		t.Fatalf("Keys() returned %d keys, want 2", len(keys))
	}
	seen := map[VariantKey]bool{}
	for _, k := range keys {
		seen[k] = true
	}
	if !seen[Shanghai] || !seen[Shenzhen] {
		t.Errorf("Keys() = %v, want both SHANGHAI and SHENZHEN", keys)
	}
}

// ============================================================================
// Variant Tests
// ============================================================================

func TestVariant_PositionsAreOrdinal(t *testing.T) {
	for _, key := range Keys() {
		v, err := Get(key)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", key, err)
		}
		for i, f := range v.Fields {
			if f.Position != i {
				t.Errorf("%s field %q: Position = %d, want %d", key, f.NameEN, f.Position, i)
			}
		}
	}
}

func TestVariant_Position(t *testing.T) {
	v, _ := Get(Shanghai)

	if pos := v.Position("client_code"); pos != 5 {
		t.Errorf("Position(client_code) = %d, want 5", pos)
	}
	if pos := v.Position("no_such_field"); pos != -1 {
		t.Errorf("Position(no_such_field) = %d, want -1", pos)
	}

	// The Shenzhen table is offset by the leading sequence column.
	sz, _ := Get(Shenzhen)
	if pos := sz.Position("client_code"); pos != 6 {
		t.Errorf("Shenzhen Position(client_code) = %d, want 6", pos)
	}
}

func TestVariant_Field(t *testing.T) {
	v, _ := Get(Shanghai)

	f, ok := v.Field(7)
	if !ok {
		t.Fatal("Field(7) not found")
	}
	if f.NameEN != "report_type" {
		t.Errorf("Field(7).NameEN = %q, want report_type", f.NameEN)
	}

	if _, ok := v.Field(42); ok {
		t.Error("Field(42) should be out of range")
	}
	if _, ok := v.Field(-1); ok {
		t.Error("Field(-1) should be out of range")
	}
}

func TestIdentityFields_PresentInAllVariants(t *testing.T) {
	for _, key := range Keys() {
		v, _ := Get(key)
		for _, name := range IdentityFields {
			if v.Position(name) < 0 {
				t.Errorf("%s missing identity field %q", key, name)
			}
		}
	}
}

func TestIsIdentityField(t *testing.T) {
	for _, name := range IdentityFields {
		if !IsIdentityField(name) {
			t.Errorf("IsIdentityField(%q) = false", name)
		}
	}
	for _, name := range []string{"report_type", "fund_sources", ""} {
		if IsIdentityField(name) {
			t.Errorf("IsIdentityField(%q) = true", name)
		}
	}
}

func TestConditionalFields_CarryKnownConditions(t *testing.T) {
	known := map[ConditionID]bool{}
	for _, id := range ConditionIDs {
		known[id] = true
	}

	for _, key := range Keys() {
		v, _ := Get(key)
		for _, f := range v.Fields {
			switch f.Require {
			case Conditional:
				if !known[f.Condition] {
					t.Errorf("%s field %q: unknown condition %q", key, f.NameEN, f.Condition)
				}
			default:
				if f.Condition != "" {
					t.Errorf("%s field %q: condition %q on non-conditional field", key, f.NameEN, f.Condition)
				}
			}
		}
	}
}

func TestEnumFields_HaveAllowedValues(t *testing.T) {
	for _, key := range Keys() {
		v, _ := Get(key)
		for _, f := range v.Fields {
			isEnum := f.Kind == Enum || f.Kind == MultiEnum
			if isEnum && len(f.AllowedValues) == 0 {
				t.Errorf("%s field %q: enum kind without allowed values", key, f.NameEN)
			}
			if !isEnum && len(f.AllowedValues) > 0 {
				t.Errorf("%s field %q: allowed values on non-enum kind", key, f.NameEN)
			}
		}
	}
}

// ============================================================================
// Enum Tests
// ============================================================================

func TestInSet(t *testing.T) {
	if !InSet("首次", ReportTypes) {
		t.Error("InSet(首次, ReportTypes) = false")
	}
	if InSet("初次", ReportTypes) {
		t.Error("InSet(初次, ReportTypes) = true")
	}
	if InSet("", YesNo) {
		t.Error("InSet(empty, YesNo) = true")
	}
}

func TestHighFreqBands_AreSubsetsOfDeclaredBands(t *testing.T) {
	for _, band := range HighFreqRates {
		if !InSet(band, OrderRates) {
			t.Errorf("high-frequency rate band %q not in OrderRates", band)
		}
	}
	for _, band := range HighFreqDaily {
		if !InSet(band, DailyOrderCounts) {
			t.Errorf("high-frequency daily band %q not in DailyOrderCounts", band)
		}
	}
}
