// Package schema defines the declarative field specifications for the
// programmatic trading report variants and the registry that serves them.
//
// Field behavior is modeled as data (kind, require mode, allowed values,
// multi-value bound) interpreted by the generic checkers in internal/engine,
// not as one bespoke validator per field. The two variant tables are built
// once at init, consistency-checked, and shared read-only by every
// validation run.
package schema

import (
	"errors"
	"fmt"
)

// FieldKind is the expected data shape of a report column.
type FieldKind int

const (
	Text FieldKind = iota
	Number
	Date
	Enum
	MultiEnum
	MultiText
)

// kindNames indexes FieldKind for diagnostics.
var kindNames = [...]string{"text", "number", "date", "enum", "multi-enum", "multi-text"}

func (k FieldKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Multi reports whether the kind encodes semicolon-separated sub-values.
func (k FieldKind) Multi() bool {
	return k == MultiEnum || k == MultiText
}

// RequireMode controls when an empty value is a finding.
type RequireMode int

const (
	Optional RequireMode = iota
	Always
	Conditional
)

// ConditionID names a predicate in the engine's closed dispatch table.
// A field with RequireMode Conditional carries exactly one of these.
type ConditionID string

const (
	CondFirstOrChange       ConditionID = "first_or_change"
	CondFundSourceOther     ConditionID = "fund_source_other"
	CondHasLeverageSource   ConditionID = "has_leverage_source"
	CondLeverageSourceOther ConditionID = "leverage_source_other"
	CondQuantitative        ConditionID = "is_quantitative"
	CondMainStrategyOther   ConditionID = "main_strategy_other"
	CondMainStrategyFilled  ConditionID = "main_strategy_filled"
	CondSubStrategyOther    ConditionID = "sub_strategy_other"
	CondSubStrategyFilled   ConditionID = "sub_strategy_filled"
	CondExecutionOther      ConditionID = "execution_other"
	CondHighFreqNoExemption ConditionID = "high_freq_no_exemption"
	CondQFIIExemption       ConditionID = "qfii_exemption"
)

// ConditionIDs is the closed set of predicate names. The engine verifies at
// init that its dispatch table covers exactly this set.
var ConditionIDs = []ConditionID{
	CondFirstOrChange,
	CondFundSourceOther,
	CondHasLeverageSource,
	CondLeverageSourceOther,
	CondQuantitative,
	CondMainStrategyOther,
	CondMainStrategyFilled,
	CondSubStrategyOther,
	CondSubStrategyFilled,
	CondExecutionOther,
	CondHighFreqNoExemption,
	CondQFIIExemption,
}

// FieldSpec describes one report column.
type FieldSpec struct {
	Position      int         // 0-based column index in the data row
	NameCN        string      // Chinese display name, as printed on the form
	NameEN        string      // English reference name
	Kind          FieldKind
	MaxLength     int         // max runes per value (per sub-value for multi kinds)
	Require       RequireMode
	Condition     ConditionID // set iff Require == Conditional
	AllowedValues []string    // non-empty iff Kind is Enum or MultiEnum
	MultiValueMax int         // sub-value cap for multi kinds; 0 = unbounded
}

// VariantKey selects one of the sibling report schemas.
type VariantKey string

const (
	Shanghai VariantKey = "SHANGHAI"
	Shenzhen VariantKey = "SHENZHEN"
)

// ErrUnknownVariant is returned by Get for unrecognized variant keys.
var ErrUnknownVariant = errors.New("unknown schema variant")

// Variant is an ordered, immutable field table for one report type.
type Variant struct {
	Key    VariantKey
	Fields []FieldSpec

	byEN map[string]int // NameEN -> position
}

// FieldCount returns the number of columns in the variant.
func (v *Variant) FieldCount() int { return len(v.Fields) }

// Field returns the spec at the given position.
func (v *Variant) Field(pos int) (FieldSpec, bool) {
	if pos < 0 || pos >= len(v.Fields) {
		return FieldSpec{}, false
	}
	return v.Fields[pos], true
}

// Position returns the column index of the field with the given English
// name, or -1 when the variant has no such field. (The Shenzhen form drops
// several descriptive columns the Shanghai form carries.)
func (v *Variant) Position(nameEN string) int {
	if pos, ok := v.byEN[nameEN]; ok {
		return pos
	}
	return -1
}

// newVariant builds and consistency-checks a variant table. Any violation is
// a configuration fault: it panics so a malformed schema fails at process
// start, before any row is validated.
func newVariant(key VariantKey, fields []FieldSpec) *Variant {
	v := &Variant{
		Key:    key,
		Fields: fields,
		byEN:   make(map[string]int, len(fields)),
	}
	if err := v.check(); err != nil {
		panic(fmt.Sprintf("schema variant %s: %v", key, err))
	}
	for _, f := range fields {
		v.byEN[f.NameEN] = f.Position
	}
	return v
}

func (v *Variant) check() error {
	seen := make(map[int]string, len(v.Fields))
	for i, f := range v.Fields {
		if f.Position != i {
			return fmt.Errorf("field %q: position %d out of order (want %d)", f.NameEN, f.Position, i)
		}
		if prev, dup := seen[f.Position]; dup {
			return fmt.Errorf("duplicate position %d (%q and %q)", f.Position, prev, f.NameEN)
		}
		seen[f.Position] = f.NameEN

		if (f.Condition != "") != (f.Require == Conditional) {
			return fmt.Errorf("field %q: condition %q does not match require mode", f.NameEN, f.Condition)
		}
		if f.Condition != "" && !knownCondition(f.Condition) {
			return fmt.Errorf("field %q: dangling condition id %q", f.NameEN, f.Condition)
		}
		hasValues := len(f.AllowedValues) > 0
		isEnum := f.Kind == Enum || f.Kind == MultiEnum
		if hasValues != isEnum {
			return fmt.Errorf("field %q: allowed values do not match kind %s", f.NameEN, f.Kind)
		}
		if f.MultiValueMax > 0 && !f.Kind.Multi() {
			return fmt.Errorf("field %q: multi-value cap on non-multi kind %s", f.NameEN, f.Kind)
		}
		if f.MaxLength <= 0 {
			return fmt.Errorf("field %q: max length must be positive", f.NameEN)
		}
	}
	return nil
}

func knownCondition(id ConditionID) bool {
	for _, c := range ConditionIDs {
		if c == id {
			return true
		}
	}
	return false
}
