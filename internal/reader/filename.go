// Package reader turns submitted files into validation input: it resolves
// the schema variant and submission facts from the filename convention and
// decodes the tabular payload into rows for the engine.
package reader

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/JonMunkholm/PGTReport/internal/schema"
)

// filenameRegex matches the exchange submission convention:
// a 2-letter exchange code, the fixed report token, a 5-digit firm id and
// an 8-digit date, e.g. SH_PGTDRPT_09999_20250805.xlsx.
var filenameRegex = regexp.MustCompile(`^(?i)(SH|SZ)_PGTDRPT_(\d{5})_(\d{8})\.(xlsx|csv)$`)

// Meta is what a valid filename tells us about a submission.
type Meta struct {
	Variant        schema.VariantKey
	FirmID         string
	SubmissionDate time.Time
}

// ParseFilename derives the schema variant, firm id, and submission date
// from the filename. The submission date may not be in the future relative
// to now.
func ParseFilename(name string, now time.Time) (Meta, error) {
	m := filenameRegex.FindStringSubmatch(name)
	if m == nil {
		return Meta{}, fmt.Errorf(
			"invalid filename format: %q (expected SH_PGTDRPT_<FIRM_ID>_<YYYYMMDD>.xlsx or SZ_PGTDRPT_<FIRM_ID>_<YYYYMMDD>.xlsx)",
			name)
	}

	date, err := time.Parse("20060102", m[3])
	if err != nil {
		return Meta{}, fmt.Errorf("invalid date in filename: %s (expected YYYYMMDD)", m[3])
	}
	if date.After(now) {
		return Meta{}, fmt.Errorf("submission date in filename (%s) cannot be in the future", m[3])
	}

	meta := Meta{FirmID: m[2], SubmissionDate: date}
	switch strings.ToUpper(m[1]) {
	case "SH":
		meta.Variant = schema.Shanghai
	case "SZ":
		meta.Variant = schema.Shenzhen
	}
	return meta, nil
}
