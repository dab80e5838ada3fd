package schema

import "fmt"

// variants holds the process-wide schema tables. Built once at init,
// read-only afterwards; safe to share across concurrent validation runs.
var variants map[VariantKey]*Variant

func init() {
	variants = map[VariantKey]*Variant{
		Shanghai: newVariant(Shanghai, shanghaiFields),
		Shenzhen: newVariant(Shenzhen, shenzhenFields),
	}
}

// Get returns the variant table for the given key.
func Get(key VariantKey) (*Variant, error) {
	v, ok := variants[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, key)
	}
	return v, nil
}

// Keys returns the registered variant keys.
func Keys() []VariantKey {
	return []VariantKey{Shanghai, Shenzhen}
}

// IdentityFields are the only fields whose presence is still required when a
// row's report type is the termination value (停止使用). Everything else is
// exempt from requiredness on such rows.
var IdentityFields = []string{
	"ep_name",
	"broker_code",
	"account_name",
	"client_code",
	"report_date",
}

// IsIdentityField reports whether nameEN is in the termination whitelist.
func IsIdentityField(nameEN string) bool {
	for _, n := range IdentityFields {
		if n == nameEN {
			return true
		}
	}
	return false
}
