package database

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"projecttracker/app/models"
)

// Patch is a partial-update payload. Presence of a key means the field
// changes; a JSON null value explicitly clears it; absent keys are left
// untouched.
type Patch map[string]json.RawMessage

// ParsePatch decodes a request body into a Patch.
func ParsePatch(body []byte) (Patch, error) {
	var p Patch
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, NewValidationError("", "invalid JSON body")
	}
	return p, nil
}

func (p Patch) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// IsNull reports whether key is present with an explicit null value.
func (p Patch) IsNull(key string) bool {
	raw, ok := p[key]
	return ok && string(raw) == "null"
}

// String returns the value for key, or nil for an explicit null.
func (p Patch) String(key string) (*string, error) {
	var v *string
	if err := json.Unmarshal(p[key], &v); err != nil {
		return nil, NewValidationError(key, "must be a string")
	}
	return v, nil
}

func (p Patch) Bool(key string) (*bool, error) {
	var v *bool
	if err := json.Unmarshal(p[key], &v); err != nil {
		return nil, NewValidationError(key, "must be a boolean")
	}
	return v, nil
}

func (p Patch) Int(key string) (*int, error) {
	var v *int
	if err := json.Unmarshal(p[key], &v); err != nil {
		return nil, NewValidationError(key, "must be an integer")
	}
	return v, nil
}

// Decimal accepts both JSON numbers and numeric strings.
func (p Patch) Decimal(key string) (*decimal.Decimal, error) {
	if p.IsNull(key) {
		return nil, nil
	}
	var v decimal.Decimal
	if err := json.Unmarshal(p[key], &v); err != nil {
		return nil, NewValidationError(key, "must be a number")
	}
	return &v, nil
}

func (p Patch) Date(key string) (*models.DateOnly, error) {
	if p.IsNull(key) {
		return nil, nil
	}
	var v models.DateOnly
	if err := json.Unmarshal(p[key], &v); err != nil {
		return nil, NewValidationError(key, "must be a date (YYYY-MM-DD)")
	}
	return &v, nil
}

func (p Patch) StringSlice(key string) ([]string, error) {
	if p.IsNull(key) {
		return nil, nil
	}
	var v []string
	if err := json.Unmarshal(p[key], &v); err != nil {
		return nil, NewValidationError(key, "must be a list of strings")
	}
	return v, nil
}

// RequireString returns the value for key and rejects explicit nulls,
// for columns that cannot be cleared.
func (p Patch) RequireString(key string) (string, error) {
	v, err := p.String(key)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", NewValidationError(key, "must not be null")
	}
	return *v, nil
}

// UnknownKey returns a ValidationError naming an unrecognized patch key.
func UnknownKey(key string) error {
	return NewValidationError(key, fmt.Sprintf("unknown field %q", key))
}
