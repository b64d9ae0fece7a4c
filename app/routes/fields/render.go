package fields

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"projecttracker/app/models"
)

// RenderedValue is a raw stored value interpreted under its field's
// declared type. Values are stored as text and only coerced here.
type RenderedValue struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Display string `json:"display"`
	Link    string `json:"link,omitempty"`
	Valid   bool   `json:"valid"`
}

// NormalizeNumber strips leading zeros from a numeric string, keeping a
// single leading "0" before a decimal point: "007" -> "7", "0.5" stays.
func NormalizeNumber(s string) string {
	if s == "" {
		return ""
	}
	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = string(s[0]), s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	if hasFrac {
		return sign + intPart + "." + fracPart
	}
	return sign + intPart
}

// ValidURL reports whether s parses as a URL either as-is or after
// prefixing https://. Invalid values are flagged, never blocked.
func ValidURL(s string) bool {
	if s == "" {
		return false
	}
	if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
		return true
	}
	u, err := url.Parse("https://" + s)
	return err == nil && u.Host != "" && strings.Contains(u.Host, ".")
}

var (
	saudiMobileRe = regexp.MustCompile(`^(\+966|966|05)\d{8,9}$`)
	bareDigitsRe  = regexp.MustCompile(`^\d{9,10}$`)
)

// PhoneLink turns a Saudi mobile number into a wa.me link target.
// Spaces and hyphens are stripped before matching; a leading "0" becomes
// "966". Returns ok=false for values that are not recognizable numbers.
func PhoneLink(raw string) (string, bool) {
	s := strings.NewReplacer(" ", "", "-", "").Replace(raw)
	if !saudiMobileRe.MatchString(s) && !bareDigitsRe.MatchString(s) {
		return "", false
	}

	s = strings.TrimPrefix(s, "+")
	switch {
	case strings.HasPrefix(s, "966"):
		// already international
	case strings.HasPrefix(s, "0"):
		s = "966" + s[1:]
	default:
		s = "966" + s
	}
	return "https://wa.me/" + s, true
}

// EvalFormula evaluates a stored calculated-field formula against the
// current values. Only the observed form is supported: the arithmetic
// product of two field names, e.g. "quantity*price".
func EvalFormula(formula string, values map[string]string) (string, bool) {
	parts := strings.Split(formula, "*")
	if len(parts) != 2 {
		return "", false
	}

	product := decimal.NewFromInt(1)
	for _, part := range parts {
		raw, ok := values[strings.TrimSpace(part)]
		if !ok {
			return "", false
		}
		d, err := decimal.NewFromString(NormalizeNumber(raw))
		if err != nil {
			return "", false
		}
		product = product.Mul(d)
	}
	return product.String(), true
}

// RenderValue interprets one stored value according to the field's type.
// values carries every stored value for the record so calculated fields
// can resolve their operands.
func RenderValue(field *models.DynamicField, raw string, values map[string]string) RenderedValue {
	r := RenderedValue{Field: field.Name, Value: raw, Display: raw, Valid: true}

	switch field.FieldType {
	case models.FieldText:
		r.Valid = !field.IsRequired || raw != ""
	case models.FieldNumber:
		r.Display = NormalizeNumber(raw)
		r.Valid = !field.IsRequired || raw != ""
	case models.FieldDate:
		// ISO date string, passed through with no timezone adjustment.
		r.Valid = !field.IsRequired || raw != ""
	case models.FieldSelect:
		if len(field.Options) == 0 {
			// No options configured: falls back to free text entry.
			r.Valid = !field.IsRequired || raw != ""
		} else {
			r.Valid = contains(field.Options, raw)
		}
	case models.FieldURL:
		r.Valid = ValidURL(raw)
		if r.Valid {
			if strings.Contains(raw, "://") {
				r.Link = raw
			} else {
				r.Link = "https://" + raw
			}
		}
	case models.FieldPhone:
		if link, ok := PhoneLink(raw); ok {
			r.Link = link
		}
		r.Valid = !field.IsRequired || raw != ""
	case models.FieldCalculated:
		if field.Formula != nil {
			if computed, ok := EvalFormula(*field.Formula, values); ok {
				r.Display = computed
				r.Value = computed
			}
		}
	}
	return r
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
