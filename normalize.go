package recon

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize coerces a raw spreadsheet cell into a decimal.
//
// Uploaded statements are messy: a numeric column may arrive as a float, an
// int, a string with stray spaces, or not at all. Anything that does not
// parse as a number normalizes to zero so a single malformed cell never
// aborts the whole report.
func Normalize(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case float64:
		return decimal.NewFromFloat(x)
	case float32:
		return decimal.NewFromFloat32(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case json.Number:
		return parseDecimal(x.String())
	case string:
		return parseDecimal(x)
	default:
		// last resort: whatever it prints as
		return parseDecimal(fmt.Sprint(x))
	}
}

func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	// spreadsheet exports commonly format thousands with spaces or commas
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeKey renders a join key in its canonical string form.
//
// Group ids come out of a spreadsheet as numbers while account logins come
// out of an HTML table as strings. Both sides of the join go through this
// function so a numeric/string type mismatch never prevents a match. The
// leniency is intentional.
func NormalizeKey(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		// render 100.0 as "100", not "100.000000"
		return decimal.NewFromFloat(x).String()
	case float32:
		return decimal.NewFromFloat32(x).String()
	case int:
		return decimal.NewFromInt(int64(x)).String()
	case int64:
		return decimal.NewFromInt(x).String()
	case json.Number:
		return strings.TrimSpace(x.String())
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}
