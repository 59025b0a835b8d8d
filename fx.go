package recon

import (
	"fmt"
	"math"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "result": "success",
	    "base_code": "USD",
	    "time_last_update_utc": "...",
	    "rates": {
	        "AED": 3.6725,
	        "EUR": 0.92,
	        ...
	    }
	}
*/

// FetchConversionRate pulls the latest base→quote rate from the public
// er-api quote feed. It is an optional convenience for the `rate -fetch`
// command; the session default stays the pegged 3.67 when nothing is
// fetched.
func FetchConversionRate(base, quote string) (float64, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	quote = strings.ToUpper(strings.TrimSpace(quote))
	addr := "https://open.er-api.com/v6/latest/" + base

	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", base+"/"+quote, err)
	}

	path := "$.rates." + quote
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", base+"/"+quote, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or
	// a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	rate, ok := jval.(float64)
	if !ok || rate <= 0 {
		return math.NaN(), fmt.Errorf("unexpected rate value %v for %q", jval, base+"/"+quote)
	}
	return rate, nil
}
