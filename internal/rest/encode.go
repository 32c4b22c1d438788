package rest

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/tasltd/soupfinance-sub004/internal/types"
)

// Params is a flat set of filter/pagination parameters. Nil values are
// dropped entirely rather than sent empty.
type Params map[string]any

// EncodeQuery produces a form-style URL-encoded query string: keys sorted,
// spaces as "+", nil values omitted.
func EncodeQuery(p Params) string {
	return paramsToValues(p).Encode()
}

func encodeQueryWithCSRF(p Params, tok *SyncToken) string {
	values := paramsToValues(p)
	if tok != nil {
		values.Set(csrfTokenParam, tok.Token)
		values.Set(csrfURIParam, tok.URI)
	}
	return values.Encode()
}

func paramsToValues(p Params) url.Values {
	values := url.Values{}
	for key, raw := range p {
		if s, ok := stringify(raw); ok {
			values.Set(key, s)
		}
	}
	return values
}

// FlattenForm converts a payload object into flat key=value pairs for a
// form-encoded body. A nested object carrying an id (a foreign-key
// reference) flattens to "key.id=value"; nil fields are omitted.
func FlattenForm(fields map[string]any) url.Values {
	values := url.Values{}
	for key, raw := range fields {
		switch v := raw.(type) {
		case types.Ref:
			if v.ID != "" {
				values.Set(key+".id", v.ID)
			}
		case *types.Ref:
			if v != nil && v.ID != "" {
				values.Set(key+".id", v.ID)
			}
		case map[string]any:
			if id, ok := stringify(v["id"]); ok {
				values.Set(key+".id", id)
			}
		default:
			if s, ok := stringify(raw); ok {
				values.Set(key, s)
			}
		}
	}
	return values
}

// stringify renders a scalar in its default string form: booleans as
// true/false, floats in shortest decimal notation (1500.5, not 1500.50).
// Nil reports false so callers drop the field.
func stringify(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	default:
		return fmt.Sprint(x), true
	}
}
