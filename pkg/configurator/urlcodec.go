package configurator

import (
	"net/url"
	"strconv"
	"strings"
)

// Query-string session codec. A session survives reloads and
// back-navigation by mirroring its answers into the URL:
//
//	sel_<stepKey>=<optionValue>   one per answered options step
//	m_<field>=<millimeters>       one per entered measurement
//	qty=<n>                       only when n != 1
//
// A fixed whitelist of unrelated storefront parameters is preserved
// verbatim. Decoding ignores unknown keys and treats malformed numbers
// as absent.

const (
	selPrefix  = "sel_"
	measPrefix = "m_"
	qtyParam   = "qty"
)

// passthroughParams are external storefront parameters carried through
// encode/decode untouched.
var passthroughParams = []string{"product", "variant", "image", "color"}

// EncodeState serializes the resumable parts of a session into a query
// string. decode(encode(s)) == s for any state built only from keys the
// encoder emits.
func EncodeState(s Session) string {
	values := url.Values{}
	for key, value := range s.Selections {
		values.Set(selPrefix+key, value)
	}
	for field, mm := range s.Measurements {
		values.Set(measPrefix+field, strconv.Itoa(mm))
	}
	if s.Quantity != 1 {
		values.Set(qtyParam, strconv.Itoa(s.Quantity))
	}
	for _, p := range passthroughParams {
		if v, ok := s.Extra[p]; ok {
			values.Set(p, v)
		}
	}
	return values.Encode()
}

// DecodeState parses a query string back into a bare session (answers,
// quantity, passthrough extras). The derived flow and current step are
// not encoded; run the result through Rehydrate with the product's
// Config to rebuild them.
func DecodeState(query string) Session {
	query = strings.TrimPrefix(query, "?")
	values, err := url.ParseQuery(query)
	if err != nil {
		values = url.Values{}
	}

	s := Session{
		Selections:   map[string]string{},
		Measurements: map[string]int{},
		Quantity:     1,
		Status:       StatusUnstarted,
	}

	for key := range values {
		switch {
		case strings.HasPrefix(key, selPrefix):
			stepKey := strings.TrimPrefix(key, selPrefix)
			if stepKey != "" {
				s.Selections[stepKey] = values.Get(key)
			}
		case strings.HasPrefix(key, measPrefix):
			field := strings.TrimPrefix(key, measPrefix)
			if mm, err := strconv.Atoi(values.Get(key)); err == nil && mm > 0 {
				s.Measurements[field] = mm
			}
		case key == qtyParam:
			if qty, err := strconv.Atoi(values.Get(key)); err == nil && qty >= 1 {
				s.Quantity = qty
			}
		default:
			for _, p := range passthroughParams {
				if key == p {
					if s.Extra == nil {
						s.Extra = map[string]string{}
					}
					s.Extra[p] = values.Get(key)
				}
			}
		}
	}

	if len(s.Selections) > 0 || len(s.Measurements) > 0 {
		s.Status = StatusInProgress
	}
	return s
}
