package params

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Map holds a command's named parameters before canonicalization.
// Parameter names must be unique and non-empty; values are already
// stringified. Optional parameters that are unset must simply not
// be present in the map.
type Map map[string]string

// Set stores a string parameter.
func (m Map) Set(name, value string) {
	m[name] = value
}

// SetInt stores an integer parameter.
func (m Map) SetInt(name string, value int64) {
	m[name] = strconv.FormatInt(value, 10)
}

// SetBool stores a boolean parameter as "true" or "false".
func (m Map) SetBool(name string, value bool) {
	m[name] = strconv.FormatBool(value)
}

// SetList stores a list parameter as a single comma-joined value.
// The Codeforces API expects list parameters as one query parameter,
// never as repeated keys.
func (m Map) SetList(name string, values []string) {
	m[name] = strings.Join(values, ",")
}

// Clone returns an independent copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Pair is a single encoded (name, value) query parameter.
type Pair struct {
	Name  string
	Value string
}

// InvalidParameterError reports a malformed parameter name supplied by the
// caller. It is detected before any cryptographic or network work happens.
type InvalidParameterError struct {
	Name string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter name %q", e.Name)
}

// Encode canonicalizes a parameter map into an ordered pair sequence:
// sorted lexicographically by name, then by value, with each value
// percent-encoded using standard URL query encoding.
//
// The ordering is the basis for signature stability: two calls with
// identical logical parameters produce byte-identical encoded output.
func Encode(m Map) ([]Pair, error) {
	pairs := make([]Pair, 0, len(m))
	for name, value := range m {
		if name == "" {
			return nil, &InvalidParameterError{Name: name}
		}
		pairs = append(pairs, Pair{Name: name, Value: value})
	}

	// Order is decided on the raw values; escaping afterwards keeps the
	// canonical order independent of how a value happens to encode.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Name != pairs[j].Name {
			return pairs[i].Name < pairs[j].Name
		}
		return pairs[i].Value < pairs[j].Value
	})

	for i := range pairs {
		pairs[i].Value = url.QueryEscape(pairs[i].Value)
	}
	return pairs, nil
}

// Query renders encoded pairs as a query string ("a=1&b=2"). The output is
// used both as the signed byte sequence and as the literal request query,
// so it must never be reordered or re-encoded between signing and sending.
func Query(pairs []Pair) string {
	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	return sb.String()
}
