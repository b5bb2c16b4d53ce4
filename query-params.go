package settingsrouter

import (
	"fmt"
	"net/url"
	"strings"
)

// SearchParam is the query parameter holding the settings search term.
// It survives navigation unless removed explicitly (see NavRemoveSearch).
const SearchParam = "search"

// QueryParam is a key/value pair from a URL query string.
type QueryParam struct {
	Key   string
	Value string
}

// QueryParams is an ordered list of query parameters.  Unlike url.Values
// it keeps the order in which parameters were added, which is the order
// they are encoded in.
type QueryParams []QueryParam

// ParseQuery parses a raw query string (without the leading "?").
func ParseQuery(raw string) (QueryParams, error) {

	raw = strings.TrimPrefix(raw, "?")
	if raw == "" {
		return nil, nil
	}

	var ret QueryParams
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("bad query key %q: %w", k, err)
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("bad query value for %q: %w", key, err)
		}
		ret = append(ret, QueryParam{Key: key, Value: val})
	}

	return ret, nil
}

// Get returns the first value for key or an empty string if not found.
func (qp QueryParams) Get(key string) string {
	for i := range qp {
		if qp[i].Key == key {
			return qp[i].Value
		}
	}
	return ""
}

// Has reports whether key is present.
func (qp QueryParams) Has(key string) bool {
	for i := range qp {
		if qp[i].Key == key {
			return true
		}
	}
	return false
}

// Add appends a key/value pair and returns the result.
func (qp QueryParams) Add(key, value string) QueryParams {
	return append(qp, QueryParam{Key: key, Value: value})
}

// Set replaces the first value for key, dropping any others, or appends
// the pair if key is not present.
func (qp QueryParams) Set(key, value string) QueryParams {

	ret := make(QueryParams, 0, len(qp)+1)
	found := false
	for _, p := range qp {
		if p.Key != key {
			ret = append(ret, p)
			continue
		}
		if !found {
			ret = append(ret, QueryParam{Key: key, Value: value})
			found = true
		}
	}
	if !found {
		ret = append(ret, QueryParam{Key: key, Value: value})
	}

	return ret
}

// Del removes all values for key.
func (qp QueryParams) Del(key string) QueryParams {
	ret := make(QueryParams, 0, len(qp))
	for _, p := range qp {
		if p.Key != key {
			ret = append(ret, p)
		}
	}
	if len(ret) == 0 {
		return nil
	}
	return ret
}

// Clone returns a copy that shares no storage with qp.
func (qp QueryParams) Clone() QueryParams {
	if len(qp) == 0 {
		return nil
	}
	ret := make(QueryParams, len(qp))
	copy(ret, qp)
	return ret
}

// Encode returns the parameters in "a=1&b=2" form, in order.
func (qp QueryParams) Encode() string {
	var sb strings.Builder
	for i, p := range qp {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (qp QueryParams) String() string { return qp.Encode() }
