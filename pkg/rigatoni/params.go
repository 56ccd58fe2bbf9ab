package rigatoni

import (
	"net/url"
	"strconv"
	"strings"
)

// Params holds the query parameters parsed from a route string.
// Keys are unique; a key present with no value maps to the empty string.
type Params map[string]string

// Get returns the value for key, or the empty string if absent.
func (p Params) Get(key string) string {
	return p[key]
}

// Int returns the value for key parsed as an integer.
// The second return is false if the key is absent or not numeric.
func (p Params) Int(key string) (int, bool) {
	raw, ok := p[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Bool returns the value for key parsed as a boolean ("true", "1", "false", ...).
// The second return is false if the key is absent or not a boolean.
func (p Params) Bool(key string) (bool, bool) {
	raw, ok := p[key]
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return b, true
}

// WithParameters appends params to the route's query component.
// A route that cannot be parsed as a path+query string is returned unchanged;
// appending parameters never fails and never changes the path part.
func WithParameters(route string, params Params) string {
	if len(params) == 0 {
		return route
	}
	u, err := url.Parse(route)
	if err != nil {
		return route
	}
	q := u.Query()
	for key, value := range params {
		q.Set(key, value)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// WithParameter appends a single key/value pair to the route's query component.
func WithParameter(route, key, value string) string {
	return WithParameters(route, Params{key: value})
}

// Parameters parses the query component of a route string: everything after
// the first '?', split on '&'. Pairs without an equals sign and pairs that
// fail percent-decoding are skipped. A key with no value after the equals
// sign maps to the empty string. This function never fails, and it agrees
// with PathOnly on where the query component starts - the path part is never
// inspected, so an odd path can't cost a route its parameters.
func Parameters(route string) Params {
	params := Params{}
	_, query, _ := strings.Cut(route, "?")
	for _, pair := range strings.Split(query, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			continue
		}
		params[decodedKey] = decodedValue
	}
	return params
}

// PathOnly strips the query component from a route string. The path part is
// returned exactly as written - this layer never percent-decodes it.
func PathOnly(route string) string {
	path, _, _ := strings.Cut(route, "?")
	return path
}
