package m3u8

import (
	"strings"
)

// Attribute provides a raw key-value pair for an attribute. Quotes are included.
type Attribute struct {
	Key string // Name of the attribute
	Val string // Value including quotes if a quoted string
}

// Attributes is an attribute list in the order keys were first seen.
// Setting an existing key replaces its value in place.
type Attributes []Attribute

// Get returns the value stored for key.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Value returns the value stored for key or the empty string.
func (a Attributes) Value(key string) string {
	v, _ := a.Get(key)
	return v
}

// Set stores val under key, keeping the position of an existing key.
func (a *Attributes) Set(key, val string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Val = val
			return
		}
	}
	*a = append(*a, Attribute{Key: key, Val: val})
}

// Len returns the number of distinct keys.
func (a Attributes) Len() int {
	return len(a)
}

// Keys returns the keys in order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for _, attr := range a {
		keys = append(keys, attr.Key)
	}
	return keys
}

// String rejoins the list as written in a tag line. A list holding only the
// UNKNOWN key yields its raw value.
func (a Attributes) String() string {
	var sb strings.Builder
	for i, attr := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		if attr.Key == unknownKey {
			sb.WriteString(attr.Val)
			continue
		}
		sb.WriteString(attr.Key)
		sb.WriteByte('=')
		sb.WriteString(attr.Val)
	}
	return sb.String()
}

// DeQuote removes surrounding double quotes, if present.
func DeQuote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// decodeAttributes parses a comma separated KEY=VALUE list.
// Quoted values may contain commas and are returned with their quotes.
func decodeAttributes(line string) (Attributes, error) {
	var attrs Attributes
	rest := line
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			return nil, malformed(rest, ErrMissingEquals)
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var val string
		if end := quotedEnd(rest); end > 0 {
			val, rest = rest[:end], rest[end:]
		} else if comma := strings.IndexByte(rest, ','); comma >= 0 {
			val, rest = rest[:comma], rest[comma:]
		} else {
			val, rest = rest, ""
		}
		attrs.Set(key, val)

		if rest == "" {
			break
		}
		if rest[0] != ',' {
			return nil, malformed(rest, ErrMissingComma)
		}
		rest = rest[1:]
		if rest == "" {
			return nil, malformed(line, ErrMissingEquals)
		}
	}
	return attrs, nil
}

// quotedEnd returns the length of a quoted string at the start of s,
// closing quote included, or 0 if s does not start with a complete one.
func quotedEnd(s string) int {
	if len(s) < 2 || s[0] != '"' {
		return 0
	}
	closing := strings.IndexByte(s[1:], '"')
	if closing < 0 {
		return 0
	}
	return closing + 2
}
