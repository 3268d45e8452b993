package avwx

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

// Optional holds a value that may be unset. The zero Optional is unset, so
// an explicit false or 0 can be told apart from an omitted parameter.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value was provided.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the value, or def when unset.
func (o Optional[T]) Or(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Param is a single query parameter. Parameters without a value are not
// emitted.
type Param struct {
	Key   string
	Value string
	set   bool
}

// StringParam returns a parameter that is emitted when value is not empty.
func StringParam(key, value string) Param {
	return Param{Key: key, Value: value, set: value != ""}
}

// BoolParam returns a parameter rendered as true or false.
func BoolParam(key string, v Optional[bool]) Param {
	b, ok := v.Get()
	return Param{Key: key, Value: strconv.FormatBool(b), set: ok}
}

// IntParam returns a parameter rendered in base 10.
func IntParam(key string, v Optional[int]) Param {
	i, ok := v.Get()
	return Param{Key: key, Value: strconv.Itoa(i), set: ok}
}

// FloatParam returns a parameter rendered in its shortest decimal form.
func FloatParam(key string, v Optional[float64]) Param {
	f, ok := v.Get()
	return Param{Key: key, Value: strconv.FormatFloat(f, 'f', -1, 64), set: ok}
}

// IsSet reports whether the parameter carries a value.
func (p Param) IsSet() bool {
	return p.set
}

// BuildURL joins base, path and, when includePrimary is set, the primary
// segment, then appends each parameter as key=value&. Parameters are
// emitted in order, with whitespace removed from their values. Unset or
// empty parameters, and parameters whose value equals primary, are skipped.
func BuildURL(base, path, primary string, includePrimary bool, params []Param) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(path)
	if includePrimary {
		b.WriteString(primary)
	}
	b.WriteByte('?')

	for _, p := range params {
		if !p.set {
			continue
		}
		value := stripSpace(p.Value)
		if value == "" || value == primary {
			continue
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
		b.WriteByte('&')
	}
	return b.String()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
