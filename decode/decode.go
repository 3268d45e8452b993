package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by Parse when the input is not a JSON document.
var ErrInvalidJSON = errors.New("invalid JSON document")

// timeLayouts are tried in order when decoding timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Schema is satisfied by a pointer to a type that knows how to decode its
// own fields from an Object.
type Schema[T any] interface {
	*T
	DecodeFields(o *Object)
}

// Warning describes a field whose value did not match its declared shape.
type Warning struct {
	Path string `json:"path"`
	Want string `json:"want"`
	Got  string `json:"got"`
}

// String implements fmt.Stringer
func (w Warning) String() string {
	return fmt.Sprintf("%s: want %s, got %s", w.Path, w.Want, w.Got)
}

// Partial is embedded in top-level results. It holds the warnings raised
// while the result was decoded; an empty list means a clean decode.
type Partial struct {
	Warnings []Warning `json:"warnings,omitempty"`
}

// IsPartial reports whether any field failed to decode.
func (p *Partial) IsPartial() bool {
	return len(p.Warnings) > 0
}

func (p *Partial) partial() *Partial {
	return p
}

type partialHolder interface {
	partial() *Partial
}

// Object is a JSON object being decoded into a schema.
type Object struct {
	res  gjson.Result
	path string
	sink *[]Warning
}

// Parse validates data and returns its parsed root.
func Parse(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, ErrInvalidJSON
	}
	return gjson.ParseBytes(data), nil
}

// Decode runs fn against the root object of res and returns the warnings it
// produced. A root that is not an object yields a single warning and fn is
// not called.
func Decode(res gjson.Result, fn func(o *Object)) []Warning {
	var warnings []Warning
	if !res.IsObject() {
		return append(warnings, Warning{Path: "$", Want: "object", Got: kindOf(res)})
	}
	fn(&Object{res: res, sink: &warnings})
	return warnings
}

// Value decodes the root object of res into a T.
func Value[T any, PT Schema[T]](res gjson.Result) (T, []Warning) {
	var v T
	warnings := Decode(res, func(o *Object) {
		PT(&v).DecodeFields(o)
	})
	attach(PT(&v), warnings)
	return v, warnings
}

// Values decodes a root array of objects into a slice of T. Warnings carry
// the element index in their path. Elements that embed Partial receive their
// own warnings as well.
func Values[T any, PT Schema[T]](res gjson.Result) ([]T, []Warning) {
	var warnings []Warning
	if !res.IsArray() {
		return nil, append(warnings, Warning{Path: "$", Want: "array", Got: kindOf(res)})
	}

	items := res.Array()
	out := make([]T, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("[%d]", i)
		if !item.IsObject() {
			warnings = append(warnings, Warning{Path: path, Want: "object", Got: kindOf(item)})
			continue
		}

		var own []Warning
		var v T
		PT(&v).DecodeFields(&Object{res: item, path: path, sink: &own})
		attach(PT(&v), own)
		warnings = append(warnings, own...)
		out = append(out, v)
	}
	return out, warnings
}

func attach(v any, warnings []Warning) {
	if len(warnings) == 0 {
		return
	}
	if p, ok := v.(partialHolder); ok {
		p.partial().Warnings = warnings
	}
}

// Nested decodes the object stored under key into a new T.
// It returns nil when the key is absent, null or not an object.
func Nested[T any, PT Schema[T]](o *Object, key string) *T {
	r, ok := o.field(key)
	if !ok {
		return nil
	}
	if !r.IsObject() {
		o.warn(key, "object", r)
		return nil
	}
	v := new(T)
	PT(v).DecodeFields(o.child(o.childPath(key), r))
	return v
}

// List decodes the array stored under key, one T per object element, in
// order. Non-object elements are skipped with a warning.
func List[T any, PT Schema[T]](o *Object, key string) []T {
	r, ok := o.field(key)
	if !ok {
		return nil
	}
	if !r.IsArray() {
		o.warn(key, "array", r)
		return nil
	}

	items := r.Array()
	out := make([]T, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s[%d]", o.childPath(key), i)
		if !item.IsObject() {
			o.add(Warning{Path: path, Want: "object", Got: kindOf(item)})
			continue
		}
		var v T
		PT(&v).DecodeFields(o.child(path, item))
		out = append(out, v)
	}
	return out
}

// Path returns the location of o within the document.
func (o *Object) Path() string {
	return o.path
}

// Has reports whether key is present with a non-null value.
func (o *Object) Has(key string) bool {
	_, ok := o.field(key)
	return ok
}

// String returns the string stored under key. Numbers and booleans are
// rendered as their JSON text.
func (o *Object) String(key string) string {
	r, ok := o.field(key)
	if !ok {
		return ""
	}
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number, gjson.True, gjson.False:
		return r.Raw
	}
	o.warn(key, "string", r)
	return ""
}

// Strings returns the array of scalars stored under key as strings.
func (o *Object) Strings(key string) []string {
	r, ok := o.field(key)
	if !ok {
		return nil
	}
	if !r.IsArray() {
		o.warn(key, "array", r)
		return nil
	}

	items := r.Array()
	out := make([]string, 0, len(items))
	for i, item := range items {
		switch item.Type {
		case gjson.String:
			out = append(out, item.Str)
		case gjson.Number, gjson.True, gjson.False:
			out = append(out, item.Raw)
		case gjson.Null:
		default:
			o.add(Warning{Path: fmt.Sprintf("%s[%d]", o.childPath(key), i), Want: "string", Got: kindOf(item)})
		}
	}
	return out
}

// StringMap returns the object stored under key as a map of strings.
func (o *Object) StringMap(key string) map[string]string {
	r, ok := o.field(key)
	if !ok {
		return nil
	}
	if !r.IsObject() {
		o.warn(key, "object", r)
		return nil
	}

	out := make(map[string]string)
	r.ForEach(func(k, v gjson.Result) bool {
		switch v.Type {
		case gjson.String:
			out[k.String()] = v.Str
		case gjson.Number, gjson.True, gjson.False:
			out[k.String()] = v.Raw
		case gjson.Null:
		default:
			o.add(Warning{Path: o.childPath(key) + "." + k.String(), Want: "string", Got: kindOf(v)})
		}
		return true
	})
	return out
}

// Float returns the number stored under key. Numeric strings are accepted.
func (o *Object) Float(key string) *float64 {
	r, ok := o.field(key)
	if !ok {
		return nil
	}
	switch r.Type {
	case gjson.Number:
		f := r.Num
		return &f
	case gjson.String:
		if f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64); err == nil {
			return &f
		}
	}
	o.warn(key, "number", r)
	return nil
}

// Int returns the integer stored under key. Numeric strings are accepted;
// numbers with a fractional part are rejected.
func (o *Object) Int(key string) *int {
	r, ok := o.field(key)
	if !ok {
		return nil
	}
	switch r.Type {
	case gjson.Number:
		if r.Num == float64(int64(r.Num)) {
			i := int(r.Num)
			return &i
		}
	case gjson.String:
		if i, err := strconv.Atoi(strings.TrimSpace(r.Str)); err == nil {
			return &i
		}
	}
	o.warn(key, "integer", r)
	return nil
}

// Bool returns the boolean stored under key.
func (o *Object) Bool(key string) *bool {
	r, ok := o.field(key)
	if !ok {
		return nil
	}
	if r.Type == gjson.True || r.Type == gjson.False {
		b := r.Bool()
		return &b
	}
	o.warn(key, "bool", r)
	return nil
}

// Flag is Bool with absent values read as false.
func (o *Object) Flag(key string) bool {
	if b := o.Bool(key); b != nil {
		return *b
	}
	return false
}

// Time returns the timestamp stored under key.
func (o *Object) Time(key string) *time.Time {
	r, ok := o.field(key)
	if !ok {
		return nil
	}
	if r.Type == gjson.String {
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, r.Str); err == nil {
				return &t
			}
		}
	}
	o.warn(key, "timestamp", r)
	return nil
}

// Raw returns a copy of the JSON text stored under key. It is used for
// upstream fields with no stable shape.
func (o *Object) Raw(key string) json.RawMessage {
	r, ok := o.field(key)
	if !ok {
		return nil
	}
	return json.RawMessage(r.Raw)
}

func (o *Object) field(key string) (gjson.Result, bool) {
	r := o.res.Get(key)
	if !r.Exists() || r.Type == gjson.Null {
		return r, false
	}
	return r, true
}

func (o *Object) child(path string, r gjson.Result) *Object {
	return &Object{res: r, path: path, sink: o.sink}
}

func (o *Object) childPath(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

func (o *Object) warn(key, want string, got gjson.Result) {
	o.add(Warning{Path: o.childPath(key), Want: want, Got: kindOf(got)})
}

func (o *Object) add(w Warning) {
	*o.sink = append(*o.sink, w)
}

func kindOf(r gjson.Result) string {
	switch {
	case !r.Exists():
		return "nothing"
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	}
	switch r.Type {
	case gjson.String:
		return fmt.Sprintf("string %q", r.Str)
	case gjson.Number:
		return "number " + r.Raw
	case gjson.True, gjson.False:
		return "bool"
	case gjson.Null:
		return "null"
	}
	return "unknown"
}
