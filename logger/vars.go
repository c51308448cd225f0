package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Var is a named value appended to a log line as name=value.
type Var struct {
	Name  string
	Value any
}

// V builds a Var.
func V(name string, value any) Var {
	return Var{Name: name, Value: value}
}

type undefined struct{}

// Undefined renders as "undefined", for values that are absent rather than nil.
var Undefined any = undefined{}

// objectPlaceholder stands in for values that cannot be serialized.
const objectPlaceholder = "[Object]"

// stringify renders a variable value. Primitives use their default format,
// errors and Stringers their text, anything structured is JSON encoded.
// A nil pointer renders as null and a panicking method as the placeholder.
func stringify(value any) (s string) {
	defer func() {
		if recover() != nil {
			s = objectPlaceholder
		}
	}()

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "null"
	}

	switch v := value.(type) {
	case nil:
		return "null"
	case undefined:
		return "undefined"
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprint(value)
	}

	return marshal(value)
}

// marshal encodes value as compact JSON without HTML escaping.
func marshal(value any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return objectPlaceholder
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// withVar returns vars with v in front. A var of the same name in vars
// replaces v's value but keeps the leading position.
func withVar(v Var, vars []Var) []Var {
	out := make([]Var, 0, len(vars)+1)
	out = append(out, v)
	for _, x := range vars {
		if x.Name == v.Name {
			out[0].Value = x.Value
			continue
		}
		out = append(out, x)
	}
	return out
}
