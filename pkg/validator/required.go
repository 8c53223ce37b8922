package validator

import (
	"fmt"
	"reflect"
	"strings"
)

const requiredMessage = "Campo obrigatorio: %s"

// Result is the outcome of a required-field check.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateRequired reports every field of fields that is absent from
// payload, nil, or a blank string. payload is a map keyed by field name, a
// value with a Get(name) accessor such as model.RawFormInput, or a struct
// (or pointer to one) whose fields are matched by json tag.
func ValidateRequired(payload any, fields []string) Result {
	lookup := fieldLookup(payload)

	errs := []string{}
	for _, field := range fields {
		v, ok := lookup(field)
		if !ok || isMissing(v) {
			errs = append(errs, fmt.Sprintf(requiredMessage, field))
		}
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

type getter interface {
	Get(name string) (any, bool)
}

func fieldLookup(payload any) func(string) (reflect.Value, bool) {
	none := func(string) (reflect.Value, bool) { return reflect.Value{}, false }

	if g, ok := payload.(getter); ok {
		return func(name string) (reflect.Value, bool) {
			v, found := g.Get(name)
			return reflect.ValueOf(v), found
		}
	}

	v := reflect.ValueOf(payload)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return none
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return none
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return none
		}
		return func(name string) (reflect.Value, bool) {
			mv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
			return mv, mv.IsValid()
		}
	case reflect.Struct:
		index := jsonFieldIndex(v.Type())
		return func(name string) (reflect.Value, bool) {
			i, ok := index[name]
			if !ok {
				return reflect.Value{}, false
			}
			return v.Field(i), true
		}
	default:
		return none
	}
}

func jsonFieldIndex(t reflect.Type) map[string]int {
	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		index[name] = i
	}
	return index
}

// isMissing treats nil and blank strings as missing. Zero numbers and false
// are answers.
func isMissing(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map:
		return v.IsNil()
	default:
		return false
	}
}
