package domain

import (
	"reflect"
	"strings"
)

// splitFields partitions a payload's fields into the record context and metadata maps.
// A field lands in context when tagged `record:"context"`, otherwise in metadata.
// Field names come from the json tag and omitempty is honoured.
func splitFields(p Payload) (map[string]any, map[string]any) {
	ctx := make(map[string]any)
	meta := make(map[string]any)

	v := reflect.ValueOf(p)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ctx, meta
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ctx, meta
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty := jsonName(field)
		if name == "-" {
			continue
		}

		value := v.Field(i)
		if omitEmpty && value.IsZero() {
			continue
		}

		if field.Tag.Get("record") == "context" {
			ctx[name] = value.Interface()
		} else {
			meta[name] = value.Interface()
		}
	}

	return ctx, meta
}

func jsonName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = field.Name
	}
	omitEmpty := false
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}
