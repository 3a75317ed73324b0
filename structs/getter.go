// Package structs reads values out of nested structs and maps using dotted paths.
package structs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/instance/reflectutils"
)

// Get returns the value found at path in origin, e.g. "Database.Primary.URL".
// Every token is either an exported struct field or a string map key.
func Get(origin any, path string) (any, error) {
	if origin == nil {
		return nil, fmt.Errorf("cannot read %s from a nil origin", path)
	}
	if path == "" {
		return nil, errors.New("path cannot be empty")
	}

	current := reflect.ValueOf(origin)
	for i, token := range strings.Split(path, ".") {
		if token == "" {
			return nil, fmt.Errorf("empty token at position %d in path %s", i, path)
		}
		next, err := step(reflectutils.Deref(current), token)
		if err != nil {
			return nil, fmt.Errorf("failed to read token %s (position %d) in path %s:\n\t%w", token, i, path, err)
		}
		current = next
	}

	return current.Interface(), nil
}

func step(val reflect.Value, token string) (reflect.Value, error) {
	if !val.IsValid() {
		return reflect.Value{}, errors.New("encountered a nil value")
	}

	switch val.Kind() {
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, fmt.Errorf("map keys must be strings, got %s", val.Type().Key())
		}
		entry := val.MapIndex(reflect.ValueOf(token).Convert(val.Type().Key()))
		if !entry.IsValid() {
			return reflect.Value{}, fmt.Errorf("key %s not found in map", token)
		}
		return entry, nil

	case reflect.Struct:
		field, found := val.Type().FieldByName(token)
		if !found {
			return reflect.Value{}, fmt.Errorf("field %s not found in struct %s", token, val.Type().Name())
		}
		if !field.IsExported() {
			return reflect.Value{}, fmt.Errorf("field %s in struct %s is not exported", token, val.Type().Name())
		}
		return val.FieldByIndex(field.Index), nil

	default:
		return reflect.Value{}, fmt.Errorf("expected struct or map but got %s", val.Kind())
	}
}
