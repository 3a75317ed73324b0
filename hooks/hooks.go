// Package hooks provides ready made property decorators.
//
// They work on any pointer to struct, the decorated member is looked up by name on the instance:
//
//	widgets := instance.MustFor[*Widget](registry)
//	widgets.MustDecorate("ID", hooks.UUID())
//	widgets.MustDecorate("Retries", hooks.Env("WIDGET_RETRIES"))
//	widgets.MustDecorate("Retries", hooks.Default(3))
package hooks

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/a-peyrard/instance"
	"github.com/a-peyrard/instance/reflectutils"
	"github.com/a-peyrard/instance/str"
	"github.com/google/uuid"
)

var uuidType = instance.TypeOf[uuid.UUID]()

// UUID fills an empty identifier with a random UUID. The field is either a string or an uuid.UUID.
func UUID() instance.Decorator {
	return instance.MustNewDecorator(func(target any, name string) (any, error) {
		field, err := fieldOf(target, name)
		if err != nil {
			return nil, err
		}

		switch {
		case field.Type() == uuidType:
			if field.Interface().(uuid.UUID) != uuid.Nil {
				return nil, nil
			}
			return uuid.New(), nil
		case field.Kind() == reflect.String:
			if field.String() != "" {
				return nil, nil
			}
			return uuid.NewString(), nil
		default:
			return nil, fmt.Errorf("cannot generate an UUID for field %s of type %s", name, field.Type())
		}
	})
}

// Default sets value on fields left to their zero value by the constructor.
func Default(value any) instance.Decorator {
	return instance.MustNewDecorator(func(target any, name string) (any, error) {
		field, err := fieldOf(target, name)
		if err != nil {
			return nil, err
		}
		if !field.IsZero() {
			return nil, nil
		}
		return value, nil
	})
}

// Env sets the field with the value of the environment variable, converted to the type of the field.
// The field is untouched when the variable is not set.
func Env(variable string) instance.Decorator {
	return instance.MustNewDecorator(func(target any, name string) (any, error) {
		return fromEnv(target, name, variable)
	})
}

// EnvPrefixed is Env with the variable named after the field, e.g. prefix "APP" and field
// "MaxRetries" reads APP_MAX_RETRIES. Acronyms are kept together, field "ID" reads APP_ID.
func EnvPrefixed(prefix string) instance.Decorator {
	return instance.MustNewDecorator(func(target any, name string) (any, error) {
		return fromEnv(target, name, str.ToEnvKey(prefix, name))
	})
}

func fromEnv(target any, name string, variable string) (any, error) {
	raw, found := os.LookupEnv(variable)
	if !found {
		return nil, nil
	}

	field, err := fieldOf(target, name)
	if err != nil {
		return nil, err
	}
	value, err := reflectutils.ConvertTo(raw, field.Type())
	if err != nil {
		return nil, fmt.Errorf("failed to convert env variable %s for field %s:\n\t%w", variable, name, err)
	}
	return value, nil
}

func fieldOf(target any, name string) (reflect.Value, error) {
	val := reflectutils.Deref(reflect.ValueOf(target))
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, errors.New("hooks only decorate structs")
	}
	field := val.FieldByName(name)
	if !field.IsValid() {
		return reflect.Value{}, fmt.Errorf("%s has no field %s", val.Type(), name)
	}
	return field, nil
}
