package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/instance"
	"github.com/a-peyrard/instance/fn"
	"github.com/a-peyrard/instance/option"
	"github.com/a-peyrard/instance/reflectutils"
	"github.com/a-peyrard/instance/str"
	"github.com/a-peyrard/instance/structs"
	"github.com/spf13/viper"
)

type (
	Options struct {
		prefix string
		file   string
	}

	// WithDefault is implemented by config structs filling their own defaults once loaded.
	WithDefault interface {
		ApplyDefault()
	}
)

func WithEnvPrefix(prefix string) option.Option[Options] {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// WithFile reads path before env variables, env variables win. The format is deduced from the extension.
func WithFile(path string) option.Option[Options] {
	return func(opts *Options) {
		opts.file = path
	}
}

// Load builds a T from the env variables (and the config file, if any).
//
// Field Foo.BarBaz of T is read from PREFIX_FOO_BAR_BAZ. Nil pointers to structs are allocated,
// and ApplyDefault is called on every value implementing WithDefault.
func Load[T any](opts ...option.Option[Options]) (*T, error) {
	v, err := NewViper[T](opts...)
	if err != nil {
		return nil, err
	}

	var vT T
	if err := v.Unmarshal(&vT); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	withDefaultType := instance.TypeOf[WithDefault]()
	callApplyDefault := func(val reflect.Value, typ reflect.Type, _ []string) {
		if typ.Implements(withDefaultType) && !reflectutils.IsAbsent(val) {
			val.Interface().(WithDefault).ApplyDefault()
		}
	}
	reflectutils.WalkStruct(
		&vT,
		fn.AllTriConsumer(
			reflectutils.CreateNilStructs,
			callApplyDefault,
		),
	)

	return &vT, nil
}

// NewViper returns a viper instance with every field of T bound to its env variable.
func NewViper[T any](opts ...option.Option[Options]) (*viper.Viper, error) {
	options := option.Build(&Options{}, opts...)

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if options.file != "" {
		v.SetConfigFile(options.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", options.file, err)
		}
	}

	bindEnvs(v, options.prefix, instance.TypeOf[T]())
	return v, nil
}

func bindEnvs(v *viper.Viper, prefix string, typ reflect.Type, parts ...string) {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			name = field.Name
		}

		fieldPath := append(append([]string{}, parts...), name)
		fieldTyp := field.Type
		if fieldTyp.Kind() == reflect.Pointer {
			fieldTyp = fieldTyp.Elem()
		}
		if fieldTyp.Kind() == reflect.Struct {
			bindEnvs(v, prefix, fieldTyp, fieldPath...)
			continue
		}
		_ = v.BindEnv(strings.Join(fieldPath, "."), str.ToEnvKey(prefix, fieldPath...))
	}
}

// Inject is a property decorator reading the value of the field at path in cfg, a loaded config.
//
//	widgets.MustDecorate("URL", config.Inject(cfg, "Database.URL"))
func Inject(cfg any, path string) instance.Decorator {
	return instance.MustNewDecorator(func(_ any, name string) (any, error) {
		value, err := structs.Get(cfg, path)
		if err != nil {
			return nil, fmt.Errorf("failed to inject %s into %s:\n\t%w", path, name, err)
		}
		return value, nil
	})
}

// FromViper is a property decorator setting the field with the entry key of v, converted to the
// type of the field. Fields are untouched when the key is not set.
func FromViper(v *viper.Viper, key string) instance.Decorator {
	return instance.MustNewDecorator(func(target any, name string) (any, error) {
		if !v.IsSet(key) {
			return nil, nil
		}

		val := reflectutils.Deref(reflect.ValueOf(target))
		if val.Kind() != reflect.Struct {
			return nil, errors.New("FromViper only decorates structs")
		}
		field, found := val.Type().FieldByName(name)
		if !found {
			return nil, fmt.Errorf("%s has no field %s", val.Type(), name)
		}

		value, err := reflectutils.ConvertTo(v.Get(key), field.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %s for field %s:\n\t%w", key, name, err)
		}
		return value, nil
	})
}
