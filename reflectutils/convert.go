package reflectutils

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cast"
)

var durationType = reflect.TypeOf(time.Duration(0))

// ConvertTo converts loosely typed values, such as env variables or raw config entries, to typ.
// Numbers are converted to their widest type of the kind of typ, Coerce narrows them afterwards.
func ConvertTo(value any, typ reflect.Type) (any, error) {
	if typ == durationType {
		return cast.ToDurationE(value)
	}

	switch typ.Kind() {
	case reflect.String:
		return cast.ToStringE(value)
	case reflect.Bool:
		return cast.ToBoolE(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cast.ToInt64E(value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cast.ToUint64E(value)
	case reflect.Float32, reflect.Float64:
		return cast.ToFloat64E(value)
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			return cast.ToStringSliceE(value)
		}
	case reflect.Map:
		if typ.Key().Kind() == reflect.String && typ.Elem().Kind() == reflect.String {
			return cast.ToStringMapStringE(value)
		}
	}

	if v := reflect.ValueOf(value); v.IsValid() && v.Type().AssignableTo(typ) {
		return value, nil
	}
	return nil, fmt.Errorf("unable to convert %#v of type %T to %s", value, value, typ)
}
