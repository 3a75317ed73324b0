package reflectutils

import (
	"math"
	"reflect"
)

// CanBeNil tells if values of kind k have a nil state.
func CanBeNil(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// IsAbsent reports whether v carries no value: invalid, or nil for kinds which can be nil.
func IsAbsent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	if CanBeNil(v.Kind()) && v.IsNil() {
		return true
	}
	// an interface holding a typed nil pointer is absent as well
	if v.Kind() == reflect.Interface {
		return IsAbsent(v.Elem())
	}
	return false
}

// Coerce makes v usable where a value of type target is expected, converting it when needed.
// Numbers are only converted when target can represent them.
func Coerce(v reflect.Value, target reflect.Type) (reflect.Value, bool) {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if v.Type().AssignableTo(target) {
		return v, true
	}
	if v.Type().ConvertibleTo(target) && sameFamily(v.Kind(), target.Kind()) && fits(v, target) {
		return v.Convert(target), true
	}
	return reflect.Value{}, false
}

// fits reports whether the number held by v survives a conversion to target, other values always fit.
func fits(v reflect.Value, target reflect.Type) bool {
	zero := reflect.Zero(target)
	switch {
	case isSigned(v.Kind()) && isUnsigned(target.Kind()):
		return v.Int() >= 0 && !zero.OverflowUint(uint64(v.Int()))
	case isSigned(v.Kind()):
		return !zero.OverflowInt(v.Int())
	case isUnsigned(v.Kind()) && isSigned(target.Kind()):
		return v.Uint() <= math.MaxInt64 && !zero.OverflowInt(int64(v.Uint()))
	case isUnsigned(v.Kind()):
		return !zero.OverflowUint(v.Uint())
	case family(v.Kind()) == 2:
		return !zero.OverflowFloat(v.Float())
	default:
		return true
	}
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

// sameFamily prevents surprising conversions, such as int to string.
func sameFamily(from, to reflect.Kind) bool {
	return family(from) != 0 && family(from) == family(to)
}

func family(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 1
	case reflect.Float32, reflect.Float64:
		return 2
	case reflect.String:
		return 3
	case reflect.Bool:
		return 4
	case reflect.Complex64, reflect.Complex128:
		return 5
	default:
		return 0
	}
}
