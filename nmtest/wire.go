package nmtest

import (
	"reflect"

	"github.com/godbus/dbus/v5"
)

var (
	variantType    = reflect.TypeFor[dbus.Variant]()
	interfacesType = reflect.TypeFor[[]any]()
)

// wireValue converts v to the shape godbus produces when it decodes
// a message: structs become []any, and containers of structs are
// rebuilt with []any elements. Values crossing the in-memory
// transport go through wireValue, so that clients see exactly what
// they would see from a real bus.
func wireValue(v reflect.Value) reflect.Value {
	t := v.Type()
	if t == variantType {
		vv := v.Interface().(dbus.Variant)
		inner := wireValue(reflect.ValueOf(vv.Value())).Interface()
		return reflect.ValueOf(dbus.MakeVariantWithSignature(inner, vv.Signature()))
	}

	switch t.Kind() {
	case reflect.Struct:
		ret := make([]any, 0, t.NumField())
		for i := range t.NumField() {
			if !t.Field(i).IsExported() {
				continue
			}
			ret = append(ret, wireValue(v.Field(i)).Interface())
		}
		return reflect.ValueOf(ret)
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return reflect.ValueOf(append([]byte{}, v.Bytes()...))
		}
		ret := reflect.MakeSlice(reflect.SliceOf(wireType(t.Elem())), v.Len(), v.Len())
		for i := range v.Len() {
			ret.Index(i).Set(wireValue(v.Index(i)))
		}
		return ret
	case reflect.Map:
		ret := reflect.MakeMapWithSize(reflect.MapOf(wireType(t.Key()), wireType(t.Elem())), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			ret.SetMapIndex(wireValue(iter.Key()), wireValue(iter.Value()))
		}
		return ret
	}
	return v
}

func wireType(t reflect.Type) reflect.Type {
	if t == variantType {
		return t
	}
	switch t.Kind() {
	case reflect.Struct:
		return interfacesType
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return reflect.TypeFor[[]byte]()
		}
		return reflect.SliceOf(wireType(t.Elem()))
	case reflect.Map:
		return reflect.MapOf(wireType(t.Key()), wireType(t.Elem()))
	}
	return t
}
