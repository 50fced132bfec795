// Copyright (c) 2025 Visvasity LLC

package input

import (
	"math/rand"
	"reflect"
)

// randomize fills every number reachable from input, which must be a pointer,
// with random values.
func randomize(input any) {
	v := reflect.ValueOf(input)
	if !v.IsValid() || v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	randomizeValue(v.Elem())
}

func randomizeValue(v reflect.Value) {
	if !v.CanSet() {
		return
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(rand.Int63() >> (64 - v.Type().Bits()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(rand.Uint64() >> (64 - v.Type().Bits()))

	case reflect.Float32, reflect.Float64:
		v.SetFloat(rand.Float64() * 1000)

	case reflect.Array, reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			randomizeValue(v.Index(i))
		}

	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			randomizeValue(v.Field(i))
		}
	}
}
