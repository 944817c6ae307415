// Package stick provides helpers shared by the ember packages.
package stick

import (
	"reflect"

	"dario.cat/mergo"
)

// Merge will merge the specified base value with the provided values and return
// the base value. Non-zero fields of later values override earlier ones.
func Merge[T any](base T, with ...T) T {
	// check list
	if len(with) == 0 {
		return base
	}

	// check if already a pointer
	ptr := reflect.TypeOf(base).Kind() == reflect.Ptr

	// merge base with values
	for _, value := range with {
		var err error
		if ptr {
			err = mergo.Merge(base, value, mergo.WithOverride)
		} else {
			err = mergo.Merge(&base, &value, mergo.WithOverride)
		}
		if err != nil {
			panic(err)
		}
	}

	return base
}
