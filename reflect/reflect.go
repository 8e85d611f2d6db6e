package reflect

import (
	"reflect"
	"sort"
)

type (
	Value = reflect.Value
	Kind  = reflect.Kind
)

var (
	ValueOf = reflect.ValueOf
	TypeOf  = reflect.TypeOf
)

// MapKeys returns string representations of map keys in iteration order.
func MapKeys(v Value) []string {
	keys := v.MapKeys()
	res := make([]string, len(keys))
	for n, key := range keys {
		res[n] = key.String()
	}
	return res
}

func MapSortedKeys(v Value) []string {
	keys := MapKeys(v)
	sort.Strings(keys)
	return keys
}
