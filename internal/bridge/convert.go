// Package bridge connects a match to a host engine: it converts values to
// and from the host's value model and routes named requests and events.
package bridge

import (
	"fmt"
	"log"
	"reflect"
	"slices"

	"github.com/samdwyer/skirmish/internal/board"
)

// Vector3 is the host's integer vector.
type Vector3 struct {
	X, Y, Z int
}

// Array is the host's ordered list.
type Array []any

// Dictionary is the host's string-keyed map.
type Dictionary map[string]any

// recorder is implemented by state types with a keyed structural form.
type recorder interface {
	Record() map[string]any
}

var positionType = reflect.TypeOf(board.Position{})

// ToHost converts a value into the host value model.
//
// Positions and [3]int arrays become Vector3, slices become Array and
// string-keyed maps become Dictionary. Maps keyed by Position become an
// Array of [Vector3, value] pairs ordered by position. Values with a
// Record method are converted through it. Anything else is replaced by
// its fmt.Sprint form and logged.
func ToHost(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	switch x := v.(type) {
	case nil:
		return nil
	case board.Position:
		return Vector3{X: x.X, Y: x.Y, Z: x.Z}
	case Vector3, string, bool:
		return x
	case recorder:
		return ToHost(x.Record())
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Pointer:
		return ToHost(rv.Elem().Interface())
	case reflect.Array:
		if vec, ok := vector(rv); ok {
			return vec
		}
		return sliceToHost(rv)
	case reflect.Slice:
		if rv.IsNil() {
			return Array{}
		}
		return sliceToHost(rv)
	case reflect.Map:
		switch {
		case rv.Type().Key() == positionType:
			return gridToHost(rv)
		case rv.Type().Key().Kind() == reflect.String:
			out := make(Dictionary, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				out[iter.Key().String()] = ToHost(iter.Value().Interface())
			}
			return out
		}
	}

	log.Printf("warning: cannot convert %T for host, using string form", v)
	return fmt.Sprint(v)
}

// vector converts a three element numeric array.
func vector(rv reflect.Value) (Vector3, bool) {
	if rv.Len() != 3 {
		return Vector3{}, false
	}
	var c [3]int
	for i := range 3 {
		e := rv.Index(i)
		switch e.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			c[i] = int(e.Int())
		case reflect.Float32, reflect.Float64:
			c[i] = int(e.Float())
		default:
			return Vector3{}, false
		}
	}
	return Vector3{X: c[0], Y: c[1], Z: c[2]}, true
}

func sliceToHost(rv reflect.Value) Array {
	out := make(Array, rv.Len())
	for i := range out {
		out[i] = ToHost(rv.Index(i).Interface())
	}
	return out
}

func gridToHost(rv reflect.Value) Array {
	keys := make([]board.Position, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.Interface().(board.Position))
	}
	slices.SortFunc(keys, comparePositions)

	out := make(Array, len(keys))
	for i, k := range keys {
		out[i] = Array{ToHost(k), ToHost(rv.MapIndex(reflect.ValueOf(k)).Interface())}
	}
	return out
}

func comparePositions(a, b board.Position) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}

// FromHost converts a host value into plain Go values: Vector3 becomes
// board.Position, Array becomes []any and Dictionary becomes map[string]any.
// Other values are returned unchanged.
func FromHost(v any) any {
	switch x := v.(type) {
	case Vector3:
		return board.Position{X: x.X, Y: x.Y, Z: x.Z}
	case Array:
		return listFromHost(x)
	case []any:
		return listFromHost(x)
	case Dictionary:
		return mapFromHost(x)
	case map[string]any:
		return mapFromHost(x)
	default:
		return v
	}
}

func listFromHost(in []any) []any {
	out := make([]any, len(in))
	for i, e := range in {
		out[i] = FromHost(e)
	}
	return out
}

func mapFromHost(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, e := range in {
		out[k] = FromHost(e)
	}
	return out
}
