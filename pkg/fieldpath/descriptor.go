package fieldpath

import (
	"reflect"

	"github.com/dmitrymomot/formvalidation/pkg/cache"
)

const descriptorCacheSize = 512

// descriptors holds one field table per struct type, built on first use.
var descriptors = cache.NewLRUCache[reflect.Type, *typeDescriptor](descriptorCacheSize)

type fieldInfo struct {
	name     string
	index    int
	walkable bool
}

type typeDescriptor struct {
	fields []fieldInfo
	byName map[string]int
}

func describe(t reflect.Type) *typeDescriptor {
	return descriptors.GetOrCompute(t, buildDescriptor)
}

func buildDescriptor(t reflect.Type) *typeDescriptor {
	d := &typeDescriptor{byName: make(map[string]int, t.NumField())}
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		d.byName[sf.Name] = len(d.fields)
		d.fields = append(d.fields, fieldInfo{
			name:     sf.Name,
			index:    i,
			walkable: isWalkable(sf.Type),
		})
	}
	return d
}

func (d *typeDescriptor) field(name string) (fieldInfo, bool) {
	i, ok := d.byName[name]
	if !ok {
		return fieldInfo{}, false
	}
	return d.fields[i], true
}

// isWalkable reports whether values of t can lead to a struct owner.
// Self-referential element types such as `type L []L` end after a bounded
// number of unwraps.
func isWalkable(t reflect.Type) bool {
	for range 16 {
		switch t.Kind() {
		case reflect.Struct, reflect.Interface:
			return true
		case reflect.Pointer, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return false
		}
	}
	return false
}

// LookupField walks p over the static type t (a struct or pointer to struct)
// and returns the struct field p's last segment names. Indexed segments step
// into slice and array elements.
func LookupField(t reflect.Type, p Path) (reflect.StructField, bool) {
	if len(p) == 0 {
		return reflect.StructField{}, false
	}
	var sf reflect.StructField
	for _, seg := range p {
		t = derefType(t)
		if t.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		info, ok := describe(t).field(seg.Name)
		if !ok {
			return reflect.StructField{}, false
		}
		sf = t.Field(info.index)
		t = sf.Type
		if seg.Indexed {
			t = derefType(t)
			if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
				return reflect.StructField{}, false
			}
			t = t.Elem()
		}
	}
	return sf, true
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
