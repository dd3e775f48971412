package fieldpath

import (
	"fmt"
	"reflect"
)

// nodeKey identifies an owner by pointer type and address. The type is part of
// the key because a struct and its first field share an address. Slices are
// keyed by their backing array and length, as a slice can hold itself.
type nodeKey struct {
	typ  reflect.Type
	addr uintptr
	n    int
}

func sliceKey(v reflect.Value) nodeKey {
	return nodeKey{typ: v.Type(), addr: v.Pointer(), n: v.Len()}
}

func keyOf(v reflect.Value) nodeKey {
	return nodeKey{typ: v.Type(), addr: v.Pointer()}
}

func structPointer(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return rv, true
}

// ResolvePath finds the root-relative path of owner's property name.
//
// The walk is depth-first in field declaration order over exported fields,
// following pointers, interfaces that hold pointers, slices and arrays.
// Maps and structs stored by value in interfaces are not entered. Each owner
// and each slice is expanded at most once, so cyclic graphs terminate, including
// a slice whose element holds the slice itself. When owner is
// reachable along several paths the first one found wins.
//
// It reports false when owner is not reachable from root.
func ResolvePath(root, owner any, name string) (Path, bool) {
	if name == "" {
		return nil, false
	}
	rv, ok := structPointer(root)
	if !ok {
		return nil, false
	}
	ov := reflect.ValueOf(owner)
	if !ov.IsValid() || ov.Kind() != reflect.Pointer || ov.IsNil() {
		return nil, false
	}
	leaf, err := parseSegment(name)
	if err != nil {
		return nil, false
	}

	w := walker{target: keyOf(ov), visited: make(map[nodeKey]struct{})}
	p, found := w.walk(rv, nil)
	if !found {
		return nil, false
	}
	return append(p, leaf), true
}

type walker struct {
	target  nodeKey
	visited map[nodeKey]struct{}
}

func (w *walker) walk(v reflect.Value, path Path) (Path, bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil, false
		}
		key := keyOf(v)
		if key == w.target {
			return path, true
		}
		if _, seen := w.visited[key]; seen {
			return nil, false
		}
		w.visited[key] = struct{}{}
		return w.walk(v.Elem(), path)

	case reflect.Interface:
		if v.IsNil() || v.Elem().Kind() != reflect.Pointer {
			return nil, false
		}
		return w.walk(v.Elem(), path)

	case reflect.Struct:
		if v.CanAddr() && keyOf(v.Addr()) == w.target {
			return path, true
		}
		for _, f := range describe(v.Type()).fields {
			if !f.walkable {
				continue
			}
			if p, ok := w.walk(v.Field(f.index), path.Child(f.name)); ok {
				return p, true
			}
		}

	case reflect.Slice, reflect.Array:
		last, ok := path.Last()
		if !ok || last.Indexed {
			// collections of collections have no path form
			return nil, false
		}
		if v.Kind() == reflect.Slice {
			key := sliceKey(v)
			if _, seen := w.visited[key]; seen {
				return nil, false
			}
			w.visited[key] = struct{}{}
		}
		for i := range v.Len() {
			if p, ok := w.walk(v.Index(i), path.Index(i)); ok {
				return p, true
			}
		}
	}
	return nil, false
}

// ResolveFieldIdentifier walks p from root and returns the owner of its last
// segment. When a value along the way is absent (nil pointer, nil interface,
// nil slice, index out of range) the walk stops and the identifier names the
// deepest reached owner and the segment that could not be followed.
//
// A segment naming a property that does not exist on the reached type yields
// a *PathResolutionError. The empty path addresses root itself with an empty name.
func ResolveFieldIdentifier(root any, p Path) (FieldIdentifier, error) {
	owner, ok := structPointer(root)
	if !ok {
		return FieldIdentifier{}, ErrInvalidModel
	}
	if len(p) == 0 {
		return Field(root, ""), nil
	}

	for i, seg := range p {
		st := owner.Elem()
		info, ok := describe(st.Type()).field(seg.Name)
		if !ok {
			return FieldIdentifier{}, resolutionError(p, seg, st.Type())
		}
		if i == len(p)-1 {
			return Field(owner.Interface(), seg.String()), nil
		}

		v := st.Field(info.index)
		if seg.Indexed {
			coll, present := indirect(v)
			if !present {
				return Field(owner.Interface(), seg.String()), nil
			}
			if coll.Kind() != reflect.Slice && coll.Kind() != reflect.Array {
				return FieldIdentifier{}, resolutionError(p, seg, st.Type())
			}
			if seg.Index >= coll.Len() {
				return Field(owner.Interface(), seg.String()), nil
			}
			v = coll.Index(seg.Index)
		}

		next, present := indirect(v)
		if !present {
			return Field(owner.Interface(), seg.String()), nil
		}
		if next.Kind() != reflect.Struct {
			return FieldIdentifier{}, resolutionError(p, p[i+1], next.Type())
		}
		if !next.CanAddr() {
			// a struct held by value in an interface has no stable identity
			return Field(owner.Interface(), seg.String()), nil
		}
		owner = next.Addr()
	}
	panic("unreachable")
}

// indirect follows pointers and interfaces. It reports false when it meets a
// nil on the way or a nil slice.
func indirect(v reflect.Value) (reflect.Value, bool) {
	for {
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		case reflect.Slice:
			if v.IsNil() {
				return reflect.Value{}, false
			}
			return v, true
		case reflect.Invalid:
			return reflect.Value{}, false
		default:
			return v, true
		}
	}
}

func resolutionError(p Path, seg Segment, t reflect.Type) error {
	return &PathResolutionError{
		Path:    p.String(),
		Segment: seg.Name,
		Type:    fmt.Sprint(t),
	}
}
