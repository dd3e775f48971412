package playground

import (
	"reflect"
	"strings"

	"github.com/dmitrymomot/formvalidation/pkg/fieldpath"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

// tags that shape how rules apply rather than being rules themselves
var modifierTags = map[string]struct{}{
	"omitempty": {},
	"omitnil":   {},
	"dive":      {},
	"keys":      {},
	"endkeys":   {},
}

type fieldTags struct {
	rules    string
	subset   string
	severity validation.Severity
}

// fieldTags reads the tags of the field addressed by path. The subset is
// inherited from the nearest ancestor field that declares one.
func (v *Validator[T]) fieldTags(path fieldpath.Path) fieldTags {
	var ft fieldTags
	for i := range path {
		sf, ok := fieldpath.LookupField(v.modelType, path[:i+1])
		if !ok {
			return ft
		}
		if s := sf.Tag.Get(SubsetTag); s != "" {
			ft.subset = s
		}
		if i == len(path)-1 {
			ft.rules = sf.Tag.Get(validateTag)
			if ft.rules == "" {
				ft.rules = v.ruleMaps[v.ownerType(path)][sf.Name]
			}
			ft.severity = parseSeverity(sf.Tag.Get(SeverityTag))
		}
	}
	return ft
}

// ownerType returns the struct type declaring the last segment of path.
func (v *Validator[T]) ownerType(path fieldpath.Path) reflect.Type {
	if len(path) <= 1 {
		return deref(v.modelType)
	}
	parent := path.Parent()
	sf, ok := fieldpath.LookupField(v.modelType, parent)
	if !ok {
		return nil
	}
	t := deref(sf.Type)
	if last, _ := parent.Last(); last.Indexed && (t.Kind() == reflect.Slice || t.Kind() == reflect.Array) {
		t = deref(t.Elem())
	}
	return t
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func parseSeverity(s string) validation.Severity {
	switch s {
	case "warning":
		return validation.SeverityWarning
	case "info":
		return validation.SeverityInfo
	default:
		return validation.SeverityError
	}
}

// Descriptor describes the tag rules declared on each field.
func (v *Validator[T]) Descriptor() validation.Descriptor {
	return descriptor[T]{v: v}
}

type descriptor[T any] struct {
	v *Validator[T]
}

func (d descriptor[T]) RulesForField(path string) []validation.RuleInfo {
	p, err := fieldpath.Parse(path)
	if err != nil || len(p) == 0 {
		return nil
	}
	tags := d.v.fieldTags(p)
	if tags.rules == "" || tags.rules == "-" {
		return nil
	}
	var out []validation.RuleInfo
	for _, part := range strings.Split(tags.rules, ",") {
		name, _, _ := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, skip := modifierTags[name]; skip {
			continue
		}
		out = append(out, validation.RuleInfo{Path: p.Pattern(), Name: name, Subset: tags.subset})
	}
	return out
}
