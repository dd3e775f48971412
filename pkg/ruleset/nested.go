package ruleset

import (
	"context"

	"github.com/dmitrymomot/formvalidation/pkg/fieldpath"
	"github.com/dmitrymomot/formvalidation/pkg/validation"
)

// nestedRule applies a child rule set to a property. Child rules without a
// subset inherit the subset the nested rule was registered under.
type nestedRule[T, C any] struct {
	name   string
	subset string
	child  *RuleSet[C]
	each   func(model *T, visit func(i int, item *C) error) error
	single func(model *T) *C
}

// Nested validates the struct behind a pointer property with child.
// A nil pointer is skipped.
func Nested[T, C any](rs *RuleSet[T], name string, get func(*T) *C, child *RuleSet[C]) {
	rs.add(&nestedRule[T, C]{name: name, subset: rs.subset, child: child, single: get})
}

// Each validates every element of a slice property with child. Element
// failures carry an indexed path such as "Orders[2].Total".
func Each[T, E any](rs *RuleSet[T], name string, get func(*T) []E, child *RuleSet[E]) {
	rs.add(&nestedRule[T, E]{
		name:   name,
		subset: rs.subset,
		child:  child,
		each: func(model *T, visit func(int, *E) error) error {
			items := get(model)
			for i := range items {
				if err := visit(i, &items[i]); err != nil {
					return err
				}
			}
			return nil
		},
	})
}

// EachRef is Each for slices of pointers. Nil elements are skipped.
func EachRef[T, E any](rs *RuleSet[T], name string, get func(*T) []*E, child *RuleSet[E]) {
	rs.add(&nestedRule[T, E]{
		name:   name,
		subset: rs.subset,
		child:  child,
		each: func(model *T, visit func(int, *E) error) error {
			for i, item := range get(model) {
				if item == nil {
					continue
				}
				if err := visit(i, item); err != nil {
					return err
				}
			}
			return nil
		},
	})
}

func (n *nestedRule[T, C]) run(ctx context.Context, ec *evalContext, model *T, base fieldpath.Path, subset string) error {
	subset = effectiveSubset(n.subset, subset)
	path := base.Child(n.name)
	if n.single != nil {
		c := n.single(model)
		if c == nil {
			return nil
		}
		return n.child.run(ctx, ec, c, path, subset)
	}
	return n.each(model, func(i int, item *C) error {
		return n.child.run(ctx, ec, item, path.Index(i), subset)
	})
}

func (n *nestedRule[T, C]) rulesFor(rest, base fieldpath.Path, subset string) []validation.RuleInfo {
	if len(rest) < 2 || rest[0].Name != n.name || rest[0].Indexed != (n.each != nil) {
		return nil
	}
	path := base.Child(n.name)
	if rest[0].Indexed {
		path = path.Index(rest[0].Index)
	}
	return n.child.rulesFor(rest[1:], path, effectiveSubset(n.subset, subset))
}
