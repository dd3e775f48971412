// Package fieldpath maps between the two ways a form value is addressed.
//
// Forms identify a value by the object that owns it and a property name
// (FieldIdentifier). Rule engines report failures by a root-relative property
// path such as "Orders[2].Total" (Path). ResolvePath turns the former into the
// latter by walking the model graph; ResolveFieldIdentifier walks a path back
// to its owner.
//
//	p, ok := fieldpath.ResolvePath(person, person.Address, "Line1")
//	// p.String() == "Address.Line1"
//
//	id, err := fieldpath.ResolveFieldIdentifier(person, p)
//	// id == fieldpath.Field(person.Address, "Line1")
//
// Owners are pointers. A struct embedded by value is addressed through its
// address within the parent, so &person.Home identifies a value-typed Home
// field.
//
// Per-type field tables are built once and cached.
package fieldpath
