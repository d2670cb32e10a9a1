package analyze

import (
	"reflect"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "object-printer/printing"
	Name    string // e.g., "Person"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// IDOf returns the TypeID of a named type; unnamed types get an empty ID.
func IDOf(rtype reflect.Type) TypeID {
	if rtype == nil {
		return TypeID{}
	}

	return TypeID{PkgPath: rtype.PkgPath(), Name: rtype.Name()}
}

// TypeName returns the display name of a type: pointers are stripped and
// unnamed types fall back to their literal form, e.g. "[]int".
func TypeName(rtype reflect.Type) string {
	if rtype == nil {
		return "<nil>"
	}

	for rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}

	if name := rtype.Name(); name != "" {
		return name
	}

	return rtype.String()
}

// MemberID identifies a field of a specific owner struct type.
// The zero MemberID means "no member".
type MemberID struct {
	Owner reflect.Type
	Name  string
}

// IsZero returns true if the MemberID does not point to any member.
func (m MemberID) IsZero() bool {
	return m.Owner == nil
}

// String returns "Owner.Name".
func (m MemberID) String() string {
	if m.IsZero() {
		return ""
	}

	return TypeName(m.Owner) + "." + m.Name
}

// FieldInfo describes an exported struct field, promoted ones included.
type FieldInfo struct {
	ID       MemberID     // Identity used for member rules
	Name     string       // Go field name
	Type     reflect.Type // Declared field type
	Index    []int        // Index path for reflect.Value.FieldByIndex
	Promoted bool         // Whether the field comes from an embedded struct
}
