package analyze

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"

	"object-printer/primitive"
)

var descriptors = xsync.NewMapOf[reflect.Type, []FieldInfo]()

// Describe returns the readable members of a struct type in declaration
// order. Embedded structs are flattened: their exported fields are listed
// right where the embedding field is declared. Embedded final types (e.g.
// time.Time) stay members of their own.
// Non-struct types have no members.
func Describe(rtype reflect.Type) []FieldInfo {
	if rtype == nil || rtype.Kind() != reflect.Struct {
		return nil
	}

	fields, _ := descriptors.LoadOrCompute(rtype, func() []FieldInfo {
		return describe(rtype)
	})

	return fields
}

func describe(rtype reflect.Type) []FieldInfo {
	visible := lo.Filter(reflect.VisibleFields(rtype), func(f reflect.StructField, _ int) bool {
		if !f.IsExported() {
			return false
		}

		return !f.Anonymous || !isFlattened(f.Type)
	})

	return lo.Map(visible, func(f reflect.StructField, _ int) FieldInfo {
		return FieldInfo{
			ID:       MemberID{Owner: rtype, Name: f.Name},
			Name:     f.Name,
			Type:     f.Type,
			Index:    f.Index,
			Promoted: len(f.Index) > 1,
		}
	})
}

// isFlattened reports whether an embedded field of this type is replaced by
// its promoted fields.
func isFlattened(rtype reflect.Type) bool {
	if rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}

	return rtype.Kind() == reflect.Struct && !primitive.FromReflectType(rtype).IsFinal()
}

// Read returns the value of member f in the struct value v. ok is false when
// the promotion path crosses a nil embedded pointer or the value cannot be
// exposed through Interface.
func Read(v reflect.Value, f FieldInfo) (value reflect.Value, ok bool) {
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	fv, err := v.FieldByIndexErr(f.Index)
	if err != nil || !fv.CanInterface() {
		return reflect.Value{}, false
	}

	return fv, true
}
