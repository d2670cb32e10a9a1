package printing

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/language"

	"object-printer/internal/analyze"
	"object-printer/primitive"
	"object-printer/registry"
)

var stringType = reflect.TypeFor[string]()

// TypeSelector selects every value whose runtime type is exactly P.
type TypeSelector[P any] struct{}

// Type selects the type P.
func Type[P any]() TypeSelector[P] {
	return TypeSelector[P]{}
}

func (TypeSelector[P]) exclude(s *settings) {
	s.builder.ExcludeType(reflect.TypeFor[P]())
}

// Using prints values of type P with fn.
func (TypeSelector[P]) Using(fn func(P) string) Rule {
	return ruleFunc(func(s *settings) {
		rtype := reflect.TypeFor[P]()
		if rtype.Kind() == reflect.Interface {
			s.diags.AddError("interface_type_renderer",
				"type renderers match exact runtime types, register one per implementation", typeTarget(rtype))

			return
		}

		r, err := registry.NewRenderer(fn)
		if err != nil {
			s.fail("invalid_renderer", typeTarget(rtype), err)
			return
		}

		s.builder.SetTypeRenderer(rtype, r)
	})
}

// Culture prints values of type P with the number conventions of tag.
func (TypeSelector[P]) Culture(tag language.Tag) Rule {
	return cultureRule(reflect.TypeFor[P](), tag)
}

// DynamicTypeSelector selects a type only known at runtime.
type DynamicTypeSelector struct {
	rtype reflect.Type
}

// TypeOf selects rtype.
func TypeOf(rtype reflect.Type) DynamicTypeSelector {
	return DynamicTypeSelector{rtype: rtype}
}

func (d DynamicTypeSelector) exclude(s *settings) {
	if d.rtype == nil {
		s.diags.AddError("nil_type", "cannot exclude a nil type", "")
		return
	}

	s.builder.ExcludeType(d.rtype)
}

// Using prints values of the selected type with fn; fn receives the value
// boxed in an interface.
func (d DynamicTypeSelector) Using(fn func(any) string) Rule {
	return ruleFunc(func(s *settings) {
		if d.rtype != nil && d.rtype.Kind() == reflect.Interface {
			s.diags.AddError("interface_type_renderer",
				"type renderers match exact runtime types, register one per implementation", typeTarget(d.rtype))

			return
		}

		r, err := registry.NewDynamicRenderer(d.rtype, fn)
		if err != nil {
			s.fail("invalid_renderer", typeTarget(d.rtype), err)
			return
		}

		s.builder.SetTypeRenderer(d.rtype, r)
	})
}

// Culture prints values of the selected type with the number conventions of tag.
func (d DynamicTypeSelector) Culture(tag language.Tag) Rule {
	return cultureRule(d.rtype, tag)
}

func cultureRule(rtype reflect.Type, tag language.Tag) Rule {
	return ruleFunc(func(s *settings) {
		if !primitive.IsLocaleAware(rtype) {
			s.diags.AddError("not_locale_aware",
				"culture only applies to numbers, decimals, times and LocaleFormatter implementations", typeTarget(rtype))

			return
		}

		s.builder.SetTypeCulture(rtype, tag)
	})
}

// MemberSelector selects one field of O declared with type P.
type MemberSelector[O, P any] struct {
	field analyze.FieldInfo
	err   error
}

// Field selects the field of O whose address sel returns:
//
//	printing.Field(func(p *Person) *int { return &p.Age })
//
// Promoted fields of embedded structs can be selected as well.
func Field[O, P any](sel func(*O) *P) MemberSelector[O, P] {
	f, err := analyze.Select(sel)
	return MemberSelector[O, P]{field: f, err: err}
}

func (m MemberSelector[O, P]) exclude(s *settings) {
	if m.err != nil {
		s.fail("invalid_selector", typeTarget(reflect.TypeFor[O]()), m.err)
		return
	}

	s.builder.ExcludeMember(m.field.ID)
}

// Using prints the selected member with fn.
func (m MemberSelector[O, P]) Using(fn func(P) string) Rule {
	return ruleFunc(func(s *settings) {
		if m.err != nil {
			s.fail("invalid_selector", typeTarget(reflect.TypeFor[O]()), m.err)
			return
		}

		r, err := registry.NewRenderer(fn)
		if err != nil {
			s.fail("invalid_renderer", memberTarget(m.field), err)
			return
		}

		s.builder.SetMemberRenderer(m.field.ID, r)
	})
}

// TrimmedToLength cuts the selected string member to at most n characters.
func (m MemberSelector[O, P]) TrimmedToLength(n int) Rule {
	return ruleFunc(func(s *settings) {
		if m.err != nil {
			s.fail("invalid_selector", typeTarget(reflect.TypeFor[O]()), m.err)
			return
		}

		trimRule(m.field, n)(s)
	})
}

// NamedMemberSelector selects a field by its Go name.
type NamedMemberSelector struct {
	field analyze.FieldInfo
	err   error
}

// MemberOf selects the exported field name of owner, promoted fields included.
func MemberOf(owner reflect.Type, name string) NamedMemberSelector {
	f, err := analyze.SelectByName(owner, name)
	return NamedMemberSelector{field: f, err: err}
}

// FieldNamed selects the exported field name of O.
func FieldNamed[O any](name string) NamedMemberSelector {
	return MemberOf(reflect.TypeFor[O](), name)
}

func (m NamedMemberSelector) exclude(s *settings) {
	if m.err != nil {
		s.fail("invalid_selector", "", m.err)
		return
	}

	s.builder.ExcludeMember(m.field.ID)
}

// Using prints the selected member with fn; fn receives the value boxed in
// an interface.
func (m NamedMemberSelector) Using(fn func(any) string) Rule {
	return ruleFunc(func(s *settings) {
		if m.err != nil {
			s.fail("invalid_selector", "", m.err)
			return
		}

		r, err := registry.NewDynamicRenderer(m.field.Type, fn)
		if err != nil {
			s.fail("invalid_renderer", memberTarget(m.field), err)
			return
		}

		s.builder.SetMemberRenderer(m.field.ID, r)
	})
}

// TrimmedToLength cuts the selected string member to at most n characters.
func (m NamedMemberSelector) TrimmedToLength(n int) Rule {
	return ruleFunc(func(s *settings) {
		if m.err != nil {
			s.fail("invalid_selector", "", m.err)
			return
		}

		trimRule(m.field, n)(s)
	})
}

func trimRule(f analyze.FieldInfo, n int) ruleFunc {
	return func(s *settings) {
		if f.Type != stringType {
			s.fail("trim_not_string", memberTarget(f),
				errors.Newf("trim length needs a string member, got %s", f.Type))

			return
		}

		if n < 0 {
			s.fail("negative_trim", memberTarget(f), errors.Newf("trim length %d is negative", n))
			return
		}

		s.builder.SetMemberTrimLength(f.ID, n)
	}
}

type ruleFunc func(s *settings)

func (f ruleFunc) apply(s *settings) {
	f(s)
}
