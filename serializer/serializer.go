// Package serializer prints arbitrary Go values as indented text.
//
// The output is meant for humans: one value per line, containers and
// struct members indented by one tab per nesting level. Every value goes
// through the same resolution order, the first matching step wins:
//
//  1. nil values print "null"
//  2. excluded types or members print an empty line
//  3. member renderer of the originating member
//  4. type renderer of the runtime type
//  5. strings, truncated to the member trim length
//  6. locale-aware values with a culture registered for their type
//  7. final types by their natural textual form
//  8. revisited references print a cycle marker
//  9. maps, one "Key = "/"Value = " pair per entry, sorted by key
//  10. slices and arrays, one "[i] = " line per element
//  11. structs, one "Name = " line per exported field
//
// Pointers resolve their element at the same position, so rules registered
// for T also apply to *T. A pointer takes part in step 8 only when its
// element reaches steps 9 to 11.
package serializer

import (
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"object-printer/internal/analyze"
	"object-printer/primitive"
	"object-printer/registry"
)

const (
	indentUnit = "\t"
	nullText   = "null"
)

var stringType = reflect.TypeFor[string]()

// Serialize renders root with the rules in reg. A nil reg means no overrides.
// It never panics on any input shape; reference cycles are cut with a
// marker line.
func Serialize(root any, reg *registry.Registry) string {
	if reg == nil {
		reg = registry.Default()
	}

	s := &state{
		reg:     reg,
		log:     reg.Logger(),
		visited: make(map[identity]struct{}),
	}

	s.render(reflect.ValueOf(root), 0, analyze.MemberID{})

	return s.buf.String()
}

// identity is the reference identity of a pointer, map or slice. The type is
// part of it because a struct and its first field share an address.
type identity struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// state is owned by a single Serialize call.
type state struct {
	reg     *registry.Registry
	log     *zap.Logger
	buf     strings.Builder
	visited map[identity]struct{}
}

func (s *state) render(v reflect.Value, level int, member analyze.MemberID) {
	v = unwrap(v)

	if text, ok := s.resolve(v, member); ok {
		s.line(text)
		return
	}

	s.descend(v, level, member)
}

// resolve applies the steps that print a value on a single line without
// looking inside it. ok is false when v has to be walked.
func (s *state) resolve(v reflect.Value, member analyze.MemberID) (text string, ok bool) {
	if isNil(v) {
		return nullText, true
	}

	rtype := v.Type()

	if s.reg.IsTypeExcluded(rtype) || (!member.IsZero() && s.reg.IsMemberExcluded(member)) {
		return "", true
	}

	if !member.IsZero() {
		if r, ok := s.reg.MemberRenderer(member); ok && r.Accepts(rtype) {
			return r.Render(v), true
		}
	}

	if r, ok := s.reg.TypeRenderer(rtype); ok && r.Accepts(rtype) {
		return r.Render(v), true
	}

	if rtype == stringType {
		return s.trim(v.String(), member), true
	}

	if tag, ok := s.reg.TypeCulture(rtype); ok && primitive.IsLocaleAware(rtype) {
		return primitive.FormatLocale(v, tag), true
	}

	if s.reg.IsFinalType(rtype) {
		return primitive.Natural(v), true
	}

	return "", false
}

// descend walks a value that resolve left unmatched.
func (s *state) descend(v reflect.Value, level int, member analyze.MemberID) {
	rtype := v.Type()

	switch rtype.Kind() {
	case reflect.Pointer:
		s.renderPointer(v, level, member)
	case reflect.Map:
		if !s.cycle(v, level) {
			s.renderMap(v, level)
		}
	case reflect.Slice:
		if !s.cycle(v, level) {
			s.renderSequence(v, level)
		}
	case reflect.Array:
		s.renderSequence(v, level)
	case reflect.Struct:
		s.renderStruct(v, level)
	default:
		// chan, func, unsafe.Pointer: nothing to descend into
		s.line(analyze.TypeName(rtype))
	}
}

// renderPointer prints the pointed-to value at the same position. The
// pointer only counts as a reference when its target is walked, so shared
// pointers to final, excluded or rendered values print normally.
func (s *state) renderPointer(v reflect.Value, level int, member analyze.MemberID) {
	elem := unwrap(v.Elem())

	if text, ok := s.resolve(elem, member); ok {
		s.line(text)
		return
	}

	switch elem.Kind() {
	case reflect.Struct, reflect.Array, reflect.Map, reflect.Slice:
		if s.cycle(v, level) {
			return
		}
	}

	s.descend(elem, level, member)
}

// cycle prints the cycle marker and returns true when v was met before.
func (s *state) cycle(v reflect.Value, level int) bool {
	if !s.revisited(v) {
		return false
	}

	name := analyze.TypeName(v.Type())
	s.log.Debug("cyclic reference", zap.String("type", name), zap.Int("level", level))
	s.line(s.reg.CycleMarker(name))

	return true
}

func (s *state) renderMap(v reflect.Value, level int) {
	s.line(analyze.TypeName(v.Type()))

	for _, e := range sortedEntries(v) {
		s.indent(level + 1)
		s.buf.WriteString("Key = ")
		s.render(e.key, level+1, analyze.MemberID{})

		s.indent(level + 1)
		s.buf.WriteString("Value = ")
		s.render(e.value, level+1, analyze.MemberID{})
	}
}

func (s *state) renderSequence(v reflect.Value, level int) {
	s.line(analyze.TypeName(v.Type()))

	for i := range v.Len() {
		s.indent(level + 1)
		s.buf.WriteByte('[')
		s.buf.WriteString(strconv.Itoa(i))
		s.buf.WriteString("] = ")
		s.render(v.Index(i), level+1, analyze.MemberID{})
	}
}

func (s *state) renderStruct(v reflect.Value, level int) {
	s.line(analyze.TypeName(v.Type()))

	for _, f := range analyze.Describe(v.Type()) {
		if s.isDeclaredExcluded(f.Type) || s.reg.IsMemberExcluded(f.ID) {
			continue
		}

		s.indent(level + 1)
		s.buf.WriteString(f.Name)
		s.buf.WriteString(" = ")

		fv, ok := analyze.Read(v, f)
		if !ok {
			s.log.Debug("member is not readable", zap.Stringer("member", f.ID))
			s.line(nullText)

			continue
		}

		s.render(fv, level+1, f.ID)
	}
}

// isDeclaredExcluded reports whether a declared type, or what it points
// to, is excluded.
func (s *state) isDeclaredExcluded(rtype reflect.Type) bool {
	for {
		if s.reg.IsTypeExcluded(rtype) {
			return true
		}

		if rtype.Kind() != reflect.Pointer {
			return false
		}

		rtype = rtype.Elem()
	}
}

// revisited records reference identities and reports whether v was met
// before during this call. Value types are never tracked.
func (s *state) revisited(v reflect.Value) bool {
	var id identity

	switch v.Kind() {
	case reflect.Pointer:
		// every zero-sized allocation may share one address
		if v.Type().Elem().Size() == 0 {
			return false
		}

		id = identity{ptr: v.Pointer(), typ: v.Type()}
	case reflect.Map:
		id = identity{ptr: v.Pointer(), typ: v.Type()}
	case reflect.Slice:
		if v.Len() == 0 || v.Type().Elem().Size() == 0 {
			return false
		}

		id = identity{ptr: v.Pointer(), typ: v.Type(), len: v.Len()}
	default:
		return false
	}

	if _, ok := s.visited[id]; ok {
		return true
	}

	s.visited[id] = struct{}{}

	return false
}

func (s *state) trim(text string, member analyze.MemberID) string {
	if member.IsZero() {
		return text
	}

	n, ok := s.reg.MemberTrimLength(member)
	if !ok {
		return text
	}

	return truncate(text, n)
}

func (s *state) line(text string) {
	s.buf.WriteString(text)
	s.buf.WriteByte('\n')
}

func (s *state) indent(level int) {
	s.buf.WriteString(strings.Repeat(indentUnit, level))
}

// unwrap replaces interface values by their dynamic value.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	return v
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
