// Package registry holds the override rules consumed by the serializer.
//
// A Registry is an immutable snapshot produced by Builder.Freeze. Type rules
// are keyed by the exact reflect.Type; member rules by analyze.MemberID.
// Lookups never fail and never mutate, so one Registry may serve any number
// of concurrent serializations.
package registry

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"object-printer/internal/analyze"
	"object-printer/primitive"
)

// DefaultCycleMarker is the format of the line printed for a revisited reference.
const DefaultCycleMarker = "<Cyclic reference %s>"

// Registry is a read-only set of printing rules.
type Registry struct {
	excludedTypes   map[reflect.Type]struct{}
	excludedMembers map[analyze.MemberID]struct{}
	typeRenderers   map[reflect.Type]Renderer
	typeCultures    map[reflect.Type]language.Tag
	memberRenderers map[analyze.MemberID]Renderer
	memberTrims     map[analyze.MemberID]int

	cycleMarker string
	logger      *zap.Logger
}

// Default returns a Registry without any overrides.
func Default() *Registry {
	return NewBuilder().Freeze()
}

func (r *Registry) IsTypeExcluded(rtype reflect.Type) bool {
	_, ok := r.excludedTypes[rtype]
	return ok
}

func (r *Registry) IsMemberExcluded(member analyze.MemberID) bool {
	_, ok := r.excludedMembers[member]
	return ok
}

func (r *Registry) MemberRenderer(member analyze.MemberID) (Renderer, bool) {
	rr, ok := r.memberRenderers[member]
	return rr, ok
}

func (r *Registry) TypeRenderer(rtype reflect.Type) (Renderer, bool) {
	rr, ok := r.typeRenderers[rtype]
	return rr, ok
}

// TypeCulture returns the culture registered for rtype. It only matters for
// locale-aware types, see primitive.IsLocaleAware.
func (r *Registry) TypeCulture(rtype reflect.Type) (language.Tag, bool) {
	tag, ok := r.typeCultures[rtype]
	return tag, ok
}

// MemberTrimLength returns the maximum length, in runes, of a string member.
func (r *Registry) MemberTrimLength(member analyze.MemberID) (int, bool) {
	n, ok := r.memberTrims[member]
	return n, ok
}

// IsFinalType reports whether values of rtype print by their natural form.
func (r *Registry) IsFinalType(rtype reflect.Type) bool {
	return primitive.FromReflectType(rtype).IsFinal()
}

// CycleMarker returns the line printed when a reference of typeName is
// met again.
func (r *Registry) CycleMarker(typeName string) string {
	return fmt.Sprintf(r.cycleMarker, typeName)
}

// Shadowed returns the members that carry a renderer or a trim length but
// are excluded themselves or through their owner type, sorted by name.
func (r *Registry) Shadowed() []analyze.MemberID {
	members := lo.Uniq(slices.Concat(lo.Keys(r.memberRenderers), lo.Keys(r.memberTrims)))

	shadowed := lo.Filter(members, func(m analyze.MemberID, _ int) bool {
		return r.IsMemberExcluded(m) || r.IsTypeExcluded(m.Owner)
	})

	slices.SortFunc(shadowed, func(a, b analyze.MemberID) int {
		return strings.Compare(a.String(), b.String())
	})

	return shadowed
}

func (r *Registry) Logger() *zap.Logger {
	return r.logger
}

// Builder collects rules. Every setter overwrites the previous rule for the
// same key.
type Builder struct {
	r Registry
}

func NewBuilder() *Builder {
	return &Builder{r: Registry{
		excludedTypes:   make(map[reflect.Type]struct{}),
		excludedMembers: make(map[analyze.MemberID]struct{}),
		typeRenderers:   make(map[reflect.Type]Renderer),
		typeCultures:    make(map[reflect.Type]language.Tag),
		memberRenderers: make(map[analyze.MemberID]Renderer),
		memberTrims:     make(map[analyze.MemberID]int),
		cycleMarker:     DefaultCycleMarker,
		logger:          zap.NewNop(),
	}}
}

func (b *Builder) ExcludeType(rtype reflect.Type) *Builder {
	b.r.excludedTypes[rtype] = struct{}{}
	return b
}

func (b *Builder) ExcludeMember(member analyze.MemberID) *Builder {
	b.r.excludedMembers[member] = struct{}{}
	return b
}

func (b *Builder) SetTypeRenderer(rtype reflect.Type, renderer Renderer) *Builder {
	b.r.typeRenderers[rtype] = renderer
	return b
}

func (b *Builder) SetTypeCulture(rtype reflect.Type, tag language.Tag) *Builder {
	b.r.typeCultures[rtype] = tag
	return b
}

func (b *Builder) SetMemberRenderer(member analyze.MemberID, renderer Renderer) *Builder {
	b.r.memberRenderers[member] = renderer
	return b
}

func (b *Builder) SetMemberTrimLength(member analyze.MemberID, n int) *Builder {
	b.r.memberTrims[member] = n
	return b
}

// SetCycleMarker sets the cycle marker format; it must hold a single %s verb.
func (b *Builder) SetCycleMarker(format string) *Builder {
	b.r.cycleMarker = format
	return b
}

func (b *Builder) SetLogger(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}

	b.r.logger = logger

	return b
}

// Freeze returns a snapshot of the rules collected so far. Later changes to
// the Builder do not affect it.
func (b *Builder) Freeze() *Registry {
	return &Registry{
		excludedTypes:   maps.Clone(b.r.excludedTypes),
		excludedMembers: maps.Clone(b.r.excludedMembers),
		typeRenderers:   maps.Clone(b.r.typeRenderers),
		typeCultures:    maps.Clone(b.r.typeCultures),
		memberRenderers: maps.Clone(b.r.memberRenderers),
		memberTrims:     maps.Clone(b.r.memberTrims),
		cycleMarker:     b.r.cycleMarker,
		logger:          b.r.logger,
	}
}
