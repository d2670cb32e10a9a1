// Package printing is the fluent entry point of object-printer.
//
// A Config collects printing rules for a root type T; Build validates them
// and returns a Printer that can be shared between goroutines.
//
//	printer, err := printing.For[Person]().
//		Excluding(printing.Type[uuid.UUID]()).
//		Printing(
//			printing.Type[float64]().Culture(language.German),
//			printing.Field(func(p *Person) *string { return &p.Name }).TrimmedToLength(5),
//		).
//		Build()
//
// Rules never fail where they are written. Problems are collected and
// returned by Build as one error marked with ErrConfiguration.
package printing

import (
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"object-printer/internal/analyze"
	"object-printer/internal/diagnostic"
	"object-printer/registry"
)

// ErrConfiguration marks every error returned by Build.
var ErrConfiguration = errors.New("invalid printing configuration")

// Target is something that can be excluded from the output: a type or a member.
type Target interface {
	exclude(s *settings)
}

// Rule changes how a type or a member is printed.
type Rule interface {
	apply(s *settings)
}

// settings is the non-generic state shared by a Config and its rules.
type settings struct {
	builder *registry.Builder
	diags   diagnostic.Diagnostics
}

func (s *settings) fail(code, target string, err error) {
	s.diags.AddError(code, err.Error(), target)
}

// Config collects printing rules for values of type T. The zero value is not
// usable, start with For.
type Config[T any] struct {
	s *settings
}

// For starts a configuration for printing values of type T.
func For[T any]() *Config[T] {
	return &Config[T]{s: &settings{builder: registry.NewBuilder()}}
}

// Excluding removes values of the given types, or the given members, from
// the output.
func (c *Config[T]) Excluding(targets ...Target) *Config[T] {
	for _, t := range targets {
		if t == nil {
			c.s.diags.AddError("nil_target", "nil exclusion target", "")
			continue
		}

		t.exclude(c.s)
	}

	return c
}

// Printing registers rendering rules. A later rule for the same type or
// member replaces an earlier one.
func (c *Config[T]) Printing(rules ...Rule) *Config[T] {
	for _, r := range rules {
		if r == nil {
			c.s.diags.AddError("nil_rule", "nil printing rule", "")
			continue
		}

		r.apply(c.s)
	}

	return c
}

// WithLogger sets the logger receiving debug events of the serializer.
func (c *Config[T]) WithLogger(logger *zap.Logger) *Config[T] {
	c.s.builder.SetLogger(logger)
	return c
}

// IsCycleMarker reports whether format holds exactly one verb and that verb
// is %s. Escaped percent signs (%%) are allowed.
func IsCycleMarker(format string) bool {
	verbs := strings.ReplaceAll(format, "%%", "")
	return strings.Count(verbs, "%") == 1 && strings.Contains(verbs, "%s")
}

// WithCycleMarker replaces the line printed for a revisited reference. The
// format must contain exactly one %s, which receives the type name.
func (c *Config[T]) WithCycleMarker(format string) *Config[T] {
	if !IsCycleMarker(format) {
		c.s.diags.AddError("invalid_cycle_marker",
			"cycle marker must contain exactly one %s verb", format)

		return c
	}

	c.s.builder.SetCycleMarker(format)

	return c
}

// Err returns the configuration problems collected so far, or nil.
func (c *Config[T]) Err() error {
	return c.s.diags.Err(ErrConfiguration)
}

// Diagnostics returns a copy of the collected problems. Member rules that
// can never apply because the member is excluded are reported as warnings.
func (c *Config[T]) Diagnostics() diagnostic.Diagnostics {
	var d diagnostic.Diagnostics
	d.Merge(c.s.diags)

	for _, m := range c.s.builder.Freeze().Shadowed() {
		d.AddWarning("shadowed_rule", "member is excluded, its printing rules never apply", m.String())
	}

	return d
}

// Build validates the collected rules and returns a Printer using a snapshot
// of them. The Config may be extended and built again afterwards.
func (c *Config[T]) Build() (*Printer[T], error) {
	if err := c.Err(); err != nil {
		return nil, err
	}

	return &Printer[T]{reg: c.s.builder.Freeze()}, nil
}

// MustBuild is like Build but panics on configuration errors.
func (c *Config[T]) MustBuild() *Printer[T] {
	p, err := c.Build()
	if err != nil {
		panic(err)
	}

	return p
}

// PrintToString builds the configuration and prints obj.
func (c *Config[T]) PrintToString(obj T) (string, error) {
	p, err := c.Build()
	if err != nil {
		return "", err
	}

	return p.PrintToString(obj), nil
}

func memberTarget(f analyze.FieldInfo) string {
	return f.ID.String()
}

func typeTarget(rtype reflect.Type) string {
	if rtype == nil {
		return "<nil>"
	}

	return rtype.String()
}
