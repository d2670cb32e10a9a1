package printing

import (
	"object-printer/registry"
	"object-printer/serializer"
)

// Printer prints values of type T with a fixed set of rules. It is safe for
// concurrent use.
type Printer[T any] struct {
	reg *registry.Registry
}

// PrintToString renders obj as indented text.
func (p *Printer[T]) PrintToString(obj T) string {
	return serializer.Serialize(obj, p.reg)
}

// Registry exposes the frozen rules, e.g. to call serializer.Serialize for a
// value of another type with the same configuration.
func (p *Printer[T]) Registry() *registry.Registry {
	return p.reg
}

// Sprint prints v without any rules.
func Sprint(v any) string {
	return serializer.Serialize(v, nil)
}
