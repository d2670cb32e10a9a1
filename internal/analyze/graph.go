package analyze

import (
	"reflect"
	"sort"

	"object-printer/primitive"
)

// TypeGraph holds the named types reachable from a set of root types,
// so that textual type references (e.g. in profiles) can be resolved.
type TypeGraph struct {
	// Types maps every accepted spelling of a type to the type itself.
	Types map[string]reflect.Type
	// ambiguous holds short names shared by more than one type.
	ambiguous map[string]struct{}
	visited   map[reflect.Type]struct{}
}

// NewTypeGraph creates a TypeGraph seeded with the built-in final types and
// everything reachable from roots.
func NewTypeGraph(roots ...reflect.Type) *TypeGraph {
	g := &TypeGraph{
		Types:     make(map[string]reflect.Type),
		ambiguous: make(map[string]struct{}),
		visited:   make(map[reflect.Type]struct{}),
	}

	for _, t := range primitive.Types() {
		g.Add(t)
	}

	for _, root := range roots {
		g.Add(root)
	}

	return g
}

// Add registers rtype and every type reachable through its pointers,
// elements, keys and fields.
func (g *TypeGraph) Add(rtype reflect.Type) {
	if rtype == nil {
		return
	}

	if _, ok := g.visited[rtype]; ok {
		return
	}

	g.visited[rtype] = struct{}{}
	g.register(rtype)

	switch rtype.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		g.Add(rtype.Elem())

	case reflect.Map:
		g.Add(rtype.Key())
		g.Add(rtype.Elem())

	case reflect.Struct:
		for i := range rtype.NumField() {
			if f := rtype.Field(i); f.IsExported() || f.Anonymous {
				g.Add(f.Type)
			}
		}

	default:
		// Terminal types - nothing to recurse into
	}
}

// register stores the qualified spelling ("uuid.UUID", "[]int") and, for
// named types, the bare name unless another type already claimed it.
func (g *TypeGraph) register(rtype reflect.Type) {
	g.Types[rtype.String()] = rtype

	if id := IDOf(rtype); id.PkgPath != "" {
		g.Types[id.String()] = rtype
	}

	name := rtype.Name()
	if name == "" || name == rtype.String() {
		return
	}

	if _, ok := g.ambiguous[name]; ok {
		return
	}

	if prev, ok := g.Types[name]; ok && prev != rtype {
		delete(g.Types, name)
		g.ambiguous[name] = struct{}{}

		return
	}

	g.Types[name] = rtype
}

// Lookup resolves a type by any of its registered spellings.
func (g *TypeGraph) Lookup(name string) (reflect.Type, bool) {
	t, ok := g.Types[name]
	return t, ok
}

// IsAmbiguous returns true if a bare name matched several types.
func (g *TypeGraph) IsAmbiguous(name string) bool {
	_, ok := g.ambiguous[name]
	return ok
}

// Names returns all registered spellings, sorted.
func (g *TypeGraph) Names() []string {
	names := make([]string, 0, len(g.Types))
	for name := range g.Types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
