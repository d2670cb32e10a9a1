package registry

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Renderer turns a value of one declared type into text. It can only be
// built from a typed function, so it is never invoked with a value it cannot
// handle.
type Renderer struct {
	in reflect.Type
	fn func(reflect.Value) string
}

// NewRenderer wraps fn. P may be an interface; such a renderer accepts every
// runtime type implementing it.
func NewRenderer[P any](fn func(P) string) (Renderer, error) {
	in := reflect.TypeFor[P]()
	if fn == nil {
		return Renderer{}, errors.Newf("nil renderer for %s", in)
	}

	return Renderer{
		in: in,
		fn: func(v reflect.Value) string {
			return fn(v.Interface().(P))
		},
	}, nil
}

// NewDynamicRenderer wraps an untyped fn for values of type in. It is used
// where the type is only known at runtime, e.g. rules loaded from a profile.
func NewDynamicRenderer(in reflect.Type, fn func(any) string) (Renderer, error) {
	if in == nil {
		return Renderer{}, errors.New("renderer without input type")
	}

	if fn == nil {
		return Renderer{}, errors.Newf("nil renderer for %s", in)
	}

	return Renderer{
		in: in,
		fn: func(v reflect.Value) string {
			return fn(v.Interface())
		},
	}, nil
}

// In returns the declared input type.
func (r Renderer) In() reflect.Type {
	return r.in
}

// Accepts reports whether values of rtype may be passed to Render.
func (r Renderer) Accepts(rtype reflect.Type) bool {
	if r.in == nil || rtype == nil {
		return false
	}

	if rtype == r.in {
		return true
	}

	return r.in.Kind() == reflect.Interface && rtype.Implements(r.in)
}

// Render invokes the wrapped function. v must be accepted by the renderer.
func (r Renderer) Render(v reflect.Value) string {
	return r.fn(v)
}
