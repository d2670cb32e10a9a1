package analyze

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Select resolves the field whose address sel returns on a zero O.
//
//	f, err := Select(func(p *Person) *string { return &p.Name })
//
// The returned pointer must address an exported field of O (promoted fields
// included) of exactly type P; anything else is an error.
func Select[O, P any](sel func(*O) *P) (FieldInfo, error) {
	owner := reflect.TypeFor[O]()
	if owner.Kind() != reflect.Struct {
		return FieldInfo{}, errors.Newf("member owner %s is not a struct", owner)
	}

	if sel == nil {
		return FieldInfo{}, errors.Newf("nil member selector for %s", TypeName(owner))
	}

	probe := newProbe(owner)

	target, err := callSelector(sel, probe.Interface().(*O))
	if err != nil {
		return FieldInfo{}, errors.Wrapf(err, "member selector for %s", TypeName(owner))
	}

	if target == nil {
		return FieldInfo{}, errors.Newf("member selector for %s returned nil", TypeName(owner))
	}

	addr := reflect.ValueOf(target).Pointer()
	want := reflect.TypeFor[P]()

	for _, f := range Describe(owner) {
		if f.Type != want {
			continue
		}

		fv, err := probe.Elem().FieldByIndexErr(f.Index)
		if err != nil {
			continue
		}

		if fv.UnsafeAddr() == addr {
			return f, nil
		}
	}

	return FieldInfo{}, errors.Newf("member selector for %s does not address an exported %s field", TypeName(owner), want)
}

// SelectByName resolves an exported field of owner by its Go name.
func SelectByName(owner reflect.Type, name string) (FieldInfo, error) {
	if owner == nil || owner.Kind() != reflect.Struct {
		return FieldInfo{}, errors.Newf("member owner %v is not a struct", owner)
	}

	for _, f := range Describe(owner) {
		if f.Name == name {
			return f, nil
		}
	}

	return FieldInfo{}, errors.Newf("type %s has no exported field %q", TypeName(owner), name)
}

func callSelector[O, P any](sel func(*O) *P, probe *O) (target *P, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("selector panicked: %v", r)
		}
	}()

	return sel(probe), nil
}

// newProbe allocates a zero value of owner with every settable embedded
// struct pointer allocated too, so selectors can reach promoted fields.
func newProbe(owner reflect.Type) reflect.Value {
	probe := reflect.New(owner)
	fillEmbedded(probe.Elem(), map[reflect.Type]bool{owner: true})

	return probe
}

func fillEmbedded(v reflect.Value, seen map[reflect.Type]bool) {
	for i := range v.NumField() {
		sf := v.Type().Field(i)
		if !sf.Anonymous {
			continue
		}

		fv := v.Field(i)

		switch {
		case sf.Type.Kind() == reflect.Struct:
			fillEmbedded(fv, seen)

		case sf.Type.Kind() == reflect.Pointer && sf.Type.Elem().Kind() == reflect.Struct:
			elem := sf.Type.Elem()
			if seen[elem] || !fv.CanSet() {
				continue
			}

			seen[elem] = true
			fv.Set(reflect.New(elem))
			fillEmbedded(fv.Elem(), seen)
		}
	}
}
