package primitive

import (
	"reflect"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (non-final) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindTime
	KindDuration
	KindDecimal
	KindPrimitiveEnum // named type over any boolean, number or string

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr,
		KindFloat32, KindFloat64, KindDecimal:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

// IsFinal reports whether values of this kind are printed by their natural
// textual form and never walked structurally.
func (k KindEnum) IsFinal() bool {
	return k != 0
}

var exact = map[reflect.Type]KindEnum{
	reflect.TypeFor[int]():             KindInt,
	reflect.TypeFor[int8]():            KindInt8,
	reflect.TypeFor[int16]():           KindInt16,
	reflect.TypeFor[int32]():           KindInt32,
	reflect.TypeFor[int64]():           KindInt64,
	reflect.TypeFor[uint]():            KindUint,
	reflect.TypeFor[uint8]():           KindUint8,
	reflect.TypeFor[uint16]():          KindUint16,
	reflect.TypeFor[uint32]():          KindUint32,
	reflect.TypeFor[uint64]():          KindUint64,
	reflect.TypeFor[uintptr]():         KindUintptr,
	reflect.TypeFor[float32]():         KindFloat32,
	reflect.TypeFor[float64]():         KindFloat64,
	reflect.TypeFor[complex64]():       KindComplex64,
	reflect.TypeFor[complex128]():      KindComplex128,
	reflect.TypeFor[bool]():            KindBool,
	reflect.TypeFor[string]():          KindString,
	reflect.TypeFor[time.Time]():       KindTime,
	reflect.TypeFor[time.Duration]():   KindDuration,
	reflect.TypeFor[decimal.Decimal](): KindDecimal,
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// check if true final type
	if kind, ok := exact[rtype]; ok {
		return kind
	}

	// check if it's a primitive enum type
	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindPrimitiveEnum
	}
}

// Types returns the built-in final types. Named primitive enums are final
// too but cannot be listed.
func Types() []reflect.Type {
	res := make([]reflect.Type, 0, len(exact))
	for t := range exact {
		res = append(res, t)
	}

	return res
}
