package primitive_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"object-printer/primitive"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(decimal.Zero)))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(&Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindPrimitiveEnum
	// KindPrimitiveEnum
	// KindDuration
	// KindTime
	// KindDecimal
	// KindEnum(0)
	// KindEnum(0)
}

func TestKindEnum_Predicates(t *testing.T) {
	t.Parallel()

	assert.True(t, primitive.KindInt8.IsNumber())
	assert.True(t, primitive.KindInt8.IsInteger())
	assert.False(t, primitive.KindInt8.IsFloat())

	assert.True(t, primitive.KindFloat64.IsNumber())
	assert.True(t, primitive.KindFloat64.IsFloat())

	assert.True(t, primitive.KindDecimal.IsNumber())
	assert.False(t, primitive.KindDecimal.IsInteger())

	assert.False(t, primitive.KindString.IsNumber())
	assert.False(t, primitive.KindTime.IsNumber())

	assert.True(t, primitive.KindTime.IsFinal())
	assert.False(t, primitive.KindEnum(0).IsFinal())
}

func TestTypes(t *testing.T) {
	t.Parallel()

	types := primitive.Types()
	assert.Contains(t, types, reflect.TypeFor[float64]())
	assert.Contains(t, types, reflect.TypeFor[time.Time]())
	assert.Contains(t, types, reflect.TypeFor[decimal.Decimal]())

	for _, rtype := range types {
		assert.True(t, primitive.FromReflectType(rtype).IsFinal(), rtype.String())
	}
}
