package primitive

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocaleFormatter is implemented by values that know how to print
// themselves for a given culture.
type LocaleFormatter interface {
	FormatLocale(tag language.Tag) string
}

var localeFormatterType = reflect.TypeFor[LocaleFormatter]()

// Natural returns the natural textual form of a final value.
func Natural(v reflect.Value) string {
	return fmt.Sprint(v.Interface())
}

// IsLocaleAware reports whether values of rtype can be formatted for a
// culture: numbers (named or not), decimals, time.Time and LocaleFormatter
// implementations.
func IsLocaleAware(rtype reflect.Type) bool {
	if rtype == nil {
		return false
	}

	if rtype.Implements(localeFormatterType) {
		return true
	}

	kind := FromReflectType(rtype)
	if kind != KindPrimitiveEnum {
		return kind.IsNumber() || kind == KindTime
	}

	switch rtype.Kind() {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
}

// FormatLocale renders v using the conventions of tag. No explicit format is
// applied: integers print all digits without grouping, floats print the
// shortest representation that round-trips and times print the short date
// of the culture followed by the clock time.
func FormatLocale(v reflect.Value, tag language.Tag) string {
	if v.Type().Implements(localeFormatterType) {
		return v.Interface().(LocaleFormatter).FormatLocale(tag)
	}

	switch x := v.Interface().(type) {
	case decimal.Decimal:
		return localize(x.String(), tag)
	case time.Time:
		return formatTime(x, tag)
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return localize(strconv.FormatInt(v.Int(), 10), tag)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return localize(strconv.FormatUint(v.Uint(), 10), tag)
	case reflect.Float32:
		return localize(formatFloat(v.Float(), 32), tag)
	case reflect.Float64:
		return localize(formatFloat(v.Float(), 64), tag)
	default:
		return Natural(v)
	}
}

// formatFloat prints plain decimal notation for moderate magnitudes and
// switches to an exponent outside of [1e-5, 1e21).
func formatFloat(f float64, bitSize int) string {
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-5 && abs < 1e21) || math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	return strconv.FormatFloat(f, 'e', -1, bitSize)
}

// localize rewrites a plain number such as "-12.5" or "1e+22" with the
// digits, minus sign and decimal separator of tag.
func localize(s string, tag language.Tag) string {
	sym := Symbols(tag)

	var b strings.Builder

	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteString(sym.Digits[r-'0'])
		case r == '.':
			b.WriteString(sym.Decimal)
		case r == '-' && i == 0:
			b.WriteString(sym.Minus)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// NumberSymbols are the characters a culture writes numbers with.
type NumberSymbols struct {
	Digits  [10]string
	Decimal string
	Minus   string
}

var symbols = xsync.NewMapOf[language.Tag, NumberSymbols]()

// Symbols returns the number symbols used by tag.
func Symbols(tag language.Tag) NumberSymbols {
	sym, _ := symbols.LoadOrCompute(tag, func() NumberSymbols {
		return numberSymbols(tag)
	})

	return sym
}

// DecimalSeparator returns the decimal separator used by tag.
func DecimalSeparator(tag language.Tag) string {
	return Symbols(tag).Decimal
}

func numberSymbols(tag language.Tag) NumberSymbols {
	p := message.NewPrinter(tag)

	var sym NumberSymbols
	for d := range sym.Digits {
		sym.Digits[d] = p.Sprintf("%d", d)
	}

	sym.Minus = strings.TrimSuffix(p.Sprintf("%d", -1), sym.Digits[1])

	// "1.5" comes back as "1,5" for German or "١٫٥" for Arabic
	sym.Decimal = strings.TrimSuffix(strings.TrimPrefix(p.Sprintf("%.1f", 1.5), sym.Digits[1]), sym.Digits[5])
	if sym.Decimal == "" {
		sym.Decimal = "."
	}

	return sym
}
