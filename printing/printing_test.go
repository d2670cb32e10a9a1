package printing_test

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/goodsign/monday"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"object-printer/printing"
	"object-printer/serializer"
)

type Person struct {
	ID     uuid.UUID
	Name   string
	Height float64
	Age    int
}

type Node struct {
	Name  string
	Other *Node
}

type Base struct {
	ID int
}

type Derived struct {
	*Base
	Name string
}

func name(p *Person) *string { return &p.Name }

func age(p *Person) *int { return &p.Age }

func TestAcceptance(t *testing.T) {
	t.Parallel()

	person := Person{ID: uuid.New(), Name: "Alexander", Age: 19, Height: 1.85}

	t.Run("exclude type, culture and trim", func(t *testing.T) {
		t.Parallel()

		printer, err := printing.For[Person]().
			Excluding(printing.Type[uuid.UUID]()).
			Printing(
				printing.Type[float64]().Culture(language.German),
				printing.Field(name).TrimmedToLength(5),
			).
			Build()
		require.NoError(t, err)

		got := printer.PrintToString(person)
		assert.Equal(t, "Person\n\tName = Alexa\n\tHeight = 1,85\n\tAge = 19\n", got)
		assert.NotContains(t, got, person.ID.String())
		assert.NotContains(t, got, "Alexan")
	})

	t.Run("type renderer", func(t *testing.T) {
		t.Parallel()

		got, err := printing.For[Person]().
			Printing(printing.Type[int]().Using(func(i int) string { return fmt.Sprintf("%X", i) })).
			PrintToString(Person{Name: "X", Age: 255})
		require.NoError(t, err)
		assert.Contains(t, got, "\tAge = FF\n")
	})

	t.Run("exclude member", func(t *testing.T) {
		t.Parallel()

		got, err := printing.For[Person]().
			Excluding(printing.Type[uuid.UUID](), printing.Field(age)).
			PrintToString(Person{Name: "Петя", Age: 77, Height: 1.5})
		require.NoError(t, err)
		assert.Equal(t, "Person\n\tName = Петя\n\tHeight = 1.5\n", got)
	})
}

func TestPrinter_MemberRuleWinsOverTypeRule(t *testing.T) {
	t.Parallel()

	printer := printing.For[Person]().
		Excluding(printing.Type[uuid.UUID]()).
		Printing(
			printing.Type[string]().Using(func(string) string { return "any string" }),
			printing.Field(name).Using(func(n string) string { return "<" + n + ">" }),
		).
		MustBuild()

	assert.Equal(t, "Person\n\tName = <Петя>\n\tHeight = 0\n\tAge = 20\n",
		printer.PrintToString(Person{Name: "Петя", Age: 20}))
}

func TestPrinter_TrimCountsCharacters(t *testing.T) {
	t.Parallel()

	printer := printing.For[Person]().
		Excluding(printing.Type[uuid.UUID]()).
		Printing(printing.Field(name).TrimmedToLength(3)).
		MustBuild()

	got := printer.PrintToString(Person{Name: "Василий", Age: 40})
	assert.Contains(t, got, "\tName = Вас\n")
	assert.NotContains(t, got, "Васи")
}

func TestPrinter_LastRuleWins(t *testing.T) {
	t.Parallel()

	printer := printing.For[Person]().
		Excluding(printing.Type[uuid.UUID]()).
		Printing(
			printing.Field(name).TrimmedToLength(1),
			printing.Field(name).TrimmedToLength(2),
		).
		MustBuild()

	assert.Contains(t, printer.PrintToString(Person{Name: "Alex"}), "\tName = Al\n")
}

func TestPrinter_Null(t *testing.T) {
	t.Parallel()

	printer := printing.For[*Person]().MustBuild()
	assert.Equal(t, "null\n", printer.PrintToString(nil))

	assert.Equal(t, "5\n", printing.For[any]().MustBuild().PrintToString(5))
	assert.Equal(t, "null\n", printing.Sprint(nil))
}

func TestPrinter_Cycle(t *testing.T) {
	t.Parallel()

	a := &Node{Name: "A"}
	b := &Node{Name: "B", Other: a}
	a.Other = b

	got := printing.For[*Node]().MustBuild().PrintToString(a)
	assert.Equal(t, "Node\n\tName = A\n\tOther = Node\n\t\tName = B\n\t\tOther = <Cyclic reference Node>\n", got)

	got, err := printing.For[*Node]().WithCycleMarker("<Циклическая ссылка %s>").PrintToString(a)
	require.NoError(t, err)
	assert.Contains(t, got, "<Циклическая ссылка Node>")

	got, err = printing.For[*Node]().WithCycleMarker("100%% %s").PrintToString(a)
	require.NoError(t, err)
	assert.Contains(t, got, "Other = 100% Node\n")
}

func TestIsCycleMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   bool
	}{
		{"<Cyclic reference %s>", true},
		{"100%% %s", true},
		{"%%%s", true},
		{"loop", false},
		{"%s %s", false},
		{"%d", false},
		{"%%s", false},
		{"50% %s", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, printing.IsCycleMarker(tt.format), tt.format)
	}
}

func TestPrinter_TimeCulture(t *testing.T) {
	t.Parallel()

	type Event struct {
		At time.Time
	}

	moment := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	got, err := printing.For[Event]().
		Printing(printing.Type[time.Time]().Culture(language.French)).
		PrintToString(Event{At: moment})
	require.NoError(t, err)

	want := monday.Format(moment, monday.ShortFormatsByLocale[monday.LocaleFrFR], monday.LocaleFrFR) + " 14:07:09"
	assert.Equal(t, "Event\n\tAt = "+want+"\n", got)
}

func TestPrinter_PromotedMember(t *testing.T) {
	t.Parallel()

	got, err := printing.For[Derived]().
		Excluding(printing.Field(func(d *Derived) *int { return &d.ID })).
		PrintToString(Derived{Base: &Base{ID: 1}, Name: "n"})
	require.NoError(t, err)
	assert.Equal(t, "Derived\n\tName = n\n", got)
}

func TestPrinter_NamedSelectors(t *testing.T) {
	t.Parallel()

	printer := printing.For[Person]().
		Excluding(printing.TypeOf(reflect.TypeFor[uuid.UUID]())).
		Printing(
			printing.FieldNamed[Person]("Name").TrimmedToLength(2),
			printing.MemberOf(reflect.TypeFor[Person](), "Age").Using(func(v any) string {
				return strconv.Itoa(v.(int) * 2)
			}),
			printing.TypeOf(reflect.TypeFor[float64]()).Using(func(v any) string {
				return fmt.Sprintf("%.2f", v)
			}),
		).
		MustBuild()

	assert.Equal(t, "Person\n\tName = Al\n\tHeight = 1.50\n\tAge = 42\n",
		printer.PrintToString(Person{Name: "Alex", Age: 21, Height: 1.5}))
}

func TestConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config *printing.Config[Person]
		code   string
	}{
		{
			name: "selector does not address a field",
			config: printing.For[Person]().Excluding(printing.Field(func(*Person) *int {
				x := 1
				return &x
			})),
			code: "invalid_selector",
		},
		{
			name:   "trim on a non-string member",
			config: printing.For[Person]().Printing(printing.Field(age).TrimmedToLength(3)),
			code:   "trim_not_string",
		},
		{
			name:   "negative trim",
			config: printing.For[Person]().Printing(printing.Field(name).TrimmedToLength(-1)),
			code:   "negative_trim",
		},
		{
			name:   "interface type renderer",
			config: printing.For[Person]().Printing(printing.Type[fmt.Stringer]().Using(fmt.Stringer.String)),
			code:   "interface_type_renderer",
		},
		{
			name:   "culture on a struct",
			config: printing.For[Person]().Printing(printing.Type[Person]().Culture(language.German)),
			code:   "not_locale_aware",
		},
		{
			name:   "nil renderer",
			config: printing.For[Person]().Printing(printing.Type[int]().Using(nil)),
			code:   "invalid_renderer",
		},
		{
			name:   "unknown field name",
			config: printing.For[Person]().Printing(printing.FieldNamed[Person]("Missing").TrimmedToLength(1)),
			code:   "invalid_selector",
		},
		{
			name:   "nil dynamic type",
			config: printing.For[Person]().Excluding(printing.TypeOf(nil)),
			code:   "nil_type",
		},
		{
			name:   "cycle marker without verb",
			config: printing.For[Person]().WithCycleMarker("cycle"),
			code:   "invalid_cycle_marker",
		},
		{
			name:   "nil rule",
			config: printing.For[Person]().Printing(nil),
			code:   "nil_rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			printer, err := tt.config.Build()
			require.Error(t, err)
			assert.Nil(t, printer)
			assert.True(t, errors.Is(err, printing.ErrConfiguration), err.Error())
			assert.Contains(t, err.Error(), "["+tt.code+"]")

			_, err = tt.config.PrintToString(Person{})
			require.Error(t, err)

			assert.Panics(t, func() { tt.config.MustBuild() })
		})
	}
}

func TestConfig_CollectsEveryError(t *testing.T) {
	t.Parallel()

	cfg := printing.For[Person]().Printing(
		printing.Field(age).TrimmedToLength(1),
		printing.Field(name).TrimmedToLength(-1),
	)

	d := cfg.Diagnostics()
	require.Len(t, d.Errors, 2)
	assert.Equal(t, "trim_not_string", d.Errors[0].Code)
	assert.Equal(t, "Person.Age", d.Errors[0].Target)
	assert.Equal(t, "negative_trim", d.Errors[1].Code)
	assert.Error(t, cfg.Err())
}

func TestConfig_WarnsAboutShadowedRules(t *testing.T) {
	t.Parallel()

	cfg := printing.For[Person]().
		Excluding(printing.Field(name)).
		Printing(printing.Field(name).TrimmedToLength(2))

	d := cfg.Diagnostics()
	assert.Empty(t, d.Errors)
	require.Len(t, d.Warnings, 1)
	assert.Equal(t, "shadowed_rule", d.Warnings[0].Code)
	assert.Equal(t, "Person.Name", d.Warnings[0].Target)

	_, err := cfg.Build()
	assert.NoError(t, err)
}

func TestConfig_BuildIsASnapshot(t *testing.T) {
	t.Parallel()

	cfg := printing.For[Person]().Excluding(printing.Type[uuid.UUID]())
	first := cfg.MustBuild()

	cfg.Excluding(printing.Field(age))
	second := cfg.MustBuild()

	p := Person{Name: "A", Age: 3}
	assert.Contains(t, first.PrintToString(p), "Age = 3")
	assert.NotContains(t, second.PrintToString(p), "Age")
}

func TestPrinter_RegistryServesOtherRoots(t *testing.T) {
	t.Parallel()

	printer := printing.For[Person]().
		Excluding(printing.Type[uuid.UUID]()).
		WithLogger(zap.NewNop()).
		MustBuild()

	got := serializer.Serialize([]Person{{Name: "A"}}, printer.Registry())
	assert.Equal(t, "[]printing_test.Person\n\t[0] = Person\n\t\tName = A\n\t\tHeight = 0\n\t\tAge = 0\n", got)
}

func TestPrinter_Concurrent(t *testing.T) {
	t.Parallel()

	printer := printing.For[Person]().
		Excluding(printing.Type[uuid.UUID]()).
		Printing(printing.Field(name).TrimmedToLength(2)).
		MustBuild()

	var wg sync.WaitGroup

	out := make([]string, 8)
	for i := range out {
		wg.Add(1)

		go func() {
			defer wg.Done()

			out[i] = printer.PrintToString(Person{Name: strings.Repeat("x", i+3), Age: i})
		}()
	}

	wg.Wait()

	for i, got := range out {
		assert.Equal(t, fmt.Sprintf("Person\n\tName = xx\n\tHeight = 0\n\tAge = %d\n", i), got)
	}
}
