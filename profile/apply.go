package profile

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"golang.org/x/text/language"

	"object-printer/internal/analyze"
	"object-printer/internal/common"
	"object-printer/internal/diagnostic"
	"object-printer/internal/match"
	"object-printer/primitive"
	"object-printer/printing"
)

// ErrProfile marks every error caused by the content of a profile.
var ErrProfile = errors.New("invalid printing profile")

const maxSuggestions = 3

var stringType = reflect.TypeFor[string]()

// Apply adds the rules of f to cfg. Names are resolved against the types
// reachable from T and from extra. Either every rule is applied or none:
// on error cfg is left untouched.
func Apply[T any](cfg *printing.Config[T], f *File, extra ...reflect.Type) error {
	if cfg == nil || f == nil {
		return errors.Mark(errors.New("nil config or profile"), ErrProfile)
	}

	r := &resolver{graph: analyze.NewTypeGraph(append([]reflect.Type{reflect.TypeFor[T]()}, extra...)...)}

	targets, rules := r.resolve(f)
	if err := r.diags.Err(ErrProfile); err != nil {
		return err
	}

	cfg.Excluding(targets...).Printing(rules...)

	if f.CycleMarker != "" {
		cfg.WithCycleMarker(f.CycleMarker)
	}

	return nil
}

// resolver turns profile entries into printing targets and rules,
// collecting every problem on the way.
type resolver struct {
	graph *analyze.TypeGraph
	diags diagnostic.Diagnostics
}

func (r *resolver) resolve(f *File) ([]printing.Target, []printing.Rule) {
	if f.Version != "1" {
		r.diags.AddError("unsupported_version", fmt.Sprintf("unsupported profile version %q", f.Version), "")
	}

	if f.CycleMarker != "" && !printing.IsCycleMarker(f.CycleMarker) {
		r.diags.AddError("invalid_cycle_marker", "cycle marker must contain exactly one %s verb", f.CycleMarker)
	}

	var (
		targets []printing.Target
		rules   []printing.Rule
	)

	targets = append(targets, r.excludedTypes(f.Exclude.Types)...)
	targets = append(targets, r.excludedMembers(f.Exclude.Members)...)

	for _, tr := range f.Types {
		rules = append(rules, r.typeRules(tr)...)
	}

	for _, mr := range f.Members {
		rules = append(rules, r.memberRules(mr)...)
	}

	return targets, rules
}

func (r *resolver) excludedTypes(names StringOrArray) []printing.Target {
	if names.IsEmpty() {
		return nil
	}

	var targets []printing.Target

	for _, name := range lo.Uniq(names) {
		if rtype, ok := r.lookupType(name); ok {
			targets = append(targets, printing.TypeOf(rtype))
		}
	}

	return targets
}

func (r *resolver) excludedMembers(names StringOrArray) []printing.Target {
	if names.IsEmpty() {
		return nil
	}

	var targets []printing.Target

	for _, name := range lo.Uniq(names) {
		if field, ok := r.lookupMember(name); ok {
			targets = append(targets, printing.MemberOf(field.ID.Owner, field.Name))
		}
	}

	return targets
}

func (r *resolver) typeRules(tr TypeRule) []printing.Rule {
	rtype, ok := r.lookupType(tr.Type)
	if !ok {
		return nil
	}

	if tr.Format == "" && tr.Culture == "" {
		r.diags.AddError("empty_rule", "type rule needs a format or a culture", tr.Type)
		return nil
	}

	var rules []printing.Rule

	if tr.Format != "" {
		if rtype.Kind() == reflect.Interface {
			r.diags.AddError("interface_type_renderer", "formats apply to concrete types only", tr.Type)
		} else if r.checkFormat(tr.Format, tr.Type) {
			rules = append(rules, printing.TypeOf(rtype).Using(formatter(tr.Format)))
		}
	}

	if tr.Culture != "" {
		tag, err := language.Parse(tr.Culture)

		switch {
		case err != nil:
			r.diags.AddError("invalid_culture", fmt.Sprintf("culture %q: %v", tr.Culture, err), tr.Type)
		case !primitive.IsLocaleAware(rtype):
			r.diags.AddError("not_locale_aware", "culture only applies to numbers and times", tr.Type)
		default:
			rules = append(rules, printing.TypeOf(rtype).Culture(tag))
		}
	}

	return rules
}

func (r *resolver) memberRules(mr MemberRule) []printing.Rule {
	field, ok := r.lookupMember(mr.Member)
	if !ok {
		return nil
	}

	if mr.Format == "" && mr.Trim == nil {
		r.diags.AddError("empty_rule", "member rule needs a format or a trim length", mr.Member)
		return nil
	}

	sel := printing.MemberOf(field.ID.Owner, field.Name)

	var rules []printing.Rule

	if mr.Format != "" && r.checkFormat(mr.Format, mr.Member) {
		rules = append(rules, sel.Using(formatter(mr.Format)))
	}

	if mr.Trim != nil {
		switch {
		case field.Type != stringType:
			r.diags.AddError("trim_not_string", fmt.Sprintf("trim needs a string member, got %s", field.Type), mr.Member)
		case *mr.Trim < 0:
			r.diags.AddError("negative_trim", fmt.Sprintf("trim length %d is negative", *mr.Trim), mr.Member)
		default:
			rules = append(rules, sel.TrimmedToLength(*mr.Trim))
		}
	}

	return rules
}

func (r *resolver) lookupType(name string) (reflect.Type, bool) {
	rtype, ok := r.graph.Lookup(name)
	if ok {
		return rtype, true
	}

	if r.graph.IsAmbiguous(name) {
		r.diags.AddError("ambiguous_type", "type name matches several types, qualify it with its package", name)
	} else {
		r.diags.AddError("unknown_type",
			"type is not reachable from the printed type"+didYouMean(match.Suggest(name, r.graph.Names(), maxSuggestions)), name)
	}

	return nil, false
}

func (r *resolver) lookupMember(name string) (analyze.FieldInfo, bool) {
	owner, member, ok := common.SplitQualified(name)
	if !ok {
		r.diags.AddError("invalid_member", `member must be written "Type.Field"`, name)
		return analyze.FieldInfo{}, false
	}

	rtype, ok := r.lookupType(owner)
	if !ok {
		return analyze.FieldInfo{}, false
	}

	f, err := analyze.SelectByName(rtype, member)
	if err != nil {
		fields := lo.Map(analyze.Describe(rtype), func(f analyze.FieldInfo, _ int) string { return f.Name })
		r.diags.AddError("unknown_member", err.Error()+didYouMean(match.Suggest(member, fields, maxSuggestions)), name)
		return analyze.FieldInfo{}, false
	}

	return f, true
}

func (r *resolver) checkFormat(format, target string) bool {
	if !strings.Contains(format, "%") {
		r.diags.AddError("invalid_format", fmt.Sprintf("format %q has no verb", format), target)
		return false
	}

	return true
}

func didYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}

	quoted := lo.Map(suggestions, func(s string, _ int) string { return strconv.Quote(s) })

	return " (did you mean " + strings.Join(quoted, " or ") + "?)"
}

func formatter(format string) func(any) string {
	return func(v any) string {
		return fmt.Sprintf(format, v)
	}
}
