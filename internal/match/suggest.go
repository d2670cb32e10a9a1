package match

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// MinSimilarity is the lowest normalized similarity worth suggesting.
const MinSimilarity = 0.5

// Normalize folds case and drops '_', '-' and spaces, so that "order_id",
// "OrderID" and "order-id" compare equal.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// Suggest returns up to limit candidates closest to name, best first. Exact
// matches are not suggested.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	norm := Normalize(name)

	ranked := lo.FilterMap(lo.Uniq(candidates), func(c string, _ int) (scored, bool) {
		if c == name {
			return scored{}, false
		}

		s := Similarity(norm, Normalize(c))

		return scored{name: c, score: s}, s >= MinSimilarity
	})

	slices.SortFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return strings.Compare(a.name, b.name)
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return lo.Map(ranked, func(s scored, _ int) string { return s.name })
}
