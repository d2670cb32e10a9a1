package primitive

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

const (
	clockLayout    = "15:04:05"
	isoDateLayout  = "2006-01-02"
	localeSplitter = "_"
)

var (
	// en_US goes first: the matcher falls back to the first entry
	dateLocales = append([]monday.Locale{monday.LocaleEnUS}, monday.ListLocales()...)

	dateMatcher = language.NewMatcher(lo.Map(dateLocales, func(l monday.Locale, _ int) language.Tag {
		return language.Make(strings.ReplaceAll(string(l), localeSplitter, "-"))
	}))
)

// DateLocale returns the date locale closest to tag, en_US when nothing
// matches.
func DateLocale(tag language.Tag) monday.Locale {
	_, idx, conf := dateMatcher.Match(tag)
	if conf == language.No {
		return monday.LocaleEnUS
	}

	return dateLocales[idx]
}

// DateLayout returns the short date and clock layout used for tag.
func DateLayout(tag language.Tag) string {
	layout, ok := monday.ShortFormatsByLocale[DateLocale(tag)]
	if !ok {
		layout = isoDateLayout
	}

	return layout + " " + clockLayout
}

func formatTime(t time.Time, tag language.Tag) string {
	return monday.Format(t, DateLayout(tag), DateLocale(tag))
}
