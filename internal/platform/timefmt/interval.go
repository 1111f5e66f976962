package timefmt

import (
	"math"
	"strings"

	"github.com/textualirc/support/internal/platform/i18n"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Unit selects which calendar units an interval may be rendered with.
type Unit uint

const (
	Second Unit = 1 << iota
	Minute
	Hour
	Day
	Week
	Month
	Year

	// AllUnits enables every unit. A zero Unit means the same.
	AllUnits = Second | Minute | Hour | Day | Week | Month | Year
)

// Months are 30 days and years 365 days.
var unitDefs = []struct {
	unit    Unit
	seconds int64
	name    string
}{
	{unit: Year, seconds: 365 * 24 * 60 * 60, name: "year"},
	{unit: Month, seconds: 30 * 24 * 60 * 60, name: "month"},
	{unit: Week, seconds: 7 * 24 * 60 * 60, name: "week"},
	{unit: Day, seconds: 24 * 60 * 60, name: "day"},
	{unit: Hour, seconds: 60 * 60, name: "hour"},
	{unit: Minute, seconds: 60, name: "minute"},
	{unit: Second, seconds: 1, name: "second"},
}

// Localizer supplies the unit labels for an interval. MessageTag names the
// locale that answers a key, which decides the plural form.
type Localizer interface {
	MessageTag(key string) language.Tag
	String(key string, args ...any) string
}

// HumanReadableInterval renders seconds in the default locale, e.g.
// "1 hour, 2 minutes, 5 seconds" or "1h 2m 5s" when short is set.
func HumanReadableInterval(seconds int64, short bool, units Unit) string {
	return FormatInterval(i18n.Default(), seconds, short, units)
}

// FormatInterval decomposes seconds greedily from the largest enabled unit
// down, emitting every non-zero unit. Whatever remains below the smallest
// enabled unit is dropped. The sign of seconds is ignored, and a duration
// with nothing to show renders as zero of the smallest enabled unit.
func FormatInterval(loc Localizer, seconds int64, short bool, units Unit) string {
	units &= AllUnits
	if units == 0 {
		units = AllUnits
	}
	remaining := absSeconds(seconds)

	var parts []string
	smallest := ""
	for _, def := range unitDefs {
		if units&def.unit == 0 {
			continue
		}
		smallest = def.name
		if remaining == 0 {
			continue
		}
		count := remaining / def.seconds
		if count == 0 {
			continue
		}
		remaining -= count * def.seconds
		parts = append(parts, unitLabel(loc, def.name, count, short))
	}
	if len(parts) == 0 {
		parts = append(parts, unitLabel(loc, smallest, 0, short))
	}

	separatorKey := "time.interval.separator"
	if short {
		separatorKey = "time.interval.short_separator"
	}
	return strings.Join(parts, loc.String(separatorKey))
}

func unitLabel(loc Localizer, name string, count int64, short bool) string {
	key := "time.interval." + name
	switch {
	case short:
		key += ".short"
	case plural.Cardinal.MatchPlural(loc.MessageTag(key+".other"), pluralOperand(count), 0, 0, 0, 0) == plural.One:
		key += ".one"
	default:
		key += ".other"
	}
	return loc.String(key, count)
}

// pluralOperand clamps count so huge intervals keep the "other" form on
// 32-bit platforms.
func pluralOperand(count int64) int {
	if count > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(count)
}

func absSeconds(seconds int64) int64 {
	switch {
	case seconds == math.MinInt64:
		return math.MaxInt64
	case seconds < 0:
		return -seconds
	default:
		return seconds
	}
}
