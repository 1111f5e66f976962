package timefmt

import (
	"sync"
	"testing"
	"time"

	"github.com/textualirc/support/internal/platform/i18n"
	"golang.org/x/text/language"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2014, time.March, 5, 14, 7, 9, 0, time.UTC)

	if got := FormatTimestamp(ts, ""); got != "[14:07:09]" {
		t.Fatalf("FormatTimestamp(default) = %q", got)
	}
	if got, want := FormatTimestamp(ts, ""), FormatTimestamp(ts, DefaultTimestampFormat); got != want {
		t.Fatalf("empty format = %q, want %q", got, want)
	}
	if got := FormatTimestamp(ts, "%Y-%m-%d %H:%M"); got != "2014-03-05 14:07" {
		t.Fatalf("FormatTimestamp(custom) = %q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2014-03-05 14:07:09", "%Y-%m-%d %H:%M:%S")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2014, time.March, 5, 14, 7, 9, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseTimestamp() = %s, want %s", got, want)
	}

	if _, err := ParseTimestamp("not a time", "%Y-%m-%d"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSharedISOFormatterIsCached(t *testing.T) {
	first := SharedISOFormatter()
	if first == nil {
		t.Fatal("expected formatter")
	}
	if SharedISOFormatter() != first {
		t.Fatal("expected the same formatter instance")
	}

	var wg sync.WaitGroup
	results := make([]*ISOFormatter, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = SharedISOFormatter()
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		if got != first {
			t.Fatalf("goroutine %d received a different formatter", i)
		}
	}
}

func TestISOFormatterRoundTrip(t *testing.T) {
	formatter := SharedISOFormatter()
	local := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2014, time.March, 5, 11, 7, 9, 250_000_000, local)

	rendered := formatter.Format(ts)
	if rendered != "2014-03-05T14:07:09.250Z" {
		t.Fatalf("Format() = %q", rendered)
	}
	parsed, err := formatter.Parse(rendered)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.Equal(ts) {
		t.Fatalf("Parse() = %s, want %s", parsed, ts)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %s", parsed.Location())
	}

	if _, err := formatter.Parse("2014-03-05T14:07:09-03:00"); err != nil {
		t.Fatalf("parse without fraction: %v", err)
	}
	if _, err := formatter.Parse("yesterday"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestHumanReadableInterval(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		short   bool
		units   Unit
		want    string
	}{
		{name: "hours minutes seconds", seconds: 3725, units: AllUnits, want: "1 hour, 2 minutes, 5 seconds"},
		{name: "short", seconds: 3725, short: true, units: AllUnits, want: "1h 2m 5s"},
		{name: "zero", seconds: 0, units: AllUnits, want: "0 seconds"},
		{name: "zero short", seconds: 0, short: true, units: AllUnits, want: "0s"},
		{name: "zero units means all", seconds: 61, units: 0, want: "1 minute, 1 second"},
		{name: "negative uses absolute value", seconds: -90, units: AllUnits, want: "1 minute, 30 seconds"},
		{name: "remainder truncated", seconds: 3725, units: Hour | Minute, want: "1 hour, 2 minutes"},
		{name: "below smallest unit", seconds: 59, units: Minute | Hour, want: "0 minutes"},
		{name: "skipped zero units", seconds: 86400 + 5, units: AllUnits, want: "1 day, 5 seconds"},
		{name: "calendar units", seconds: 400 * 86400, units: AllUnits, want: "1 year, 1 month, 5 days"},
		{name: "days only", seconds: 14 * 86400, units: Day, want: "14 days"},
		{name: "weeks", seconds: 14 * 86400, units: Week | Day, want: "2 weeks"},
		{name: "grouped count", seconds: 1000 * 86400, units: Day, want: "1,000 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HumanReadableInterval(tt.seconds, tt.short, tt.units); got != tt.want {
				t.Fatalf("HumanReadableInterval(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatIntervalLocalized(t *testing.T) {
	tests := []struct {
		name    string
		locale  string
		seconds int64
		short   bool
		want    string
	}{
		{name: "pt-BR", locale: "pt-BR", seconds: 7260, want: "2 horas, 1 minuto"},
		{name: "pt-BR short", locale: "pt-BR", seconds: 7260, short: true, want: "2h 1min"},
		{name: "pt parent language", locale: "pt", seconds: 7260, want: "2 horas, 1 minuto"},
		{name: "ja-JP uses english plurals", locale: "ja-JP", seconds: 3661, want: "1 hour, 1 minute, 1 second"},
		{name: "fr-FR zero uses english plurals", locale: "fr-FR", seconds: 0, want: "0 seconds"},
		{name: "fr-FR one", locale: "fr-FR", seconds: 1, want: "1 second"},
		{name: "en-GB", locale: "en-GB", seconds: 120, want: "2 minutes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := i18n.NewLocalizer(nil, language.MustParse(tt.locale))
			if got := FormatInterval(loc, tt.seconds, tt.short, AllUnits); got != tt.want {
				t.Fatalf("FormatInterval(%s, %d) = %q, want %q", tt.locale, tt.seconds, got, tt.want)
			}
		})
	}
}
