// Package timefmt renders timestamps and durations for display.
package timefmt

import (
	"fmt"
	"sync"
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultTimestampFormat is the strftime format used when none is given.
const DefaultTimestampFormat = "[%H:%M:%S]"

// FormatTimestamp renders t with a strftime format, or
// DefaultTimestampFormat when format is empty.
func FormatTimestamp(t time.Time, format string) string {
	if format == "" {
		format = DefaultTimestampFormat
	}
	return strftime.Format(format, t)
}

// ParseTimestamp parses value with a strptime-style format, or
// DefaultTimestampFormat when format is empty.
func ParseTimestamp(value string, format string) (time.Time, error) {
	if format == "" {
		format = DefaultTimestampFormat
	}
	t, err := strftime.Parse(format, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q with %q: %w", value, format, err)
	}
	return t, nil
}

// ISOLayout renders UTC timestamps with millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// ISOFormatter formats and parses ISO 8601 timestamps in UTC.
type ISOFormatter struct {
	layout   string
	location *time.Location
}

// Format renders t in UTC.
func (f *ISOFormatter) Format(t time.Time) string {
	return t.In(f.location).Format(f.layout)
}

// Parse reads an RFC 3339 timestamp, with or without fractional seconds,
// and returns it in UTC.
func (f *ISOFormatter) Parse(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse iso timestamp: %w", err)
	}
	return t.In(f.location), nil
}

var sharedISOFormatter = sync.OnceValue(func() *ISOFormatter {
	return &ISOFormatter{layout: ISOLayout, location: time.UTC}
})

// SharedISOFormatter returns the process-wide ISO formatter. It is built on
// first use and the same instance is returned on every call.
func SharedISOFormatter() *ISOFormatter {
	return sharedISOFormatter()
}
