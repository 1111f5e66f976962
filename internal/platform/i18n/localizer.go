package i18n

import (
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/textualirc/support/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Localizer renders strings and numbers from an application bundle for one
// display locale. It is immutable and safe for concurrent use.
type Localizer struct {
	bundle *catalog.Bundle
	tag    language.Tag
}

// NewLocalizer returns a localizer over bundle for tag. A nil bundle selects
// the embedded application bundle.
func NewLocalizer(bundle *catalog.Bundle, tag language.Tag) *Localizer {
	if bundle == nil {
		bundle = catalog.Default()
	}
	return &Localizer{bundle: bundle, tag: tag}
}

var defaultLocalizer atomic.Pointer[Localizer]

func init() {
	defaultLocalizer.Store(NewLocalizer(catalog.Default(), DefaultTag()))
}

// Default returns the process-wide localizer.
func Default() *Localizer {
	return defaultLocalizer.Load()
}

// SetDefault replaces the process-wide localizer. Nil restores the base
// locale over the embedded application bundle.
func SetDefault(l *Localizer) {
	if l == nil {
		l = NewLocalizer(catalog.Default(), DefaultTag())
	}
	defaultLocalizer.Store(l)
}

// Tag returns the display locale.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Bundle returns the application bundle this localizer reads.
func (l *Localizer) Bundle() *catalog.Bundle {
	return l.bundle
}

// String looks key up in the application bundle.
func (l *Localizer) String(key string, args ...any) string {
	return l.Resolve(l.bundle, key, args...)
}

// Basic looks up the basic language string with the given id.
func (l *Localizer) Basic(id int, args ...any) string {
	return l.Resolve(l.bundle, catalog.BasicKey(id), args...)
}

// FromBundle looks key up in bundle, falling back to the application bundle
// when bundle is nil or does not define key.
func (l *Localizer) FromBundle(key string, bundle *catalog.Bundle, args ...any) string {
	if bundle != nil && bundle != l.bundle {
		if _, ok := bundle.Message(l.localeFor(bundle), key); ok {
			return l.Resolve(bundle, key, args...)
		}
	}
	return l.Resolve(l.bundle, key, args...)
}

// Resolve performs the table lookup and argument substitution every other
// lookup delegates to. A missing key returns the key itself; a nil bundle
// reads the application bundle.
func (l *Localizer) Resolve(bundle *catalog.Bundle, key string, args ...any) string {
	if bundle == nil {
		bundle = l.bundle
	}
	key = strings.TrimSpace(key)
	template, locale, ok := bundle.Lookup(l.localeFor(bundle), key)
	if !ok {
		reportMissing(bundle, key)
		return key
	}
	if len(args) == 0 {
		return template
	}
	printer := message.NewPrinter(language.Make(locale), message.Catalog(bundle.Catalog()))
	return printer.Sprintf(key, args...)
}

// Number renders n with the display locale's digit grouping.
func (l *Localizer) Number(n int64) string {
	return message.NewPrinter(l.tag).Sprint(number.Decimal(n))
}

// MessageTag returns the locale whose text answers key in the application
// bundle. It differs from Tag when the display locale is not shipped or lacks
// the key, and is the locale plural rules must follow. A missing key reports
// the display locale.
func (l *Localizer) MessageTag(key string) language.Tag {
	_, locale, ok := l.bundle.Lookup(l.localeFor(l.bundle), strings.TrimSpace(key))
	if !ok {
		return l.tag
	}
	return language.Make(locale)
}

func (l *Localizer) localeFor(bundle *catalog.Bundle) string {
	return bundle.MatchLocale(l.tag)
}

var reportedMissing sync.Map

func reportMissing(bundle *catalog.Bundle, key string) {
	id := bundle.Name() + "\x00" + key
	if _, loaded := reportedMissing.LoadOrStore(id, struct{}{}); loaded {
		return
	}
	log.Printf("i18n: missing key %q in bundle %q", key, bundle.Name())
}
