package i18n

import "github.com/textualirc/support/internal/platform/i18n/catalog"

// LocalizedString returns the application string for key, formatted with
// args, in the default locale.
func LocalizedString(key string, args ...any) string {
	return Default().String(key, args...)
}

// BasicLocalizedString returns the basic language string with the given id,
// so BasicLocalizedString(1000) reads key "BasicLanguage[1000]".
func BasicLocalizedString(id int, args ...any) string {
	return Default().Basic(id, args...)
}

// LocalizedStringFromBundle returns key from a plugin's own bundle, falling
// back to the application bundle.
func LocalizedStringFromBundle(key string, bundle *catalog.Bundle, args ...any) string {
	return Default().FromBundle(key, bundle, args...)
}

// ResolveLocalizedString looks key up in bundle and substitutes args.
func ResolveLocalizedString(bundle *catalog.Bundle, key string, args ...any) string {
	return Default().Resolve(bundle, key, args...)
}

// LocalizedText returns the application string for key.
//
// Deprecated: use LocalizedString, which also formats arguments.
func LocalizedText(key string) string {
	return LocalizedString(key)
}

// LocalizedTextf returns the application string for key formatted with args.
//
// Deprecated: use LocalizedString.
func LocalizedTextf(key string, args ...any) string {
	return LocalizedString(key, args...)
}

// FormatNumber renders n with the default locale's digit grouping.
func FormatNumber(n int64) string {
	return Default().Number(n)
}
