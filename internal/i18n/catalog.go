// Package i18n provides the message catalogs and locale-aware formatting
// used to localize generated report data. German is the source language:
// every display string produced by the engine is German, and catalogs
// override by key. A missing key always degrades to the source string,
// never to an error or an empty field.
package i18n

import "fmt"

// Supported locale tags.
const (
	LocaleDE = "de"
	LocaleEN = "en"
)

// Catalog is a string-keyed message table for one locale with
// fallback-safe lookup.
type Catalog struct {
	locale   string
	messages map[string]string
}

// NewCatalog creates a catalog for the given locale. A nil message map
// yields a catalog that always falls back.
func NewCatalog(locale string, messages map[string]string) *Catalog {
	if messages == nil {
		messages = map[string]string{}
	}
	return &Catalog{locale: locale, messages: messages}
}

// Locale returns the catalog's locale tag.
func (c *Catalog) Locale() string {
	if c == nil || c.locale == "" {
		return LocaleDE
	}
	return c.locale
}

// Lookup resolves a message key, returning the fallback (the original
// German string) when the key is absent or empty. This is the single
// place the never-throw contract is enforced.
func (c *Catalog) Lookup(key, fallback string) string {
	if c == nil || key == "" {
		return fallback
	}
	if msg, ok := c.messages[key]; ok && msg != "" {
		return msg
	}
	return fallback
}

// Lookupf resolves a parameterized template by key and interpolates the
// arguments. The fallback must carry the same verb layout as the
// translation.
func (c *Catalog) Lookupf(key, fallback string, args ...interface{}) string {
	tmpl := c.Lookup(key, fallback)
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Builtin returns the built-in catalog for a locale tag. Unknown locales
// get the German source catalog (all lookups fall back).
func Builtin(locale string) *Catalog {
	switch locale {
	case LocaleEN:
		return NewCatalog(LocaleEN, messagesEN)
	default:
		return NewCatalog(LocaleDE, nil)
	}
}
