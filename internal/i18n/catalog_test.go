package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogLookup(t *testing.T) {
	tests := []struct {
		name     string
		catalog  *Catalog
		key      string
		fallback string
		want     string
	}{
		{
			name:     "known key returns translation",
			catalog:  NewCatalog(LocaleEN, map[string]string{"greeting": "hello"}),
			key:      "greeting",
			fallback: "hallo",
			want:     "hello",
		},
		{
			name:     "missing key falls back",
			catalog:  NewCatalog(LocaleEN, map[string]string{}),
			key:      "greeting",
			fallback: "hallo",
			want:     "hallo",
		},
		{
			name:     "empty translation falls back",
			catalog:  NewCatalog(LocaleEN, map[string]string{"greeting": ""}),
			key:      "greeting",
			fallback: "hallo",
			want:     "hallo",
		},
		{
			name:     "empty key falls back",
			catalog:  NewCatalog(LocaleEN, map[string]string{"greeting": "hello"}),
			key:      "",
			fallback: "hallo",
			want:     "hallo",
		},
		{
			name:     "nil catalog falls back",
			catalog:  nil,
			key:      "greeting",
			fallback: "hallo",
			want:     "hallo",
		},
		{
			name:     "nil message map falls back",
			catalog:  NewCatalog(LocaleDE, nil),
			key:      "greeting",
			fallback: "hallo",
			want:     "hallo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.catalog.Lookup(tt.key, tt.fallback))
		})
	}
}

func TestCatalogLookupf(t *testing.T) {
	c := NewCatalog(LocaleEN, map[string]string{
		"deadline": "Deadline %q in %d days",
	})

	assert.Equal(t, `Deadline "DORA" in 45 days`, c.Lookupf("deadline", "Frist %q in %d Tagen", "DORA", 45))
	assert.Equal(t, `Frist "DORA" in 45 Tagen`, c.Lookupf("missing", "Frist %q in %d Tagen", "DORA", 45))
	assert.Equal(t, "no args", c.Lookupf("missing", "no args"))
}

func TestCatalogLocale(t *testing.T) {
	assert.Equal(t, LocaleDE, NewCatalog("", nil).Locale())
	assert.Equal(t, LocaleEN, NewCatalog(LocaleEN, nil).Locale())

	var nilCatalog *Catalog
	assert.Equal(t, LocaleDE, nilCatalog.Locale())
}

func TestBuiltin(t *testing.T) {
	de := Builtin(LocaleDE)
	assert.Equal(t, LocaleDE, de.Locale())
	// German is the source language, so every lookup falls back.
	assert.Equal(t, "DSGVO", de.Lookup("regulation.dsgvo.name", "DSGVO"))

	en := Builtin(LocaleEN)
	assert.Equal(t, LocaleEN, en.Locale())
	assert.Equal(t, "GDPR", en.Lookup("regulation.dsgvo.name", "DSGVO"))
	assert.Equal(t, "Immediate actions", en.Lookup("roadmap.phase.1", "Sofortmaßnahmen"))

	// unknown locales degrade to German
	fr := Builtin("fr")
	assert.Equal(t, LocaleDE, fr.Locale())
	assert.Equal(t, "DSGVO", fr.Lookup("regulation.dsgvo.name", "DSGVO"))
}
