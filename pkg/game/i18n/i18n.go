// Package i18n translates UI strings from embedded gettext catalogs.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLocale is used when a requested catalog does not exist
const DefaultLocale = "en"

//go:embed locales/*.po
var catalogs embed.FS

// dynamicGet looks keys up at runtime. It is a function variable so go vet
// does not treat T as a printf wrapper: keys are catalog ids, not format strings.
var dynamicGet = (*gotext.Po).Get

var (
	mu     sync.RWMutex
	active *gotext.Po
	lang   string
)

// Load parses the catalog for locale and makes it active.
// Unknown locales fall back to DefaultLocale.
func Load(locale string) error {
	po, used, err := parse(locale)
	if err != nil {
		return err
	}
	mu.Lock()
	active, lang = po, used
	mu.Unlock()
	return nil
}

func parse(locale string) (*gotext.Po, string, error) {
	data, err := catalogs.ReadFile("locales/" + locale + ".po")
	if err != nil {
		locale = DefaultLocale
		data, err = catalogs.ReadFile("locales/" + DefaultLocale + ".po")
		if err != nil {
			return nil, "", fmt.Errorf("i18n: read default catalog: %w", err)
		}
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, locale, nil
}

// Locale returns the active locale
func Locale() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// T translates key, formatting vars into the translation.
// Untranslated keys, and every key before Load, are returned as-is.
func T(key string, vars ...any) string {
	mu.RLock()
	po := active
	mu.RUnlock()
	if po == nil {
		return key
	}
	return dynamicGet(po, key, vars...)
}
