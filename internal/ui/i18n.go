package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-clock/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeExt    = ".json"
)

// SetupI18n loads every embedded locale and records the languages found.
func (app *ClockApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	var langs []string
	for _, entry := range entries {
		if lang, ok := loadLocale(bundle, entry.Name()); ok {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)

	app.SupportedLanguages = langs
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// loadLocale parses locales/active.<lang>.json into bundle and returns the
// language code.
func loadLocale(bundle *i18n.Bundle, name string) (string, bool) {
	log := slog.With(config.LogKeyComponent, config.CompI18n, config.LogKeyFile, name)

	if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeExt) {
		log.Debug(config.MsgLocaleSkip)
		return "", false
	}

	lang := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeExt)
	if lang == "" {
		log.Warn(config.MsgLocaleBadName)
		return "", false
	}

	if _, err := bundle.LoadMessageFileFS(localeFS, path.Join(localeDir, name)); err != nil {
		log.Error(config.ErrLocaleLoad, config.LogKeyError, err)
		return "", false
	}

	log.Debug(config.MsgLocaleLoaded, config.LogKeyLang, lang)
	return lang, true
}

// UpdateLocalizer refreshes the translator based on the user's language
// preference, falling back to the environment setting.
func (app *ClockApp) UpdateLocalizer() {
	if app.I18nBundle == nil {
		return
	}
	fallback := config.DefaultLanguage
	if app.Settings != nil && app.Settings.Language != "" {
		fallback = app.Settings.Language
	}
	lang := app.Preferences.StringWithFallback(config.PrefLanguage, fallback)
	if lang == "" {
		lang = fallback
	}
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg is a helper to translate a key safely.
func (app *ClockApp) GetMsg(key string) string {
	return app.Localize(key, nil)
}

// Localize translates key with template data. It returns key itself when
// no translation is available.
func (app *ClockApp) Localize(key string, data map[string]interface{}) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
