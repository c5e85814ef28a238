package i18n

import (
	"embed"
	"io/fs"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"teetime/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.Translator = (*Translator)(nil)

// Translator renders message templates from the embedded catalogs. Locales
// are negotiated against the loaded catalogs; anything unmatched falls back
// to the default locale.
type Translator struct {
	bundle   *i18n.Bundle
	matcher  language.Matcher
	fallback language.Tag
}

func NewTranslator(defaultLocale string) *Translator {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		fallback = language.English
	}
	bundle := i18n.NewBundle(fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("❌ i18n: failed to load %s: %v", file, err)
		}
	}

	// The matcher's first tag is its answer when nothing matches.
	tags := []language.Tag{fallback}
	for _, tag := range bundle.LanguageTags() {
		if tag != fallback {
			tags = append(tags, tag)
		}
	}
	return &Translator{
		bundle:   bundle,
		matcher:  language.NewMatcher(tags),
		fallback: fallback,
	}
}

// Match resolves a locale or an Accept-Language value to a loaded catalog.
func (t *Translator) Match(accept string) language.Tag {
	prefs, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(prefs) == 0 {
		return t.fallback
	}
	tag, _, confidence := t.matcher.Match(prefs...)
	if confidence == language.No {
		return t.fallback
	}
	base, _ := tag.Base()
	return language.Make(base.String())
}

// T renders key in the best matching locale. A missing key renders as the
// key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	tag := t.Match(locale)
	localizer := i18n.NewLocalizer(t.bundle, tag.String(), t.fallback.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: no message %q for %s: %v", key, tag, err)
		return key
	}
	return msg
}
