package i18n

import (
	"embed"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator resolves dotted keys such as "note.placeholder" against one
// string table per language.
type Translator struct {
	tables map[Language]map[string]any
	log    *zap.Logger
}

// NewTranslator loads the embedded tables for every supported language.
func NewTranslator(log *zap.Logger) (*Translator, error) {
	tables := make(map[Language][]byte, len(Supported))
	for _, lang := range Supported {
		data, err := localeFS.ReadFile("locales/" + string(lang) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		tables[lang] = data
	}
	return NewTranslatorFromYAML(tables, log)
}

func NewTranslatorFromYAML(sources map[Language][]byte, log *zap.Logger) (*Translator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Translator{tables: make(map[Language]map[string]any, len(sources)), log: log}
	for lang, data := range sources {
		table := map[string]any{}
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		t.tables[lang] = table
	}
	return t, nil
}

// Translate returns the string stored under key for lang. A missing key is
// not an error: the key itself is returned and a warning logged.
func (t *Translator) Translate(key string, lang Language) string {
	var current any = t.tables[lang]
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return t.missing(key, lang)
		}
		current, ok = node[part]
		if !ok {
			return t.missing(key, lang)
		}
	}
	s, ok := current.(string)
	if !ok {
		return t.missing(key, lang)
	}
	return s
}

func (t *Translator) missing(key string, lang Language) string {
	t.log.Warn("translation key not found", zap.String("key", key), zap.String("language", string(lang)))
	return key
}
