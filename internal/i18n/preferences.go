package i18n

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// LanguageKey is the fixed key the language preference is stored under.
const LanguageKey = "language"

var (
	ErrUnsupportedLanguage = errors.New("i18n: unsupported language")
	ErrWatchUnsupported    = errors.New("i18n: preference store cannot be watched")
)

type watchable interface {
	Watch(ctx context.Context, onChange func()) error
}

type Preferences struct {
	store KV
	log   *zap.Logger

	mu   sync.Mutex
	last Language
}

func NewPreferences(store KV, log *zap.Logger) *Preferences {
	if log == nil {
		log = zap.NewNop()
	}
	return &Preferences{store: store, log: log}
}

// Language returns the stored language, or Default when nothing valid is
// stored.
func (p *Preferences) Language() Language {
	raw, ok, err := p.store.Get(LanguageKey)
	if err != nil {
		p.log.Warn("reading language preference failed", zap.Error(err))
		return Default
	}
	if !ok {
		return Default
	}
	lang, valid := ParseLanguage(raw)
	if !valid {
		p.log.Warn("invalid stored language", zap.String("value", raw))
		return Default
	}
	return lang
}

func (p *Preferences) SetLanguage(lang Language) error {
	if _, ok := ParseLanguage(string(lang)); !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	if err := p.store.Set(LanguageKey, string(lang)); err != nil {
		return fmt.Errorf("store language: %w", err)
	}
	p.mu.Lock()
	p.last = lang
	p.mu.Unlock()
	return nil
}

// Watch reports language changes made to the store by someone else, such as
// another running instance. fn runs on the watcher goroutine and only when
// the language differs from the last one seen.
func (p *Preferences) Watch(ctx context.Context, fn func(Language)) error {
	w, ok := p.store.(watchable)
	if !ok {
		return ErrWatchUnsupported
	}
	p.mu.Lock()
	p.last = p.Language()
	p.mu.Unlock()
	return w.Watch(ctx, func() {
		lang := p.Language()
		p.mu.Lock()
		changed := lang != p.last
		p.last = lang
		p.mu.Unlock()
		if changed {
			fn(lang)
		}
	})
}
