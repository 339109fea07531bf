// Package i18n holds the interface languages, their text direction, the
// translation tables and the persisted language preference.
package i18n

type Language string

const (
	English Language = "en"
	Persian Language = "fa"

	Default = English
)

var Supported = []Language{English, Persian}

func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case English, Persian:
		return Language(s), true
	}
	return "", false
}

type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

func DirectionOf(lang Language) Direction {
	if lang == Persian {
		return RTL
	}
	return LTR
}

func (l Language) Direction() Direction { return DirectionOf(l) }
