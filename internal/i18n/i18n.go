package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Language язык интерфейса
type Language int

const (
	English Language = iota
	Russian
)

// ParseLanguage разбирает значение LANGUAGE из настроек
func ParseLanguage(name string) Language {
	if strings.EqualFold(strings.TrimSpace(name), "Russian") {
		return Russian
	}
	return English
}

// Name имя языка в том виде, в каком оно хранится в настройках
func (l Language) Name() string {
	if l == Russian {
		return "Russian"
	}
	return "English"
}

// Tag языковой тег для x/text
func (l Language) Tag() language.Tag {
	if l == Russian {
		return language.Russian
	}
	return language.English
}

// messageCatalog общий для всех Catalog набор переводов
var messageCatalog = mustBuild()

// build собирает каталог из таблиц messages и plurals
func build() (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, pair := range messages {
		if err := b.SetString(language.English, key, pair[0]); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if err := b.SetString(language.Russian, key, pair[1]); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	for key, forms := range plurals {
		for i, tag := range []language.Tag{language.English, language.Russian} {
			if err := b.Set(tag, key, plural.Selectf(1, "%d", forms[i]...)); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return b, nil
}

func mustBuild() *catalog.Builder {
	b, err := build()
	if err != nil {
		panic(err)
	}
	return b
}

// Catalog переводит строки интерфейса; передается явно во все экраны
type Catalog struct {
	lang    Language
	printer *message.Printer
}

// New создает каталог для языка из настроек
func New(name string) *Catalog {
	c := &Catalog{}
	c.SetLanguage(ParseLanguage(name))
	return c
}

// Language текущий язык
func (c *Catalog) Language() Language {
	return c.lang
}

// SetLanguage переключает язык
func (c *Catalog) SetLanguage(lang Language) {
	c.lang = lang
	c.printer = message.NewPrinter(lang.Tag(), message.Catalog(messageCatalog))
}

// T строка по ключу; неизвестный ключ возвращается как есть
func (c *Catalog) T(key string) string {
	return c.F(key)
}

// F форматирует строку по ключу с учетом форм множественного числа
func (c *Catalog) F(key string, args ...any) string {
	if c == nil || c.printer == nil {
		return message.NewPrinter(language.English, message.Catalog(messageCatalog)).Sprintf(key, args...)
	}
	return c.printer.Sprintf(key, args...)
}
