// Package i18n holds the English/German catalogs used for column headers,
// filter labels and character field values.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

var (
	English = language.English
	German  = language.German
)

//go:embed locales/*.yaml
var localesFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Dictionary maps lowercase English terms to their display string per
// language. English is the fallback language.
type Dictionary struct {
	catalogs map[string]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
}

func Load() (*Dictionary, error) {
	return LoadFromFS(localesFS)
}

func MustLoad() *Dictionary {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

func LoadFromFS(fsys fs.FS) (*Dictionary, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	sort.Strings(paths)

	d := &Dictionary{catalogs: map[string]map[string]string{}}
	var codes []string
	for _, path := range paths {
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		code := Code(tag)
		if _, dup := d.catalogs[code]; dup {
			return nil, fmt.Errorf("catalog %s: locale %q defined twice", path, code)
		}
		messages := make(map[string]string, len(file.Messages))
		for key, value := range file.Messages {
			messages[normalize(key)] = value
		}
		d.catalogs[code] = messages
		codes = append(codes, code)
	}

	if _, ok := d.catalogs[Code(English)]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined", Code(English))
	}
	// the matcher falls back to its first tag
	d.tags = []language.Tag{English}
	for _, code := range codes {
		if code != Code(English) {
			d.tags = append(d.tags, language.Make(code))
		}
	}
	d.matcher = language.NewMatcher(d.tags)
	return d, nil
}

// Translate returns the display string for a data value such as "Alive" or
// "Human". Values without an entry are returned unchanged.
func (d *Dictionary) Translate(lang language.Tag, value string) string {
	if translated, ok := d.lookup(lang, value); ok {
		return translated
	}
	return value
}

// Label returns a UI label; a missing label renders as its key.
func (d *Dictionary) Label(lang language.Tag, key string) string {
	if label, ok := d.Lookup(lang, key); ok {
		return label
	}
	return key
}

// Lookup resolves a UI label, falling back to English.
func (d *Dictionary) Lookup(lang language.Tag, key string) (string, bool) {
	if label, ok := d.lookup(lang, key); ok {
		return label, true
	}
	return d.lookup(English, key)
}

func (d *Dictionary) lookup(lang language.Tag, key string) (string, bool) {
	catalog, ok := d.catalogs[Code(lang)]
	if !ok {
		return "", false
	}
	value, ok := catalog[normalize(key)]
	return value, ok
}

// Match resolves a user supplied language such as "de-AT" or "de_DE.UTF-8"
// to a supported language.
func (d *Dictionary) Match(s string) language.Tag {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	tag, err := language.Parse(s)
	if err != nil {
		return d.tags[0]
	}
	_, index, _ := d.matcher.Match(tag)
	return d.tags[index]
}

func (d *Dictionary) Languages() []language.Tag {
	out := make([]language.Tag, len(d.tags))
	copy(out, d.tags)
	return out
}

// Code returns the two letter base code, "en" or "de".
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// DisplayName names a language in itself, e.g. "Deutsch".
func DisplayName(tag language.Tag) string {
	return cases.Title(tag).String(display.Self.Name(tag))
}

func normalize(key string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(key))
}
