package i18n

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed phrases.yaml
var builtinPhrases []byte

// Catalog maps language codes to phrase tables
type Catalog struct {
	fallback string
	phrases  map[string]map[string]string
}

// Load parses the built-in phrase catalogue
func Load(fallback string) (*Catalog, error) {
	return Parse(builtinPhrases, fallback)
}

// Parse builds a catalogue from YAML of the form lang -> key -> text
func Parse(data []byte, fallback string) (*Catalog, error) {
	var phrases map[string]map[string]string
	if err := yaml.Unmarshal(data, &phrases); err != nil {
		return nil, fmt.Errorf("failed to parse phrases: %w", err)
	}
	if _, ok := phrases[fallback]; !ok {
		return nil, fmt.Errorf("fallback language %q has no phrases", fallback)
	}
	return &Catalog{fallback: fallback, phrases: phrases}, nil
}

// T returns the phrase for key in lang, falling back to the default
// language and finally to the key itself
func (c *Catalog) T(lang, key string) string {
	if text, ok := c.phrases[lang][key]; ok {
		return text
	}
	if text, ok := c.phrases[c.fallback][key]; ok {
		return text
	}
	return key
}

// Translator binds the catalogue to one language
func (c *Catalog) Translator(lang string) func(key string) string {
	return func(key string) string {
		return c.T(lang, key)
	}
}

// Language picks the first supported language from an Accept-Language header
func (c *Catalog) Language(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		base := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if _, ok := c.phrases[base]; ok {
			return base
		}
	}
	return c.fallback
}
