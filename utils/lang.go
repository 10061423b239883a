package utils

import (
	"fmt"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/score"
)

var bundle *i18n.Bundle

var messageFiles = []string{"en.yaml", "hi.yaml", "ta.yaml"}

func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, f := range messageFiles {
		if _, err := b.LoadMessageFile(path.Join(dir, f)); err != nil {
			return err
		}
	}
	bundle = b
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		return nil
	}
	return i18n.NewLocalizer(bundle, lang)
}

// LocalizeSymptom returns the display name of a catalog entry. The english
// phrase is used when no translation is available.
func LocalizeSymptom(loc *i18n.Localizer, entry schema.SymptomEntry) string {
	if loc == nil {
		return entry.Name
	}

	name, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("symptoms.%s.name", entry.ID),
	})
	if err != nil {
		return entry.Name
	}
	return name
}

// LocalizedCatalog returns the symptom catalog with names in the given language
func LocalizedCatalog(lang string) []schema.SymptomEntry {
	loc := NewLocalizer(lang)

	catalog := score.Catalog()
	for i, e := range catalog {
		catalog[i].Name = LocalizeSymptom(loc, e)
	}
	return catalog
}
