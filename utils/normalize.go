package utils

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/ai4health/triage-api/score"
)

var (
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}\s-]+`)
	whitespaces = regexp.MustCompile(`\s+`)
)

// NormalizeText folds compatibility characters, lower-cases the text and
// replaces punctuation with spaces. Hyphens are kept.
func NormalizeText(text string) string {
	t := norm.NFKC.String(text)
	t = cases.Lower(language.Und).String(t)
	t = punctuation.ReplaceAllString(t, " ")
	t = whitespaces.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// catalogPhrases is sorted by length so that "moderate chest pain" wins
// over "chest pain"
var catalogPhrases []string

func init() {
	for _, e := range score.Catalog() {
		catalogPhrases = append(catalogPhrases, e.Phrase)
	}
	sort.SliceStable(catalogPhrases, func(i, j int) bool {
		return len(catalogPhrases[i]) > len(catalogPhrases[j])
	})
}

type phraseMatch struct {
	phrase string
	start  int
}

// SymptomsFromText turns a free text complaint into a symptom list for the
// scorer. Known phrases are extracted in the order they appear; a phrase
// never overlaps a longer one already taken. When nothing is recognized the
// normalized text itself is returned as the only element.
func SymptomsFromText(text string) []string {
	normalized := NormalizeText(text)
	if normalized == "" {
		return []string{}
	}

	// hyphenated spellings such as "sore-throat" match the catalog phrase
	words := whitespaces.ReplaceAllString(strings.ReplaceAll(normalized, "-", " "), " ")
	padded := " " + strings.TrimSpace(words) + " "
	covered := make([]bool, len(padded))
	matches := make([]phraseMatch, 0)

	for _, phrase := range catalogPhrases {
		needle := " " + phrase + " "
		offset := 0
		for {
			i := strings.Index(padded[offset:], needle)
			if i < 0 {
				break
			}
			start := offset + i + 1
			end := start + len(phrase)
			if !anyCovered(covered[start:end]) {
				for k := start; k < end; k++ {
					covered[k] = true
				}
				matches = append(matches, phraseMatch{phrase: phrase, start: start})
			}
			offset = end
		}
	}

	if len(matches) == 0 {
		return []string{normalized}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	symptoms := make([]string, len(matches))
	for i, m := range matches {
		symptoms[i] = m.phrase
	}
	return symptoms
}

func anyCovered(covered []bool) bool {
	for _, c := range covered {
		if c {
			return true
		}
	}
	return false
}
