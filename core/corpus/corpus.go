// Package corpus defines corpus descriptors and the per-language registry
// of acquirable corpora.
package corpus

import (
	"sort"

	"github.com/classicalang/corpora/core/errors"
)

// Location identifies where a corpus is sourced from.
type Location string

const (
	// Remote corpora are cloned from a hosted repository.
	Remote Location = "remote"
	// Local corpora are imported from a caller-supplied directory.
	Local Location = "local"
)

// Descriptor is a registry record for a single corpus.
type Descriptor struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
	Type     string   `json:"type"`
}

// Registry maps a language identifier to its ordered descriptor list.
// Registries are immutable after construction; lookups never mutate.
type Registry map[string][]Descriptor

// Languages returns the registry's supported languages, sorted.
func (r Registry) Languages() []string {
	langs := make([]string, 0, len(r))
	for lang := range r {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Supports reports whether the language has a registry entry.
func (r Registry) Supports(language string) bool {
	_, ok := r[language]
	return ok
}

// DescriptorsFor returns the descriptor list for a language.
func (r Registry) DescriptorsFor(language string) ([]Descriptor, error) {
	descriptors, ok := r[language]
	if !ok {
		return nil, errors.NewUnsupportedLanguage(language)
	}
	return descriptors, nil
}

// Resolve finds a corpus descriptor by name within a language's list.
// First match wins if duplicates exist.
func (r Registry) Resolve(language, corpusName string) (Descriptor, error) {
	descriptors, err := r.DescriptorsFor(language)
	if err != nil {
		return Descriptor{}, err
	}
	for _, d := range descriptors {
		if d.Name == corpusName {
			return d, nil
		}
	}
	return Descriptor{}, errors.NewUnknownCorpus(language, corpusName)
}
