package corpus

import (
	"errors"
	"testing"

	corperrors "github.com/classicalang/corpora/core/errors"
)

func TestDefaultRegistry_AllLanguagesNonEmpty(t *testing.T) {
	reg := DefaultRegistry()

	want := []string{"chinese", "coptic", "greek", "latin", "multilingual", "pali", "sanskrit", "tibetan"}
	got := reg.Languages()
	if len(got) != len(want) {
		t.Fatalf("Languages() returned %d languages, want %d: %v", len(got), len(want), got)
	}
	for i, lang := range want {
		if got[i] != lang {
			t.Errorf("Languages()[%d] = %q, want %q", i, got[i], lang)
		}
	}

	for _, lang := range want {
		descriptors, err := reg.DescriptorsFor(lang)
		if err != nil {
			t.Errorf("DescriptorsFor(%q) failed: %v", lang, err)
			continue
		}
		if len(descriptors) == 0 {
			t.Errorf("DescriptorsFor(%q) returned empty list", lang)
		}
	}
}

func TestDefaultRegistry_UniqueNames(t *testing.T) {
	reg := DefaultRegistry()

	for _, lang := range reg.Languages() {
		descriptors, err := reg.DescriptorsFor(lang)
		if err != nil {
			t.Fatalf("DescriptorsFor(%q) failed: %v", lang, err)
		}
		seen := make(map[string]bool, len(descriptors))
		for _, d := range descriptors {
			if seen[d.Name] {
				t.Errorf("language %q has duplicate corpus name %q", lang, d.Name)
			}
			seen[d.Name] = true
			if d.Name == "" {
				t.Errorf("language %q has a descriptor with empty name", lang)
			}
			if d.Location != Remote && d.Location != Local {
				t.Errorf("corpus %q has invalid location %q", d.Name, d.Location)
			}
			if d.Type == "" {
				t.Errorf("corpus %q has empty type", d.Name)
			}
		}
	}
}

func TestDescriptorsFor_UnsupportedLanguage(t *testing.T) {
	reg := DefaultRegistry()

	for _, lang := range []string{"klingon", "LATIN", "", "english"} {
		_, err := reg.DescriptorsFor(lang)
		if !errors.Is(err, corperrors.ErrUnsupportedLanguage) {
			t.Errorf("DescriptorsFor(%q) error = %v, want ErrUnsupportedLanguage", lang, err)
		}
	}
}

func TestResolve(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name         string
		language     string
		corpus       string
		wantLocation Location
		wantType     string
		wantErr      error
	}{
		{
			name:         "latin perseus texts",
			language:     "latin",
			corpus:       "latin_text_perseus",
			wantLocation: Remote,
			wantType:     "text",
		},
		{
			name:         "legacy local corpus",
			language:     "greek",
			corpus:       "tlg",
			wantLocation: Local,
			wantType:     "text",
		},
		{
			name:     "unknown corpus",
			language: "latin",
			corpus:   "latin_text_nonesuch",
			wantErr:  corperrors.ErrUnknownCorpus,
		},
		{
			name:     "unsupported language",
			language: "klingon",
			corpus:   "anything",
			wantErr:  corperrors.ErrUnsupportedLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := reg.Resolve(tt.language, tt.corpus)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() failed: %v", err)
			}
			if d.Name != tt.corpus {
				t.Errorf("Resolve() name = %q, want %q", d.Name, tt.corpus)
			}
			if d.Location != tt.wantLocation {
				t.Errorf("Resolve() location = %q, want %q", d.Location, tt.wantLocation)
			}
			if d.Type != tt.wantType {
				t.Errorf("Resolve() type = %q, want %q", d.Type, tt.wantType)
			}
		})
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	reg := Registry{
		"latin": {
			{Name: "dup", Location: Remote, Type: "text"},
			{Name: "dup", Location: Local, Type: "treebank"},
		},
	}

	d, err := reg.Resolve("latin", "dup")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if d.Location != Remote || d.Type != "text" {
		t.Errorf("Resolve() returned %+v, want the first descriptor", d)
	}
}

func TestDefaultRegistry_CopyIsIsolated(t *testing.T) {
	a := DefaultRegistry()
	a["latin"][0].Name = "mutated"

	b := DefaultRegistry()
	if b["latin"][0].Name == "mutated" {
		t.Error("mutating one DefaultRegistry copy affected another")
	}
}
