package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/classicalang/corpora/internal/catalog"
)

// Test helper functions

func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func resetCLI(t *testing.T, dataRoot string) {
	t.Helper()
	prevRoot, prevCatalog := CLI.DataRoot, CLI.Catalog
	CLI.DataRoot = dataRoot
	CLI.Catalog = catalogOff
	t.Cleanup(func() {
		CLI.DataRoot = prevRoot
		CLI.Catalog = prevCatalog
	})
}

func TestCatalogPath(t *testing.T) {
	tests := []struct {
		name     string
		dataRoot string
		flag     string
		want     string
	}{
		{
			name:     "default under data root",
			dataRoot: "/data",
			flag:     "",
			want:     filepath.Join("/data", "imports.db"),
		},
		{
			name:     "explicit path",
			dataRoot: "/data",
			flag:     "/tmp/imports.db",
			want:     "/tmp/imports.db",
		},
		{
			name:     "disabled",
			dataRoot: "/data",
			flag:     "off",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalogPath(tt.dataRoot, tt.flag); got != tt.want {
				t.Errorf("catalogPath(%q, %q) = %q, want %q", tt.dataRoot, tt.flag, got, tt.want)
			}
		})
	}
}

func TestLanguagesCmd(t *testing.T) {
	cmd := &LanguagesCmd{}
	if err := cmd.Run(); err != nil {
		t.Fatalf("LanguagesCmd.Run failed: %v", err)
	}
}

func TestListCmd(t *testing.T) {
	cmd := &ListCmd{Language: "latin"}
	if err := cmd.Run(); err != nil {
		t.Fatalf("ListCmd.Run failed: %v", err)
	}
}

func TestListCmd_UnsupportedLanguage(t *testing.T) {
	cmd := &ListCmd{Language: "klingon"}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}

func TestImportCmd_UnknownCorpus(t *testing.T) {
	resetCLI(t, t.TempDir())

	cmd := &ImportCmd{Name: "latin_text_nonesuch", Language: "latin"}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for unknown corpus")
	}
}

func TestImportCmd_LocalCorpus(t *testing.T) {
	dataRoot := t.TempDir()
	resetCLI(t, dataRoot)

	srcDir := filepath.Join(t.TempDir(), "PHI5")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		t.Fatalf("mkdir source: %v", err)
	}
	createTestFile(t, srcDir, "AUTHTAB.DIR", "index")

	cmd := &ImportCmd{Name: "phi5", Language: "latin", LocalPath: srcDir}
	if err := cmd.Run(); err != nil {
		t.Fatalf("ImportCmd.Run failed: %v", err)
	}

	staged := filepath.Join(dataRoot, "originals", "phi5", "AUTHTAB.DIR")
	if _, err := os.Stat(staged); err != nil {
		t.Errorf("staged file missing: %v", err)
	}
}

func TestImportCmd_LocalCorpusRequiresPath(t *testing.T) {
	resetCLI(t, t.TempDir())

	cmd := &ImportCmd{Name: "phi5", Language: "latin"}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error when local path is omitted for a legacy corpus")
	}
}

func TestImportCmd_RecordsInCatalog(t *testing.T) {
	dataRoot := t.TempDir()
	resetCLI(t, dataRoot)
	CLI.Catalog = "" // default location under the data root

	srcDir := filepath.Join(t.TempDir(), "TLG_E")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		t.Fatalf("mkdir source: %v", err)
	}
	createTestFile(t, srcDir, "AUTHTAB.DIR", "index")

	cmd := &ImportCmd{Name: "tlg", Language: "greek", LocalPath: srcDir}
	if err := cmd.Run(); err != nil {
		t.Fatalf("ImportCmd.Run failed: %v", err)
	}

	store, err := catalog.Open(filepath.Join(dataRoot, "imports.db"))
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer store.Close()

	last, err := store.LastStatus(context.Background(), "greek", "tlg")
	if err != nil {
		t.Fatalf("LastStatus failed: %v", err)
	}
	if last.Action != "copied" || last.Status != "ok" {
		t.Errorf("catalog entry = %+v, want copied/ok", last)
	}
}

func TestStatusCmd(t *testing.T) {
	dataRoot := t.TempDir()
	resetCLI(t, dataRoot)
	CLI.Catalog = filepath.Join(dataRoot, "imports.db")

	store, err := catalog.Open(CLI.Catalog)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	if err := store.Record(context.Background(), catalog.Entry{
		Language: "latin", Corpus: "latin_text_perseus", Action: "cloned", Status: "ok",
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	store.Close()

	cmd := &StatusCmd{Language: "latin", Limit: 20}
	if err := cmd.Run(); err != nil {
		t.Fatalf("StatusCmd.Run failed: %v", err)
	}
}

func TestStatusCmd_DisabledCatalog(t *testing.T) {
	resetCLI(t, t.TempDir())

	cmd := &StatusCmd{Language: "latin", Limit: 20}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error when catalog recording is disabled")
	}
}

func TestInspectCmd(t *testing.T) {
	dataRoot := t.TempDir()
	resetCLI(t, dataRoot)

	// Materialize a fake acquired corpus at the managed path.
	corpusDir := filepath.Join(dataRoot, "latin", "text", "latin_text_perseus")
	if err := os.MkdirAll(corpusDir, 0755); err != nil {
		t.Fatalf("mkdir corpus: %v", err)
	}
	createTestFile(t, corpusDir, "README.md", "# latin_text_perseus")
	createTestFile(t, corpusDir, "aeneid.xml",
		`<TEI><teiHeader><fileDesc><titleStmt><title>Aeneid</title></titleStmt></fileDesc></teiHeader></TEI>`)

	cmd := &InspectCmd{Name: "latin_text_perseus", Language: "latin", Titles: 10}
	if err := cmd.Run(); err != nil {
		t.Fatalf("InspectCmd.Run failed: %v", err)
	}
}

func TestInspectCmd_MalformedCorpusFails(t *testing.T) {
	dataRoot := t.TempDir()
	resetCLI(t, dataRoot)

	corpusDir := filepath.Join(dataRoot, "latin", "text", "latin_text_perseus")
	if err := os.MkdirAll(corpusDir, 0755); err != nil {
		t.Fatalf("mkdir corpus: %v", err)
	}
	createTestFile(t, corpusDir, "broken.xml", "<TEI><title>unclosed")

	cmd := &InspectCmd{Name: "latin_text_perseus", Language: "latin", Titles: 10}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for corpus with malformed XML")
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := &VersionCmd{}
	if err := cmd.Run(); err != nil {
		t.Fatalf("VersionCmd.Run failed: %v", err)
	}
}
