// Command corpora acquires and synchronizes classical-language corpora.
// It provides commands for listing registries, importing corpora from
// remote repositories or local paths, and inspecting acquired trees.
package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/classicalang/corpora/core/corpus"
	"github.com/classicalang/corpora/core/importer"
	"github.com/classicalang/corpora/internal/catalog"
	"github.com/classicalang/corpora/internal/inspect"
	"github.com/classicalang/corpora/internal/logging"
	"github.com/classicalang/corpora/internal/paths"
)

const version = "0.1.0"

// catalogOff disables acquisition recording when passed to --catalog.
const catalogOff = "off"

// CLI defines the command-line interface for corpora.
var CLI struct {
	// Global flags
	DataRoot  string `name:"data-root" help:"Managed data root directory (default ~/cltk_data)" env:"CORPORA_DATA_ROOT" type:"path"`
	Catalog   string `name:"catalog" help:"Acquisition catalog database path (default <data-root>/imports.db, 'off' disables)"`
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format"`

	Languages LanguagesCmd `cmd:"" help:"List supported languages"`
	List      ListCmd      `cmd:"" help:"List corpora available for a language"`
	Import    ImportCmd    `cmd:"" help:"Import a corpus (clone, update, or local copy)"`
	Status    StatusCmd    `cmd:"" help:"Show recorded import attempts"`
	Inspect   InspectCmd   `cmd:"" help:"Inspect an acquired corpus directory"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// catalogPath resolves the catalog location from the global flags.
// An empty result means recording is disabled.
func catalogPath(dataRoot, flag string) string {
	switch flag {
	case catalogOff:
		return ""
	case "":
		return filepath.Join(paths.NewResolver(dataRoot).Root, "imports.db")
	default:
		return flag
	}
}

// newImporter builds an importer for a language using the global flags.
// The returned cleanup closes the catalog when one was opened.
func newImporter(language string) (*importer.Importer, func(), error) {
	opts := []importer.Option{importer.WithDataRoot(CLI.DataRoot)}
	cleanup := func() {}

	if path := catalogPath(CLI.DataRoot, CLI.Catalog); path != "" {
		store, err := catalog.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog: %w", err)
		}
		opts = append(opts, importer.WithRecorder(store))
		cleanup = func() { store.Close() }
	}

	imp, err := importer.New(language, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return imp, cleanup, nil
}

// LanguagesCmd lists the supported languages.
type LanguagesCmd struct{}

func (c *LanguagesCmd) Run() error {
	for _, lang := range corpus.DefaultRegistry().Languages() {
		fmt.Println(lang)
	}
	return nil
}

// ListCmd lists the corpora available for one language.
type ListCmd struct {
	Language string `required:"" short:"l" help:"Language to list corpora for"`
}

func (c *ListCmd) Run() error {
	imp, err := importer.New(c.Language)
	if err != nil {
		return err
	}
	names, err := imp.ListCorpora()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// ImportCmd imports one corpus for a language.
type ImportCmd struct {
	Name      string `arg:"" help:"Corpus name (see 'corpora list')"`
	Language  string `required:"" short:"l" help:"Language the corpus belongs to"`
	LocalPath string `name:"local-path" help:"Source path, required for local corpora (phi5, phi7, tlg)" type:"path"`
}

func (c *ImportCmd) Run() error {
	imp, cleanup, err := newImporter(c.Language)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := imp.ImportCorpus(context.Background(), c.Name, c.LocalPath)
	if err != nil {
		return err
	}

	switch {
	case result.Status == importer.StatusFailed:
		// Best-effort policy: remote sync failures do not fail the command.
		fmt.Printf("Import of %s did not complete: %v\n", result.Corpus, result.Err)
		fmt.Println("Re-run the command to retry, or check 'corpora status'.")
	case result.Action == importer.ActionNone:
		fmt.Printf("Corpus %s requires no import step.\n", result.Corpus)
	case result.UpToDate:
		fmt.Printf("Corpus %s is already up to date at %s\n", result.Corpus, result.Path)
	default:
		fmt.Printf("Imported %s (%s) to %s\n", result.Corpus, result.Action, result.Path)
	}
	return nil
}

// StatusCmd prints recorded import attempts, newest first.
type StatusCmd struct {
	Name     string `arg:"" optional:"" help:"Corpus name (all corpora when omitted)"`
	Language string `required:"" short:"l" help:"Language to show history for"`
	Limit    int    `default:"20" help:"Maximum entries to show"`
}

func (c *StatusCmd) Run() error {
	path := catalogPath(CLI.DataRoot, CLI.Catalog)
	if path == "" {
		return fmt.Errorf("catalog recording is disabled")
	}
	store, err := catalog.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	entries, err := store.History(context.Background(), strings.ToLower(c.Language), c.Name, c.Limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No import attempts recorded.")
		return nil
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-8s %-7s %s/%s",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Action, e.Status, e.Language, e.Corpus)
		if e.Error != "" {
			line += "  " + e.Error
		}
		fmt.Println(line)
	}
	return nil
}

// InspectCmd inspects an acquired corpus directory.
type InspectCmd struct {
	Name     string `arg:"" help:"Corpus name"`
	Language string `required:"" short:"l" help:"Language the corpus belongs to"`
	Digests  bool   `help:"Compute BLAKE3 content digests per file"`
	Titles   int    `default:"10" help:"Maximum XML titles to print"`
}

func (c *InspectCmd) Run() error {
	imp, err := importer.New(c.Language, importer.WithDataRoot(CLI.DataRoot))
	if err != nil {
		return err
	}
	dir, err := imp.CorpusPath(c.Name)
	if err != nil {
		return err
	}

	report, err := inspect.Inspect(dir, inspect.Options{Digests: c.Digests, MaxTitles: c.Titles})
	if err != nil {
		return err
	}

	fmt.Printf("Corpus: %s\n", c.Name)
	fmt.Printf("  Path: %s\n", dir)
	fmt.Printf("  Files: %d (%d bytes)\n", report.Files, report.Bytes)
	fmt.Printf("  XML documents: %d\n", report.XMLFiles)
	for _, issue := range report.MalformedXML {
		fmt.Printf("  Malformed: %s: %s\n", issue.Path, issue.Message)
	}
	if len(report.Titles) > 0 {
		fmt.Println("  Titles:")
		for _, title := range report.Titles {
			fmt.Printf("    %s\n", title)
		}
	}
	if c.Digests {
		fmt.Printf("  Digests: %d files hashed (BLAKE3)\n", len(report.Digests))
	}
	if !report.OK() {
		return fmt.Errorf("corpus %s has %d malformed XML documents", c.Name, len(report.MalformedXML))
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("corpora %s (catalog driver: %s)\n", version, catalog.DriverType())
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("corpora"),
		kong.Description("Acquire and synchronize classical-language corpora."),
		kong.UsageOnError())

	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
