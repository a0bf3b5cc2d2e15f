// Package importer is the public entry point for corpus acquisition. An
// Importer validates its language against the registry, resolves corpus
// descriptors, and dispatches to the remote sync or local copy engine.
package importer

import (
	"context"
	"strings"

	"github.com/classicalang/corpora/core/corpus"
	"github.com/classicalang/corpora/core/errors"
	"github.com/classicalang/corpora/internal/catalog"
	"github.com/classicalang/corpora/internal/gitsync"
	"github.com/classicalang/corpora/internal/localcopy"
	"github.com/classicalang/corpora/internal/logging"
	"github.com/classicalang/corpora/internal/paths"
	"github.com/classicalang/corpora/internal/validation"
)

// DefaultBaseURL is the host the remote corpora are cloned from. A corpus
// URL is the base joined with the corpus name plus the repository suffix.
const DefaultBaseURL = "https://github.com/cltk/"

// repoSuffix is appended to the corpus name to form the repository URL.
const repoSuffix = ".git"

// Action identifies what an import attempt did.
type Action string

const (
	// ActionCloned is a first acquisition of a remote corpus.
	ActionCloned Action = "cloned"
	// ActionUpdated is a pull on an already-present remote corpus.
	ActionUpdated Action = "updated"
	// ActionCopied is a local import into the originals staging area.
	ActionCopied Action = "copied"
	// ActionNone means the descriptor required no file operation.
	ActionNone Action = "none"
)

// Status reports whether an attempted action completed.
type Status string

const (
	// StatusOK means the action completed (or none was needed).
	StatusOK Status = "ok"
	// StatusFailed means the action was attempted and did not complete.
	StatusFailed Status = "failed"
)

// ImportResult describes the outcome of one ImportCorpus call. Remote
// transport failures surface here (and in the catalog) rather than as a
// returned error, so callers can observe them without crashing on them.
type ImportResult struct {
	Corpus   string
	Action   Action
	Status   Status
	Path     string
	UpToDate bool
	Err      error
}

// RemoteSyncer is the remote sync engine contract.
type RemoteSyncer interface {
	Sync(ctx context.Context, spec gitsync.Spec) gitsync.Outcome
}

// LocalCopier is the local copy engine contract.
type LocalCopier interface {
	Import(corpus, localPath string) (string, error)
}

// Recorder receives one catalog entry per import attempt.
type Recorder interface {
	Record(ctx context.Context, e catalog.Entry) error
}

// Importer imports corpora for a single validated language. It holds no
// state beyond its configuration; instances are cheap and disposable.
type Importer struct {
	language string
	registry corpus.Registry
	resolver paths.Resolver
	baseURL  string
	syncer   RemoteSyncer
	copier   LocalCopier
	recorder Recorder
}

// Option configures an Importer.
type Option func(*Importer)

// WithRegistry replaces the built-in corpus registry.
func WithRegistry(reg corpus.Registry) Option {
	return func(i *Importer) { i.registry = reg }
}

// WithDataRoot sets the managed data root directory.
func WithDataRoot(root string) Option {
	return func(i *Importer) { i.resolver = paths.NewResolver(root) }
}

// WithBaseURL replaces the default remote host base URL.
func WithBaseURL(base string) Option {
	return func(i *Importer) { i.baseURL = base }
}

// WithRemoteSyncer replaces the default git-backed sync engine.
func WithRemoteSyncer(s RemoteSyncer) Option {
	return func(i *Importer) { i.syncer = s }
}

// WithLocalCopier replaces the default local copy engine.
func WithLocalCopier(c LocalCopier) Option {
	return func(i *Importer) { i.copier = c }
}

// WithRecorder sets the acquisition catalog. Without one, attempts are
// only logged.
func WithRecorder(r Recorder) Option {
	return func(i *Importer) { i.recorder = r }
}

// New constructs an Importer for a language. The language is lowercased
// before validation against the registry's supported set.
func New(language string, opts ...Option) (*Importer, error) {
	imp := &Importer{
		language: strings.ToLower(language),
		registry: corpus.DefaultRegistry(),
		resolver: paths.NewResolver(""),
		baseURL:  DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(imp)
	}
	if !imp.registry.Supports(imp.language) {
		return nil, errors.NewUnsupportedLanguage(imp.language)
	}
	if imp.syncer == nil {
		imp.syncer = gitsync.NewEngine()
	}
	if imp.copier == nil {
		imp.copier = localcopy.Engine{OriginalsDir: imp.resolver.Originals()}
	}
	return imp, nil
}

// Language returns the importer's validated language identifier.
func (i *Importer) Language() string {
	return i.language
}

// ListCorpora returns the corpus names available for the instance's
// language. The registry lookup cannot normally fail after construction;
// a missing entry is surfaced as an unknown-corpus class error.
func (i *Importer) ListCorpora() ([]string, error) {
	descriptors, err := i.registry.DescriptorsFor(i.language)
	if err != nil {
		return nil, &errors.UnknownCorpusError{Language: i.language, Err: err}
	}
	names := make([]string, len(descriptors))
	for idx, d := range descriptors {
		names[idx] = d.Name
	}
	return names, nil
}

// CorpusPath returns the managed directory a corpus materializes at.
func (i *Importer) CorpusPath(corpusName string) (string, error) {
	d, err := i.registry.Resolve(i.language, corpusName)
	if err != nil {
		return "", err
	}
	if d.Location == corpus.Local {
		return i.resolver.Originals(d.Name), nil
	}
	return i.resolver.Corpus(i.language, d.Type, d.Name), nil
}

// ImportCorpus acquires the named corpus. For remote corpora this is a
// shallow clone on first acquisition and a pull thereafter; transport
// failures are reported in the result, not returned. For the legacy local
// corpora a non-empty localPath is required and its contents are staged
// under originals/ with destructive-overwrite semantics; copy failures
// are returned. Other local descriptors are an explicit no-op.
func (i *Importer) ImportCorpus(ctx context.Context, corpusName, localPath string) (ImportResult, error) {
	d, err := i.registry.Resolve(i.language, corpusName)
	if err != nil {
		return ImportResult{Corpus: corpusName}, err
	}

	if d.Location == corpus.Remote {
		return i.importRemote(ctx, d), nil
	}
	return i.importLocal(ctx, d, localPath)
}

func (i *Importer) importRemote(ctx context.Context, d corpus.Descriptor) ImportResult {
	spec := gitsync.Spec{
		Language: i.language,
		Corpus:   d.Name,
		URL:      i.remoteURL(d.Name),
		Dir:      i.resolver.Corpus(i.language, d.Type, d.Name),
		Sentinel: i.resolver.Sentinel(i.language, d.Type, d.Name),
	}
	outcome := i.syncer.Sync(ctx, spec)

	result := ImportResult{
		Corpus:   d.Name,
		Action:   Action(outcome.Action),
		Status:   StatusOK,
		Path:     spec.Dir,
		UpToDate: outcome.UpToDate,
	}
	if outcome.Failed() {
		result.Status = StatusFailed
		result.Err = errors.NewImport(d.Name, syncOperation(outcome.Action), outcome.Err)
	}
	i.record(ctx, result)
	return result
}

func (i *Importer) importLocal(ctx context.Context, d corpus.Descriptor, localPath string) (ImportResult, error) {
	result := ImportResult{Corpus: d.Name}

	if !localcopy.IsLegacy(d.Name) {
		logging.Info("local corpus requires no import step", "language", i.language, "corpus", d.Name)
		result.Action = ActionNone
		result.Status = StatusOK
		i.record(ctx, result)
		return result, nil
	}

	if err := validation.ValidateLocalPath(localPath); err != nil {
		return result, &errors.ValidationError{
			Field:   "local_path",
			Message: "required for local corpus " + d.Name + ": " + err.Error(),
		}
	}

	logging.Info("importing from local path", "corpus", d.Name, "path", localPath)
	dest, err := i.copier.Import(d.Name, localPath)
	if err != nil {
		result.Action = ActionCopied
		result.Status = StatusFailed
		result.Err = err
		i.record(ctx, result)
		return result, errors.NewImport(d.Name, "copy", err)
	}

	result.Action = ActionCopied
	result.Status = StatusOK
	result.Path = dest
	i.record(ctx, result)
	return result, nil
}

func (i *Importer) remoteURL(corpusName string) string {
	return strings.TrimSuffix(i.baseURL, "/") + "/" + corpusName + repoSuffix
}

func (i *Importer) record(ctx context.Context, r ImportResult) {
	if i.recorder == nil {
		return
	}
	entry := catalog.Entry{
		Language: i.language,
		Corpus:   r.Corpus,
		Action:   string(r.Action),
		Status:   string(r.Status),
	}
	if r.Err != nil {
		entry.Error = r.Err.Error()
	}
	if err := i.recorder.Record(ctx, entry); err != nil {
		logging.Warn("failed to record import attempt", "corpus", r.Corpus, "error", err)
	}
}

func syncOperation(a gitsync.Action) string {
	if a == gitsync.ActionUpdated {
		return "pull"
	}
	return "clone"
}
