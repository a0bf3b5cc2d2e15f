// Package gitsync brings remote-hosted corpora to a current state on disk
// using a clone-if-absent, pull-if-present protocol.
package gitsync

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/classicalang/corpora/internal/logging"
)

// Action identifies which sync transition was attempted.
type Action string

const (
	// ActionCloned is the first acquisition of a corpus.
	ActionCloned Action = "cloned"
	// ActionUpdated is a pull on an already-present corpus.
	ActionUpdated Action = "updated"
)

// Spec describes one corpus synchronization request.
type Spec struct {
	Language string
	Corpus   string
	URL      string
	Dir      string
	Sentinel string
}

// Outcome reports what a sync attempt did. Err is non-nil when the clone
// or pull failed; the engine never escalates transport failures beyond
// this report.
type Outcome struct {
	Action   Action
	UpToDate bool
	Err      error
}

// Failed reports whether the attempted transition did not complete.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Client abstracts the version-control operations the engine drives.
type Client interface {
	// Clone performs a shallow clone of url into dir.
	Clone(ctx context.Context, url, dir string, progress io.Writer) error
	// Pull fast-forwards the working copy at dir from its origin remote.
	// It reports true when the copy was already current.
	Pull(ctx context.Context, dir string, progress io.Writer) (upToDate bool, err error)
}

// Engine decides between clone and pull per corpus and drives a Client.
type Engine struct {
	client   Client
	progress io.Writer
}

// Option configures an Engine.
type Option func(*Engine)

// WithClient replaces the default go-git client.
func WithClient(c Client) Option {
	return func(e *Engine) { e.client = c }
}

// WithProgress sets the writer receiving transfer progress lines.
func WithProgress(w io.Writer) Option {
	return func(e *Engine) { e.progress = w }
}

// NewEngine returns an Engine backed by go-git, streaming progress to the
// debug log unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		client: goGitClient{},
		progress: NewLineWriter(func(line string) {
			logging.Debug("sync_progress", "line", line)
		}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Sync brings the corpus described by spec to a current state. A missing
// sentinel file means first acquisition (clone); a present one means
// update (pull). Transport failures are logged and reported in the
// Outcome, never returned as an error, so a transient network failure
// cannot crash the caller. State on disk is unchanged by a failure.
func (e *Engine) Sync(ctx context.Context, spec Spec) Outcome {
	if _, err := os.Stat(spec.Sentinel); err != nil {
		return e.clone(ctx, spec)
	}
	return e.pull(ctx, spec)
}

func (e *Engine) clone(ctx context.Context, spec Spec) Outcome {
	if err := os.MkdirAll(filepath.Dir(spec.Dir), 0755); err != nil {
		logging.CorpusSync(string(ActionCloned), spec.Language, spec.Corpus, spec.URL, err)
		return Outcome{Action: ActionCloned, Err: err}
	}

	logging.Info("cloning corpus", "corpus", spec.Corpus, "url", spec.URL, "dir", spec.Dir)
	err := e.client.Clone(ctx, spec.URL, spec.Dir, e.progress)
	logging.CorpusSync(string(ActionCloned), spec.Language, spec.Corpus, spec.URL, err)
	return Outcome{Action: ActionCloned, Err: err}
}

func (e *Engine) pull(ctx context.Context, spec Spec) Outcome {
	logging.Info("pulling latest corpus revision", "corpus", spec.Corpus, "url", spec.URL, "dir", spec.Dir)
	upToDate, err := e.client.Pull(ctx, spec.Dir, e.progress)
	logging.CorpusSync(string(ActionUpdated), spec.Language, spec.Corpus, spec.URL, err)
	return Outcome{Action: ActionUpdated, UpToDate: upToDate, Err: err}
}
