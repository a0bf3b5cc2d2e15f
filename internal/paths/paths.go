// Package paths maps (language, type, corpus) coordinates to directories
// under the managed data root.
package paths

import (
	"os"
	"path/filepath"
)

// SentinelName is the marker file expected at the root of every fully
// acquired remote corpus. A directory without it is treated as absent,
// since an interrupted clone can leave a partial tree behind.
const SentinelName = "README.md"

// OriginalsDir is the staging directory for legacy local imports.
const OriginalsDir = "originals"

// defaultRootDir is the data root directory name under the user's home.
const defaultRootDir = "cltk_data"

// Resolver computes managed corpus paths under a single data root.
type Resolver struct {
	Root string
}

// DefaultRoot returns the default data root (~/cltk_data). If the home
// directory cannot be determined the current directory is used.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultRootDir
	}
	return filepath.Join(home, defaultRootDir)
}

// NewResolver returns a Resolver rooted at root, or at the default root
// when root is empty.
func NewResolver(root string) Resolver {
	if root == "" {
		root = DefaultRoot()
	}
	return Resolver{Root: root}
}

// TypeDir returns the directory holding all corpora of one type for a
// language: <root>/<language>/<type>.
func (r Resolver) TypeDir(language, corpusType string) string {
	return filepath.Join(r.Root, language, corpusType)
}

// Corpus returns the managed directory for a corpus:
// <root>/<language>/<type>/<name>.
func (r Resolver) Corpus(language, corpusType, name string) string {
	return filepath.Join(r.TypeDir(language, corpusType), name)
}

// Sentinel returns the sentinel file path for a corpus.
func (r Resolver) Sentinel(language, corpusType, name string) string {
	return filepath.Join(r.Corpus(language, corpusType, name), SentinelName)
}

// Originals returns a path under the legacy staging directory:
// <root>/originals[/parts...].
func (r Resolver) Originals(parts ...string) string {
	elems := append([]string{r.Root, OriginalsDir}, parts...)
	return filepath.Join(elems...)
}
