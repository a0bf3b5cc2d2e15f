// Package localcopy imports caller-supplied corpus directories into the
// managed originals staging area.
package localcopy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/classicalang/corpora/internal/archive"
	"github.com/classicalang/corpora/internal/fileutil"
	"github.com/classicalang/corpora/internal/logging"
)

// expectedDirNames maps the legacy corpus identifiers to the source
// directory basename each vendor distribution uses.
var expectedDirNames = map[string]string{
	"phi5": "PHI5",
	"phi7": "PHI7",
	"tlg":  "TLG_E",
}

// IsLegacy reports whether the corpus is one of the recognized legacy
// local corpora that receive staging and overwrite semantics.
func IsLegacy(corpus string) bool {
	_, ok := expectedDirNames[corpus]
	return ok
}

// ExpectedDirName returns the conventional source directory basename for a
// legacy corpus.
func ExpectedDirName(corpus string) (string, bool) {
	name, ok := expectedDirNames[corpus]
	return name, ok
}

// Engine stages legacy local corpora under the originals directory.
type Engine struct {
	// OriginalsDir is the staging directory, <root>/originals.
	OriginalsDir string
}

// Import copies the corpus at localPath into the staging area, replacing
// any previous import of the same corpus. The returned path is the
// destination directory. A source naming-convention mismatch is logged
// but does not block the import. Archive sources (.tar.gz/.tar.xz) are
// expanded into the destination instead of copied verbatim.
func (e Engine) Import(corpus, localPath string) (string, error) {
	localPath = trimTrailingSeparators(localPath)

	if want, ok := expectedDirNames[corpus]; ok {
		if got := sourceLeafName(localPath); got != want {
			logging.Warn("source directory name does not match convention",
				"corpus", corpus, "want", want, "got", got)
		}
	}

	if err := os.MkdirAll(e.OriginalsDir, 0755); err != nil {
		return "", fmt.Errorf("create originals directory: %w", err)
	}

	dest := filepath.Join(e.OriginalsDir, corpus)

	// Destructive overwrite: a re-import replaces the staged tree entirely.
	if _, err := os.Stat(dest); err == nil {
		if err := os.RemoveAll(dest); err != nil {
			return "", fmt.Errorf("remove previous import: %w", err)
		}
		logging.Info("removed previous import", "corpus", corpus, "path", dest)
	}

	if archive.IsArchivePath(localPath) {
		if err := os.MkdirAll(dest, 0755); err != nil {
			return "", fmt.Errorf("create destination: %w", err)
		}
		if err := archive.ExtractTo(localPath, dest); err != nil {
			return "", fmt.Errorf("extract archive: %w", err)
		}
	} else {
		if err := fileutil.CopyDir(localPath, dest); err != nil {
			return "", fmt.Errorf("copy corpus: %w", err)
		}
	}

	logging.CorpusCopy(corpus, localPath, dest)
	return dest, nil
}

func trimTrailingSeparators(path string) string {
	return strings.TrimRight(path, "/"+string(filepath.Separator))
}

// sourceLeafName returns the basename used for the naming-convention
// check, with any archive suffix stripped so PHI5.tar.gz passes as PHI5.
func sourceLeafName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".tar.gz")
	base = strings.TrimSuffix(base, ".tar.xz")
	return base
}
