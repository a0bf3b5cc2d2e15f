// Package inspect examines an acquired corpus directory and reports
// whether the acquisition produced a usable tree: file census, optional
// content digests, and well-formedness checks for the TEI/XML documents
// text corpora consist of.
package inspect

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/zeebo/blake3"
)

// titleQuery extracts document titles from TEI headers and plain XML alike.
var titleQuery = xpath.MustCompile("//title")

// Options controls which checks Inspect performs.
type Options struct {
	// Digests enables BLAKE3 content digests per file.
	Digests bool
	// MaxTitles caps the number of extracted XML titles (0 = 50).
	MaxTitles int
}

// XMLIssue describes one malformed XML document.
type XMLIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Report summarizes an inspected corpus directory.
type Report struct {
	Files        int               `json:"files"`
	Bytes        int64             `json:"bytes"`
	XMLFiles     int               `json:"xml_files"`
	MalformedXML []XMLIssue        `json:"malformed_xml,omitempty"`
	Titles       []string          `json:"titles,omitempty"`
	Digests      map[string]string `json:"digests,omitempty"`
}

// OK reports whether every XML document in the corpus was well-formed.
func (r Report) OK() bool {
	return len(r.MalformedXML) == 0
}

// Inspect walks the corpus rooted at dir and builds a Report.
func Inspect(dir string, opts Options) (Report, error) {
	maxTitles := opts.MaxTitles
	if maxTitles <= 0 {
		maxTitles = 50
	}

	report := Report{}
	if opts.Digests {
		report.Digests = make(map[string]string)
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Version-control internals are not corpus content.
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		report.Files++
		report.Bytes += info.Size()

		var data []byte
		if opts.Digests || isXML(path) {
			data, err = os.ReadFile(path)
			if err != nil {
				return err
			}
		}

		if opts.Digests {
			sum := blake3.Sum256(data)
			report.Digests[rel] = hex.EncodeToString(sum[:])
		}

		if isXML(path) {
			report.XMLFiles++
			doc, err := xmlquery.Parse(strings.NewReader(string(data)))
			if err != nil {
				report.MalformedXML = append(report.MalformedXML, XMLIssue{Path: rel, Message: err.Error()})
				return nil
			}
			if len(report.Titles) < maxTitles {
				for _, node := range xmlquery.QuerySelectorAll(doc, titleQuery) {
					title := strings.TrimSpace(node.InnerText())
					if title == "" {
						continue
					}
					report.Titles = append(report.Titles, title)
					if len(report.Titles) >= maxTitles {
						break
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return Report{}, fmt.Errorf("inspect %s: %w", dir, err)
	}
	return report, nil
}

func isXML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xml")
}
