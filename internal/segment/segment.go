// Package segment provides the word segmenters used for hot-word ranking.
//
// Two backends are available: "gse", a dictionary-based Chinese segmenter
// (the default), and "bleve", which reuses Bleve's CJK analyzer and emits
// overlapping bigrams. Both are deterministic for identical input.
package segment

import (
	"fmt"
	"strings"

	"github.com/sjzar/chatrecap/internal/analysis"
)

const (
	NameGSE   = "gse"
	NameBleve = "bleve"
)

// New returns the segmenter registered under name.
func New(name string) (analysis.Segmenter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameGSE:
		return NewGSE()
	case NameBleve:
		return NewBleve()
	default:
		return nil, fmt.Errorf("unknown segmenter %q", name)
	}
}
