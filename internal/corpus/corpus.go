// Package corpus loads the texts that searches and benchmarks run over.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/schuko/tracing"
)

// ErrUnreadable is returned when a corpus file cannot be read.
var ErrUnreadable = errors.New("corpus unreadable")

// tracer writes to trace with key 'corpus'
func tracer() tracing.Trace {
	return tracing.Select("corpus")
}

// Corpus is a named text, loaded whole into memory.
type Corpus struct {
	Name string // base name of the file it was read from
	Text []byte
}

// ReadAll reads the whole file at path.
func ReadAll(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	return data, nil
}

// Load reads every path into a Corpus, in order. It stops at the first
// unreadable file.
func Load(paths ...string) ([]Corpus, error) {
	corpora := make([]Corpus, 0, len(paths))
	for _, path := range paths {
		text, err := ReadAll(path)
		if err != nil {
			tracer().Errorf("cannot load corpus: %v", err)
			return nil, err
		}
		tracer().Infof("loaded corpus %s (%d bytes)", path, len(text))
		corpora = append(corpora, Corpus{Name: filepath.Base(path), Text: text})
	}
	return corpora, nil
}
