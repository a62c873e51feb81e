// Package fixture loads the YAML documents the kmerge command reads its
// sequences from:
//
//	sequences:
//	  - [1, 4, 5]
//	  - [1, 3, 4]
//	  - [2, 6]
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/davidvella/kmerge/list"
)

// ErrNoSequences is returned when a document has no sequences key.
var ErrNoSequences = errors.New("fixture: no sequences")

// Fixture is a set of integer sequences.
type Fixture struct {
	Sequences [][]int `yaml:"sequences"`
}

// Decode reads one fixture document from r.
func Decode(r io.Reader) (*Fixture, error) {
	var doc struct {
		Sequences *[][]int `yaml:"sequences"`
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoSequences
		}
		return nil, fmt.Errorf("fixture: failed to decode: %w", err)
	}
	if doc.Sequences == nil {
		return nil, ErrNoSequences
	}
	return &Fixture{Sequences: *doc.Sequences}, nil
}

// Load reads the fixture at path. A path of "-" reads stdin.
func Load(path string) (*Fixture, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: failed to open: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Heads builds one linked sequence per fixture entry. The fixture keeps its
// own copy of the values.
func (f *Fixture) Heads() []*list.Node[int] {
	heads := make([]*list.Node[int], len(f.Sequences))
	for i, s := range f.Sequences {
		heads[i] = list.FromSlice(s)
	}
	return heads
}
