package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vkiriako/trigraph/digraph"
)

// DefaultColumn is the state column read when no override is given.
const DefaultColumn = "sub_cot"

// DefaultErrorToken marks rows the discretizer could not classify.
const DefaultErrorToken = "error"

var (
	// ErrEmptyInput indicates the input had no header row.
	ErrEmptyInput = errors.New("tsv: input has no header row")

	// ErrMissingColumn indicates the header lacks a required column.
	// Wrapped errors name the column.
	ErrMissingColumn = errors.New("tsv: required column missing")
)

// Options configures the loader.
type Options struct {
	// Column is the header name of the state column.
	Column string

	// ErrorToken marks state cells to skip; empty cells are always
	// skipped.
	ErrorToken string
}

// DefaultOptions returns the loader defaults matching the original
// export format.
func DefaultOptions() Options {
	return Options{
		Column:     DefaultColumn,
		ErrorToken: DefaultErrorToken,
	}
}

// Option overrides one loader setting.
type Option func(*Options)

// WithColumn selects a different state column.
func WithColumn(name string) Option {
	return func(o *Options) { o.Column = name }
}

// WithErrorToken changes the token marking unclassifiable rows.
func WithErrorToken(tok string) Option {
	return func(o *Options) { o.ErrorToken = tok }
}

// Read parses one trajectory from r. Rows with an error-token or empty
// state cell are dropped and the surrounding valid states are joined
// directly. A file of only invalid rows yields an empty Word, which
// the builder accepts and ignores.
func Read(r io.Reader, opts ...Option) (digraph.Word, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("tsv: read header: %w", err)
	}

	col := -1
	hasTime := false
	for i, name := range header {
		if name == o.Column {
			col = i
		}
		if name == "time" {
			hasTime = true
		}
	}
	if !hasTime {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, "time")
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, o.Column)
	}

	var word digraph.Word
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tsv: read row: %w", err)
		}
		if col >= len(row) {
			continue
		}
		cell := row[col]
		if cell == "" || cell == o.ErrorToken {
			continue
		}
		word = append(word, digraph.State(cell))
	}
	return word, nil
}

// Load reads one trajectory from the file at path.
func Load(path string, opts ...Option) (digraph.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsv: open %s: %w", path, err)
	}
	defer f.Close()

	word, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("tsv: load %s: %w", path, err)
	}
	return word, nil
}
