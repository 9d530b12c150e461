// Package workload provides reference-sequence sources for the simulator:
// text parsing, CSV import, seeded random generation and YAML run specs.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// ErrMalformedSequence is returned when a sequence token is not a page identifier.
var ErrMalformedSequence = errors.New("malformed reference sequence")

// ParseSequence parses comma- and/or whitespace-separated page identifiers.
// Empty tokens are skipped; any token that is not a non-negative integer is rejected.
func ParseSequence(text string) ([]trace.PageID, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	refs := make([]trace.PageID, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: token %d (%q) is not a non-negative integer", ErrMalformedSequence, i+1, tok)
		}
		refs = append(refs, trace.PageID(v))
	}
	return refs, nil
}

// FormatSequence joins page identifiers with sep.
func FormatSequence(refs []trace.PageID, sep string) string {
	parts := make([]string, len(refs))
	for i, p := range refs {
		parts[i] = strconv.Itoa(int(p))
	}
	return strings.Join(parts, sep)
}

// ReadSequenceCSV reads a reference sequence from the first record of a CSV stream.
// Later records are ignored. An empty stream yields an empty sequence.
func ReadSequenceCSV(r io.Reader) ([]trace.PageID, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	record, err := reader.Read()
	if err == io.EOF {
		return []trace.PageID{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading sequence record: %w", err)
	}
	return ParseSequence(strings.Join(record, ","))
}

// LoadSequenceCSV reads a reference sequence from the first line of a CSV file.
func LoadSequenceCSV(path string) ([]trace.PageID, error) {
	if path == "" {
		return nil, fmt.Errorf("sequence file path must not be empty")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sequence file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	refs, err := ReadSequenceCSV(file)
	if err != nil {
		return nil, fmt.Errorf("sequence file %s: %w", path, err)
	}
	return refs, nil
}
