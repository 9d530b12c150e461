package workload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

func TestParseSequence_ValidInputs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []trace.PageID
	}{
		{"comma", "1,2,3", []trace.PageID{1, 2, 3}},
		{"comma with spaces", " 7, 0 ,1 ", []trace.PageID{7, 0, 1}},
		{"whitespace", "4 5\t6\n7", []trace.PageID{4, 5, 6, 7}},
		{"empty tokens skipped", "1,,2,", []trace.PageID{1, 2}},
		{"empty", "", []trace.PageID{}},
		{"repeats", "1,1,1", []trace.PageID{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSequence(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSequence_RejectsMalformedTokens(t *testing.T) {
	for _, text := range []string{"1,a,3", "1,2.5", "-1,2", "x"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseSequence(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedSequence))
		})
	}
}

func TestParseSequence_ErrorNamesTokenPosition(t *testing.T) {
	_, err := ParseSequence("1,2,oops")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token 3")
	assert.Contains(t, err.Error(), `"oops"`)
}

func TestFormatSequence_RoundTrip(t *testing.T) {
	refs := []trace.PageID{3, 1, 4, 1, 5}
	assert.Equal(t, "3,1,4,1,5", FormatSequence(refs, ","))
	got, err := ParseSequence(FormatSequence(refs, " "))
	require.NoError(t, err)
	assert.Equal(t, refs, got)
}

func TestReadSequenceCSV_FirstRecordOnly(t *testing.T) {
	got, err := ReadSequenceCSV(strings.NewReader("1, 2, 3\n9,9,9\n"))
	require.NoError(t, err)
	assert.Equal(t, []trace.PageID{1, 2, 3}, got)
}

func TestReadSequenceCSV_Empty(t *testing.T) {
	got, err := ReadSequenceCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadSequenceCSV_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seq.csv")
	require.NoError(t, os.WriteFile(path, []byte("7,0,1,2,0\n"), 0644))

	got, err := LoadSequenceCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []trace.PageID{7, 0, 1, 2, 0}, got)
}

func TestLoadSequenceCSV_Errors(t *testing.T) {
	_, err := LoadSequenceCSV("")
	assert.Error(t, err)

	_, err = LoadSequenceCSV("/nonexistent/seq.csv")
	assert.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,two,3\n"), 0644))
	_, err = LoadSequenceCSV(path)
	assert.True(t, errors.Is(err, ErrMalformedSequence))
}

func TestRandomSequence_DeterministicAndBounded(t *testing.T) {
	// GIVEN the same seed twice
	a, err := RandomSequenceFromSeed(7, DefaultRandomLength, DefaultRandomMaxPage)
	require.NoError(t, err)
	b, err := RandomSequenceFromSeed(7, DefaultRandomLength, DefaultRandomMaxPage)
	require.NoError(t, err)

	// THEN the sequences are identical and within range
	assert.Equal(t, a, b)
	assert.Len(t, a, 15)
	for _, p := range a {
		assert.GreaterOrEqual(t, int(p), 0)
		assert.LessOrEqual(t, int(p), 9)
	}
}

func TestRandomSequence_InvalidArgs(t *testing.T) {
	_, err := RandomSequenceFromSeed(1, -1, 9)
	assert.Error(t, err)
	_, err = RandomSequenceFromSeed(1, 5, -1)
	assert.Error(t, err)

	zero, err := RandomSequenceFromSeed(1, 0, 9)
	require.NoError(t, err)
	assert.Empty(t, zero)
}
