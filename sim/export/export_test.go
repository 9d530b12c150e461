package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAI141003/VirtualMemoryManager/sim"
	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

var beladyRefs = []trace.PageID{1, 2, 3, 4, 1, 2, 5, 1, 2, 3, 4, 5}

func TestFormatFrames(t *testing.T) {
	assert.Equal(t, "2 3 4", FormatFrames([]trace.PageID{2, 3, 4}, " "))
	assert.Equal(t, "2, 3", FormatFrames([]trace.PageID{2, 3}, ", "))
	assert.Equal(t, "", FormatFrames(nil, " "))
}

func TestWriteComparisonCSV_RepeatedPage(t *testing.T) {
	// GIVEN [1,1,1] with one frame
	result, err := sim.CompareAll(context.Background(), []trace.PageID{1, 1, 1}, 1)
	require.NoError(t, err)

	// WHEN exported
	var buf bytes.Buffer
	require.NoError(t, WriteComparisonCSV(&buf, result))

	// THEN rows follow canonical policy order and step order
	want := strings.Join([]string{
		"Algorithm,Step,Page,Frames,Page Fault",
		"FIFO,1,1,1,Yes",
		"FIFO,2,1,1,No",
		"FIFO,3,1,1,No",
		"LRU,1,1,1,Yes",
		"LRU,2,1,1,No",
		"LRU,3,1,1,No",
		"Optimal,1,1,1,Yes",
		"Optimal,2,1,1,No",
		"Optimal,3,1,1,No",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteComparisonCSV_FramesInPolicyOrder(t *testing.T) {
	result, err := sim.CompareAll(context.Background(), beladyRefs, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteComparisonCSV(&buf, result))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+3*len(beladyRefs))
	assert.Equal(t, ComparisonHeader, rows[0])

	// FIFO step 4 evicts 1 -> frames "2 3 4"
	assert.Equal(t, []string{"FIFO", "4", "4", "2 3 4", "Yes"}, rows[4])
	// LRU step 8 is a hit that moves 1 to the MRU end
	assert.Equal(t, []string{"LRU", "8", "1", "2 5 1", "No"}, rows[12+8])
	// Optimal step 4 evicts 3 -> frames "1 2 4"
	assert.Equal(t, []string{"Optimal", "4", "4", "1 2 4", "Yes"}, rows[24+4])
}

func TestWriteComparisonCSV_Nil(t *testing.T) {
	assert.Error(t, WriteComparisonCSV(&bytes.Buffer{}, nil))
}

func TestWriteTraceCSV(t *testing.T) {
	tr, err := sim.Simulate(sim.PolicyFIFO, []trace.PageID{1, 2, 1}, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTraceCSV(&buf, tr))
	want := "Step,Page,Frames,Page Fault\n1,1,1,Yes\n2,2,2,Yes\n3,1,1,Yes\n"
	assert.Equal(t, want, buf.String())

	assert.Error(t, WriteTraceCSV(&bytes.Buffer{}, nil))
}

func TestNewReport_StatsAndFingerprints(t *testing.T) {
	result, err := sim.CompareAll(context.Background(), beladyRefs, 3)
	require.NoError(t, err)

	report := NewReport(result)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err, "run ID must be a UUID")
	assert.Equal(t, 3, report.Capacity)
	assert.Equal(t, "Optimal", report.Best)
	require.Len(t, report.Policies, 3)
	assert.Equal(t, 9, report.Policies[0].FaultCount)
	assert.Equal(t, 10, report.Policies[1].FaultCount)
	assert.Equal(t, 7, report.Policies[2].FaultCount)
	assert.Equal(t, []int{1, 2, 3, 4, 7, 10, 11}, report.Policies[2].FaultSteps)
	for _, p := range report.Policies {
		assert.Len(t, p.Fingerprint, 16)
	}

	// Same input on a new run: new run ID, same fingerprints
	again := NewReport(result)
	assert.NotEqual(t, report.RunID, again.RunID)
	for i := range report.Policies {
		assert.Equal(t, report.Policies[i].Fingerprint, again.Policies[i].Fingerprint)
	}
}

func TestReport_WriteJSON(t *testing.T) {
	result, err := sim.CompareAll(context.Background(), []trace.PageID{1, 1, 1}, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewReport(result).WriteJSON(&buf))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "run_id")
	assert.Contains(t, decoded, "policies")
	assert.Equal(t, "FIFO", decoded["best_policy"])
}
