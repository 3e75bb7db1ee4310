package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psantana5/tempo/pkg/bench"
)

func runSample(t *testing.T, r *bench.Runner) *Report {
	t.Helper()
	fn := func(args ...any) (any, error) {
		return args[0].(int) * args[1].(int), nil
	}
	acc, data, err := r.RunCombinations(context.Background(), fn, [][]any{{1, 2}, {10}})
	require.NoError(t, err)
	return New(acc, data, Options{
		Name:         "sample",
		Workload:     "multiply",
		RecordArgs:   r.RecordArgs,
		RecordOutput: r.RecordOutput,
	})
}

func TestNewSplitsArgsAndOutput(t *testing.T) {
	rep := runSample(t, bench.NewRunner())

	require.Len(t, rep.Entries, 2)
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "multiply", rep.Workload)

	assert.Equal(t, []any{1, 10}, rep.Entries[0].Args)
	assert.Equal(t, 10, rep.Entries[0].Output)
	assert.Equal(t, []any{2, 10}, rep.Entries[1].Args)
	assert.Equal(t, 20, rep.Entries[1].Output)

	total := rep.Entries[0].Seconds + rep.Entries[1].Seconds
	assert.InDelta(t, total, rep.TotalSeconds, 1e-12)
}

func TestNewArgsOnly(t *testing.T) {
	r := bench.NewRunner()
	r.RecordOutput = false
	rep := runSample(t, r)

	assert.Equal(t, []any{1, 10}, rep.Entries[0].Args)
	assert.Nil(t, rep.Entries[0].Output)
}

func TestNewOutputOnly(t *testing.T) {
	r := bench.NewRunner()
	r.RecordArgs = false
	rep := runSample(t, r)

	assert.Empty(t, rep.Entries[0].Args)
	assert.Equal(t, 10, rep.Entries[0].Output)
}

func TestNewTimingsOnly(t *testing.T) {
	r := &bench.Runner{}
	rep := runSample(t, r)

	require.Len(t, rep.Entries, 2)
	assert.Empty(t, rep.Entries[0].Args)
	assert.Nil(t, rep.Entries[0].Output)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	rep := runSample(t, bench.NewRunner())

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep.ID, decoded.ID)
	assert.Len(t, decoded.Entries, 2)
}

func TestWriteCSV(t *testing.T) {
	rep := runSample(t, bench.NewRunner())

	var buf bytes.Buffer
	require.NoError(t, rep.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "index,seconds,args,output", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,"))
	assert.Contains(t, lines[1], "\"1, 10\"")
}

func TestRenderTable(t *testing.T) {
	rep := runSample(t, bench.NewRunner())

	var buf bytes.Buffer
	rep.RenderTable(&buf)

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "SECONDS")
	assert.Contains(t, out, "2 calls")
}
