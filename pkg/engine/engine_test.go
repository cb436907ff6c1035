package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/klpartitioner/pkg/netlistparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	filename := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	return filename
}

func TestPartitionFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "matching.net", "1 3\n2 4\n")

	e := NewEngine(zap.NewNop())
	result, output, err := e.PartitionFile(context.Background(), input, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "kernighan_lin_out_matching.txt"), output)
	assert.Equal(t, 0, result.CutSize)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "0\n1 3\n2 4\n", string(content))
}

func TestPartitionFileExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edge.net", "1 2\n")
	output := filepath.Join(dir, "result.txt")

	_, got, err := NewEngine(zap.NewNop()).PartitionFile(context.Background(), input, output)
	require.NoError(t, err)
	assert.Equal(t, output, got)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "1\n1\n2\n", string(content))
}

func TestPartitionFileErrors(t *testing.T) {
	dir := t.TempDir()
	malformed := writeFile(t, dir, "bad.net", "1 2\nfoo\n")

	e := NewEngine(zap.NewNop())
	_, _, err := e.PartitionFile(context.Background(), malformed, "")
	assert.ErrorIs(t, err, netlistparser.ErrMalformedLine)

	_, _, err = e.PartitionFile(context.Background(), filepath.Join(dir, "missing.net"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBatchPartitioner(t *testing.T) {
	dir := t.TempDir()
	inputs := []string{
		writeFile(t, dir, "a.net", "1 2\n2 3\n3 4\n4 1\n"),
		writeFile(t, dir, "b.net", "x y\n"),
		writeFile(t, dir, "c.net", "1 3\n2 4\n"),
		writeFile(t, dir, "d.net", "5 6\n7 8\n"),
	}

	bp := NewBatchPartitioner(NewEngine(zap.NewNop()), 2, zap.NewNop())
	results := bp.Run(context.Background(), inputs)
	require.Len(t, results, len(inputs))

	for i, r := range results {
		assert.Equal(t, inputs[i], r.Input)
	}

	require.NoError(t, results[0].Err)
	assert.Equal(t, 2, results[0].Result.CutSize)

	assert.ErrorIs(t, results[1].Err, netlistparser.ErrMalformedLine)
	assert.Nil(t, results[1].Result)

	require.NoError(t, results[2].Err)
	assert.Equal(t, 0, results[2].Result.CutSize)
	assert.FileExists(t, results[2].Output)

	require.NoError(t, results[3].Err)
	assert.Equal(t, []int{5, 6}, results[3].Result.GroupA)
}

func TestBatchMatchesSequentialRuns(t *testing.T) {
	dir := t.TempDir()
	inputs := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		nl, err := netlistparser.GenerateRandomNetlist(30, 70, uint64(i+1))
		require.NoError(t, err)
		f, err := os.Create(filepath.Join(dir, "rand"+string(rune('a'+i))+".net"))
		require.NoError(t, err)
		require.NoError(t, netlistparser.WriteNetlist(f, nl))
		require.NoError(t, f.Close())
		inputs = append(inputs, f.Name())
	}

	results := NewBatchPartitioner(NewEngine(zap.NewNop()), 3, zap.NewNop()).Run(context.Background(), inputs)

	parser := netlistparser.NewNetlistParser(zap.NewNop())
	for i, input := range inputs {
		require.NoError(t, results[i].Err)

		g, err := parser.ParseGraph(input)
		require.NoError(t, err)
		seq, _, err := NewEngine(zap.NewNop()).PartitionFile(context.Background(), input, filepath.Join(dir, "seq.txt"))
		require.NoError(t, err)

		assert.Equal(t, seq, results[i].Result)
		assert.Equal(t, g.NumberOfVertices(), len(seq.GroupA)+len(seq.GroupB))
	}
}
