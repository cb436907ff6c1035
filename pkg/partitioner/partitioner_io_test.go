package partitioner

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	testCases := []struct {
		name   string
		result *PartitionResult
		want   string
	}{
		{
			name:   "two groups",
			result: &PartitionResult{CutSize: 3, GroupA: []int{1, 4, 7}, GroupB: []int{2, 3, 9}},
			want:   "3\n1 4 7\n2 3 9\n",
		},
		{
			name:   "empty graph",
			result: &PartitionResult{CutSize: 0, GroupA: []int{}, GroupB: []int{}},
			want:   "0\n\n\n",
		},
		{
			name:   "odd split",
			result: &PartitionResult{CutSize: 1, GroupA: []int{1}, GroupB: []int{2, 3}},
			want:   "1\n1\n2 3\n",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.result.Write(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteToFile(t *testing.T) {
	dir := t.TempDir()
	result := &PartitionResult{CutSize: 2, GroupA: []int{10, 20}, GroupB: []int{30, 40}}

	plain := filepath.Join(dir, "out.txt")
	require.NoError(t, result.WriteToFile(plain))
	content, err := os.ReadFile(plain)
	require.NoError(t, err)
	assert.Equal(t, "2\n10 20\n30 40\n", string(content))

	compressed := filepath.Join(dir, "out.txt.bz2")
	require.NoError(t, result.WriteToFile(compressed))
	f, err := os.Open(compressed)
	require.NoError(t, err)
	defer f.Close()
	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	require.NoError(t, err)
	content, err = io.ReadAll(bz)
	require.NoError(t, err)
	assert.Equal(t, "2\n10 20\n30 40\n", string(content))
}

type closeRecorder struct {
	bytes.Buffer
	writeErr error
	closeErr error
	closed   bool
}

func (c *closeRecorder) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	return c.Buffer.Write(p)
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func TestWriteAndClose(t *testing.T) {
	errDiskFull := errors.New("disk full")
	errWrite := errors.New("short write")

	testCases := []struct {
		name     string
		writeErr error
		closeErr error
		compress bool
		wantErr  error
		wantBody string
	}{
		{name: "ok", wantBody: "1\n1\n2\n"},
		{name: "close error is returned", closeErr: errDiskFull, wantErr: errDiskFull, wantBody: "1\n1\n2\n"},
		{name: "close error is returned for bzip2", closeErr: errDiskFull, compress: true, wantErr: errDiskFull},
		{name: "write error wins over close error", writeErr: errWrite, closeErr: errDiskFull, wantErr: errWrite},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			result := &PartitionResult{CutSize: 1, GroupA: []int{1}, GroupB: []int{2}}
			wc := &closeRecorder{writeErr: tt.writeErr, closeErr: tt.closeErr}

			err := result.writeAndClose(wc, tt.compress)
			assert.True(t, wc.closed)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, wc.String())
			}
		})
	}
}

func TestWriteToFileMissingDirectory(t *testing.T) {
	result := &PartitionResult{GroupA: []int{}, GroupB: []int{}}
	err := result.WriteToFile(filepath.Join(t.TempDir(), "missing", "out.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOutputFilename(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{input: "test.net", want: "kernighan_lin_out_test.txt"},
		{input: "data/circuit.net", want: filepath.Join("data", "kernighan_lin_out_circuit.txt")},
		{input: "data/circuit.net.bz2", want: filepath.Join("data", "kernighan_lin_out_circuit.txt")},
		{input: "netlist", want: "kernighan_lin_out_netlist.txt"},
	}

	for _, tt := range testCases {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputFilename(tt.input))
		})
	}
}
