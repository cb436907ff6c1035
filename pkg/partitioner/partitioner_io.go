package partitioner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/klpartitioner/pkg"
)

// WriteToFile stores the result as three lines: cut size, group A ids, group B ids.
// names ending in .bz2 are bzip2 compressed.
func (pr *PartitionResult) WriteToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create output file: %s: %w", filename, err)
	}

	if err := pr.writeAndClose(f, strings.HasSuffix(filename, pkg.BZIP2_EXT)); err != nil {
		return fmt.Errorf("cannot write output file: %s: %w", filename, err)
	}
	return nil
}

// writeAndClose always closes wc. a close error is returned when the write succeeded.
func (pr *PartitionResult) writeAndClose(wc io.WriteCloser, compress bool) error {
	if err := pr.writeTo(wc, compress); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

func (pr *PartitionResult) writeTo(f io.Writer, compress bool) error {
	if !compress {
		return pr.Write(f)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := pr.Write(bz); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

func (pr *PartitionResult) Write(out io.Writer) error {
	w := bufio.NewWriter(out)

	_, err := w.WriteString(fmt.Sprintf("%d\n", pr.CutSize))
	if err != nil {
		return err
	}

	if err := writeIds(w, pr.GroupA); err != nil {
		return err
	}
	if err := writeIds(w, pr.GroupB); err != nil {
		return err
	}

	return w.Flush()
}

func writeIds(w *bufio.Writer, ids []int) error {
	for i, id := range ids {
		if i > 0 {
			if err := w.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(strconv.Itoa(id)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// OutputFilename derives the result file from the netlist file:
// dir/test.net -> dir/kernighan_lin_out_test.txt
func OutputFilename(input string) string {
	dir, base := filepath.Split(input)
	stem := base
	if idx := strings.Index(base, "."); idx >= 0 {
		stem = base[:idx]
	}
	return filepath.Join(dir, pkg.OUTPUT_FILENAME_PREFIX+stem+pkg.OUTPUT_FILENAME_EXT)
}
