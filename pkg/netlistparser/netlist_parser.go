package netlistparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/klpartitioner/pkg"
	"github.com/lintang-b-s/klpartitioner/pkg/datastructure"
	ut "github.com/lintang-b-s/klpartitioner/pkg/util"
	"go.uber.org/zap"
)

type NetlistParser struct {
	logger *zap.Logger
}

func NewNetlistParser(logger *zap.Logger) *NetlistParser {
	return &NetlistParser{logger: logger}
}

// Parse reads a netlist file, one edge per line. files ending in .bz2 are decompressed.
func (p *NetlistParser) Parse(filename string) (*Netlist, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %s: %w", filename, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, pkg.BZIP2_EXT) {
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, fmt.Errorf("cannot open bzip2 stream: %s: %w", filename, err)
		}
		defer bz.Close()
		r = bz
	}

	nl, err := p.ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	p.logger.Info("netlist parsed",
		zap.String("file", filename),
		zap.Int("vertices", nl.NumberOfVertices()),
		zap.Int("edge_lines", nl.NumberOfEdges()))
	return nl, nil
}

// ParseReader expects two whitespace separated integer ids per line. blank lines are
// skipped and fields after the second one are ignored.
func (p *NetlistParser) ParseReader(r io.Reader) (*Netlist, error) {
	var (
		nl     = NewNetlist()
		seen   = make(map[int]struct{})
		br     = bufio.NewReader(r)
		lineNo = 0
	)

	for {
		line, err := ut.ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		lineNo++

		ff := strings.Fields(line)
		if len(ff) == 0 {
			continue
		}
		if len(ff) < 2 {
			return nil, fmt.Errorf("line %d: expected two vertex ids, got %q: %w", lineNo, line, ErrMalformedLine)
		}

		leftId, err := strconv.Atoi(ff[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vertex id %q: %w", lineNo, ff[0], ErrMalformedLine)
		}
		rightId, err := strconv.Atoi(ff[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vertex id %q: %w", lineNo, ff[1], ErrMalformedLine)
		}

		if leftId == rightId {
			p.logger.Warn("self loop ignored by the graph model", zap.Int("line", lineNo), zap.Int("vertex", leftId))
		}
		nl.addEdge(leftId, rightId, seen)
	}

	return nl, nil
}

// ParseGraph parses filename and builds the linked graph.
func (p *NetlistParser) ParseGraph(filename string) (*datastructure.Graph, error) {
	nl, err := p.Parse(filename)
	if err != nil {
		return nil, err
	}
	return nl.BuildGraph()
}
