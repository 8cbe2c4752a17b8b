// Package routes loads flight-route records into a core.Graph.
//
// The input is a delimited text file with one header line followed by one
// route per line. Only two columns are used: the source airport (index 2)
// and the destination airport (index 4). Each accepted row becomes one
// directed edge whose weight is drawn from an injectable weight.WeightFn.
//
// Rows with too few fields are skipped with a warning and loading goes on.
// A read failure stops loading; edges added before the failure stay in the
// graph.
package routes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/airpaths/core"
	"github.com/sirupsen/logrus"
)

// Sentinel errors for route loading.
var (
	// ErrNilGraph indicates that Load was given a nil graph.
	ErrNilGraph = errors.New("routes: graph is nil")

	// ErrRead indicates that the route source could not be opened or read.
	ErrRead = errors.New("routes: read failed")
)

// Stats summarises a Load run.
type Stats struct {
	Rows    int // data rows seen (header and blank lines excluded)
	Edges   int // edges added to the graph
	Skipped int // malformed rows ignored
}

// LoadFile opens path and loads it with Load. The file is closed on every
// return path.
func LoadFile(path string, g *core.Graph, opts ...Option) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	return Load(f, g, opts...)
}

// Load reads route rows from r and adds one edge per well-formed row to g.
//
// Steps:
//  1. Skip the header line.
//  2. Split each line on the delimiter, dropping trailing empty fields.
//  3. Skip blank lines silently; warn about and skip short rows.
//  4. Draw a weight and call g.AddEdge(source, destination, weight).
//
// On a read error the returned Stats describe what was loaded before it.
func Load(r io.Reader, g *core.Graph, opts ...Option) (Stats, error) {
	if g == nil {
		return Stats{}, ErrNilGraph
	}
	cfg := resolveOptions(opts)

	var st Stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), defaultScanBufSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		st.Rows++

		parts := trimTrailingEmpty(strings.Split(line, cfg.Delimiter))
		if len(parts) < cfg.MinFields {
			st.Skipped++
			cfg.Logger.WithFields(logrus.Fields{
				"line":   lineNo,
				"fields": len(parts),
			}).Warnf("skipping malformed row: %s", line)
			continue
		}

		src := strings.TrimSpace(parts[cfg.SourceCol])
		dst := strings.TrimSpace(parts[cfg.DestCol])
		if err := g.AddEdge(src, dst, cfg.WeightFn(cfg.Rand)); err != nil {
			st.Skipped++
			cfg.Logger.WithFields(logrus.Fields{
				"line": lineNo,
			}).WithError(err).Warnf("skipping row: %s", line)
			continue
		}
		st.Edges++
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("%w: line %d: %w", ErrRead, lineNo+1, err)
	}

	cfg.Logger.WithFields(logrus.Fields{
		"rows":    st.Rows,
		"edges":   st.Edges,
		"skipped": st.Skipped,
	}).Debug("routes loaded")

	return st, nil
}

// trimTrailingEmpty drops empty fields at the end of a row, so "a,b,," counts
// as two fields.
func trimTrailingEmpty(parts []string) []string {
	n := len(parts)
	for n > 0 && parts[n-1] == "" {
		n--
	}

	return parts[:n]
}
