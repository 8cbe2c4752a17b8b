// Package report renders shortest-distance results as plain text.
package report

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// Unit is appended to every distance.
const Unit = "km"

// Write prints a header naming start followed by one "To <node>: <d> km"
// line per entry of dist. Entries are sorted by node ID so repeated runs
// produce identical output.
func Write(w io.Writer, start string, dist map[string]int64) error {
	ids := make([]string, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Shortest distances from %s:\n", start)
	for _, id := range ids {
		fmt.Fprintf(bw, "To %s: %d %s\n", id, dist[id], Unit)
	}

	return bw.Flush()
}
