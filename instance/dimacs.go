package instance

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/pcpbnp/solver/pcperr"
	"github.com/pcpbnp/solver/pcpgraph"
)

// ParsePCP reads the DIMACS-style PCP format: a header line "|V| |E| |Q|",
// |V| lines each giving one vertex's cluster id, then |E| lines each
// giving an undirected edge "i j". Self-loops are skipped with a log
// warning; duplicate edges are silently deduplicated by pcpgraph.NewGraph.
func ParsePCP(r io.Reader) (*pcpgraph.Graph, error) {
	scanner := bufio.NewScanner(r)
	lines := nonBlankLineReader{scanner: scanner}

	header, ok := lines.next()
	if !ok {
		return nil, pcperr.Input("instance.ParsePCP", errMissingHeader)
	}
	numVertices, numEdges, numClusters, err := parseHeader(header)
	if err != nil {
		return nil, pcperr.Input("instance.ParsePCP", err)
	}

	assign := make([]pcpgraph.ClusterID, numVertices)
	for i := 0; i < numVertices; i++ {
		line, ok := lines.next()
		if !ok {
			return nil, pcperr.Input("instance.ParsePCP", fmt.Errorf("%w: vertex %d", errUnexpectedEOF, i))
		}
		cid, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, pcperr.Input("instance.ParsePCP", fmt.Errorf("vertex %d: %w", i, err))
		}
		assign[i] = pcpgraph.ClusterID(cid)
	}

	var edges []pcpgraph.Edge
	for i := 0; i < numEdges; i++ {
		line, ok := lines.next()
		if !ok {
			return nil, pcperr.Input("instance.ParsePCP", fmt.Errorf("%w: edge %d", errUnexpectedEOF, i))
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, pcperr.Input("instance.ParsePCP", fmt.Errorf("edge %d: expected 2 fields, got %d", i, len(fields)))
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			return nil, pcperr.Input("instance.ParsePCP", fmt.Errorf("edge %d: non-integer endpoint", i))
		}
		if u == v {
			log.Printf("instance: skipping self-loop at vertex %d", u)
			continue
		}
		edges = append(edges, pcpgraph.Edge{U: pcpgraph.VertexID(u), V: pcpgraph.VertexID(v)})
	}

	if err := scanner.Err(); err != nil {
		return nil, pcperr.Input("instance.ParsePCP", err)
	}

	g, err := pcpgraph.NewGraph(assign, numClusters, edges)
	if err != nil {
		return nil, pcperr.Input("instance.ParsePCP", err)
	}
	return g, nil
}

func parseHeader(line string) (numVertices, numEdges, numClusters int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: expected 3 fields, got %d", errMalformedHeader, len(fields))
	}
	vals := make([]int, 3)
	for i, f := range fields {
		vals[i], err = strconv.Atoi(f)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %v", errMalformedHeader, err)
		}
	}
	return vals[0], vals[1], vals[2], nil
}

// nonBlankLineReader yields scanner lines, skipping blank ones.
type nonBlankLineReader struct {
	scanner *bufio.Scanner
}

func (r nonBlankLineReader) next() (string, bool) {
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		return line, true
	}
	return "", false
}
