package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

import (
	"github.com/dustin/go-humanize"
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sgfilter/config"
)

// Input lazily opens a corpus. The returned func closes whatever was opened.
type Input func() (io.Reader, func())

// FormatError reports content found before the first graph header.
type FormatError struct {
	Line int
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: content before any graph header: %q", e.Line, e.Text)
}

type Loader struct {
	markers []string
}

func NewLoader(conf *config.Config) *Loader {
	return &Loader{
		markers: conf.Markers(),
	}
}

func (l *Loader) Load(input Input) ([]*Graph, error) {
	in, closer := input()
	defer closer()
	graphs, err := Load(in, l.markers...)
	if err != nil {
		return nil, err
	}
	edges := 0
	for _, g := range graphs {
		edges += len(g.E)
		if len(g.E) == 0 {
			errors.Logf("DEBUG", "graph %d has no edges\n%v", g.Idx, g)
		}
	}
	errors.Logf("INFO", "loaded %v graphs with %v edges", humanize.Comma(int64(len(graphs))), humanize.Comma(int64(edges)))
	return graphs, nil
}

// Load parses a corpus of graphs. Every graph starts at a line beginning
// with one of markers. Edge lines have the form "e <u> <v> [label]" and
// vertex lines "v <id> [label]". Edge and vertex lines which do not parse are
// skipped. Any other line is ignored.
func Load(in io.Reader, markers ...string) (graphs []*Graph, err error) {
	var cur *Builder
	lineNo := 0
	skipped := 0
	err = processLines(in, func(line string) error {
		lineNo++
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		if isHeader(line, markers) {
			if cur != nil {
				graphs = append(graphs, cur.Build())
			}
			cur = Build(len(graphs))
			return nil
		}
		if cur == nil {
			return &FormatError{Line: lineNo, Text: line}
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "e":
			u, v, ok := parseEdge(fields)
			if !ok {
				skipped++
				errors.Logf("DEBUG", "skipping malformed edge on line %d: %q", lineNo, line)
				return nil
			}
			cur.AddEdge(u, v)
		case "v":
			id, ok := parseId(fields, 1)
			if !ok {
				skipped++
				errors.Logf("DEBUG", "skipping malformed vertex on line %d: %q", lineNo, line)
				return nil
			}
			cur.AddNode(id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cur != nil {
		graphs = append(graphs, cur.Build())
	}
	if skipped > 0 {
		errors.Logf("WARN", "skipped %d malformed lines", skipped)
	}
	return graphs, nil
}

func isHeader(line string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

func parseEdge(fields []string) (u, v int, ok bool) {
	if len(fields) < 3 {
		return 0, 0, false
	}
	if u, ok = parseId(fields, 1); !ok {
		return 0, 0, false
	}
	if v, ok = parseId(fields, 2); !ok {
		return 0, 0, false
	}
	return u, v, true
}

func parseId(fields []string, i int) (int, bool) {
	if i >= len(fields) {
		return 0, false
	}
	id, err := strconv.Atoi(fields[i])
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func processLines(in io.Reader, process func(string) error) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if err := process(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
