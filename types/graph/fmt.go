package graph

import (
	"bytes"
	"fmt"
	"io"
)

// Format writes g in the corpus format read by Load. Labels are written
// as 0 since they are not kept.
func Format(w io.Writer, g *Graph) error {
	if _, err := fmt.Fprintf(w, "t # %d\n", g.Idx); err != nil {
		return err
	}
	for _, v := range g.V {
		if _, err := fmt.Fprintf(w, "v %d 0\n", v); err != nil {
			return err
		}
	}
	for _, e := range g.E {
		if _, err := fmt.Fprintf(w, "e %d %d 0\n", e.U, e.V); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) String() string {
	var buf bytes.Buffer
	Format(&buf, g)
	return buf.String()
}
