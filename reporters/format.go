package reporters

import (
	"bufio"
	"io"
	"strconv"
)

// FormatCandidates writes one query block:
//
//	q # <query>
//	c # <candidate> <candidate> ...
//
// with both numbered from 1.
func FormatCandidates(w io.Writer, query int, candidates []int) error {
	b := bufio.NewWriter(w)
	b.WriteString("q # ")
	b.WriteString(strconv.Itoa(query + 1))
	b.WriteString("\nc # ")
	for i, c := range candidates {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(c + 1))
	}
	b.WriteByte('\n')
	return b.Flush()
}
