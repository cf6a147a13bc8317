package reporters

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
)

import (
	"github.com/timtadh/sgfilter/config"
)

func TestFormatCandidates(x *testing.T) {
	t := assert.New(x)
	var buf bytes.Buffer
	t.Nil(FormatCandidates(&buf, 0, []int{0, 4, 9}))
	t.Nil(FormatCandidates(&buf, 1, nil))
	t.Equal("q # 1\nc # 1 5 10\nq # 2\nc # \n", buf.String())
}

func TestFileAndCount(x *testing.T) {
	t := assert.New(x)
	conf := config.Default()
	conf.Output = x.TempDir()
	f, err := NewFile(conf, "candidates")
	t.Nil(err)
	n, err := NewCount(conf, "count")
	t.Nil(err)
	c := &Collector{}
	chain := &Chain{Reporters: []Reporter{f, n, c, NewLog("DEBUG", "")}}
	t.Nil(chain.Report(0, []int{1, 2}))
	t.Nil(chain.Report(1, []int{2}))
	t.Nil(chain.Close())

	got, err := os.ReadFile(filepath.Join(conf.Output, "candidates"))
	t.Nil(err)
	t.Equal("q # 1\nc # 2 3\nq # 2\nc # 3\n", string(got))
	got, err = os.ReadFile(filepath.Join(conf.Output, "count"))
	t.Nil(err)
	t.Equal("2 3\n", string(got))
	t.Equal([][]int{{1, 2}, {2}}, c.Candidates)
}

func TestHeapProfile(x *testing.T) {
	t := assert.New(x)
	path := filepath.Join(x.TempDir(), "heap")
	_, err := NewHeapProfile(path, 0, 0)
	t.NotNil(err)
	hp, err := NewHeapProfile(path, 1, 2)
	t.Nil(err)
	for q := 0; q < 5; q++ {
		t.Nil(hp.Report(q, nil))
	}
	t.Nil(hp.Close())
	for _, n := range []int{3, 5} {
		_, err := os.Stat(path + "." + strconv.Itoa(n))
		t.Nil(err, "profile %d missing", n)
	}
	for _, n := range []int{1, 2, 4} {
		_, err := os.Stat(path + "." + strconv.Itoa(n))
		t.True(os.IsNotExist(err), "profile %d should not exist", n)
	}
}
