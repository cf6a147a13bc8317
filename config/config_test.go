package config

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"os"
	"path/filepath"
	"runtime"
)

func TestDefaults(x *testing.T) {
	t := assert.New(x)
	c := Default()
	t.Equal(Selection{TopK: 12, BandStart: 27, BandWidth: 13}, c.Selection)
	t.Equal([]string{"t #", "#"}, c.Markers())
	t.Equal(1, c.Workers())
	c.Parallelism = -1
	t.Equal(runtime.NumCPU(), c.Workers())
	c.Parallelism = 3
	t.Equal(3, c.Workers())
}

func TestLoadToml(x *testing.T) {
	t := assert.New(x)
	path := filepath.Join(x.TempDir(), "sgfilter.toml")
	err := os.WriteFile(path, []byte(`
parallelism = 4
total = 4337

[selection]
top_k = 5
band_width = 2
`), 0644)
	t.Nil(err)
	c := Default()
	t.Nil(LoadToml(path, c))
	t.Equal(4, c.Workers())
	t.Equal(4337, c.Total)
	t.Equal(Selection{TopK: 5, BandStart: 27, BandWidth: 2}, c.Selection)
	t.Equal([]string{"t #", "#"}, c.Markers())
}

func TestLoadTomlRejectsNegative(x *testing.T) {
	t := assert.New(x)
	path := filepath.Join(x.TempDir(), "bad.toml")
	t.Nil(os.WriteFile(path, []byte("[selection]\nband_start = -1\n"), 0644))
	t.NotNil(LoadToml(path, Default()))
}

func TestCopy(x *testing.T) {
	t := assert.New(x)
	c := Default()
	d := c.Copy()
	d.HeaderMarkers[0] = "x"
	d.Selection.TopK = 1
	t.Equal("t #", c.HeaderMarkers[0])
	t.Equal(12, c.Selection.TopK)
}

func TestOutputFile(x *testing.T) {
	t := assert.New(x)
	c := Default()
	t.Equal("cands.dat", c.OutputFile("cands.dat"))
	c.Output = "/tmp/out"
	t.Equal("/tmp/out/cands.dat", c.OutputFile("cands.dat"))
	t.Equal("/abs/cands.dat", c.OutputFile("/abs/cands.dat"))
}
