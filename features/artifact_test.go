package features

import "testing"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import (
	"bytes"
	"path/filepath"
	"strings"
)

import (
	"github.com/timtadh/sgfilter/types/pattern"
)

func sampleMatrix() *Matrix {
	fs := NewFeatureSet([]pattern.Pattern{
		pattern.New(4, 5, 6),
		pattern.New(0, 1, 2, 3),
		pattern.New(0, 1, 2),
	})
	m := NewMatrix(fs)
	m.Append(Vector{true, false, true})
	m.Append(Vector{false, false, false})
	return m
}

func TestFeatureSetRoundTrip(x *testing.T) {
	t := assert.New(x)
	fs := sampleMatrix().Features
	var buf bytes.Buffer
	require.Nil(x, WriteFeatureSet(&buf, fs))
	t.Equal(`{"features":[[4,5,6],[0,1,2,3],[0,1,2]]}`+"\n", buf.String())
	got, err := ReadFeatureSet(&buf)
	require.Nil(x, err)
	t.Equal(fs.Patterns(), got.Patterns())
}

func TestMatrixRoundTrip(x *testing.T) {
	t := assert.New(x)
	m := sampleMatrix()
	var buf bytes.Buffer
	require.Nil(x, WriteMatrix(&buf, m))
	got, err := ReadMatrix(&buf)
	require.Nil(x, err)
	t.Nil(m.Check(got))
	t.Equal(m.Rows, got.Rows)
}

func TestSaveLoad(x *testing.T) {
	t := assert.New(x)
	m := sampleMatrix()
	for _, name := range []string{"m.json", "m.json.gz"} {
		path := filepath.Join(x.TempDir(), name)
		require.Nil(x, SaveMatrix(path, m))
		got, err := LoadMatrix(path)
		require.Nil(x, err)
		t.Equal(m.Rows, got.Rows)
		t.True(m.Features.Equals(got.Features))

		fsPath := path + ".features"
		require.Nil(x, SaveFeatureSet(fsPath, m.Features))
		fs, err := LoadFeatureSet(fsPath)
		require.Nil(x, err)
		t.True(m.Features.Equals(fs))
	}
}

func TestReadMatrixBadRow(x *testing.T) {
	t := assert.New(x)
	_, err := ReadMatrix(strings.NewReader(`{"features":[[0,1,2]],"rows":["1","10"]}`))
	_, ok := err.(*SchemaMismatch)
	t.True(ok, "expected *SchemaMismatch got %T", err)
}

func TestReadFeatureSetRejects(x *testing.T) {
	t := assert.New(x)
	_, err := ReadFeatureSet(strings.NewReader(`{"features":[[0,1,2],[2,1,0]]}`))
	t.NotNil(err)
	_, err = ReadFeatureSet(strings.NewReader(`{"features":[[0,1]]}`))
	t.NotNil(err)
	_, err = ReadFeatureSet(strings.NewReader(`not json`))
	t.NotNil(err)
}

func TestReadEmptyMatrix(x *testing.T) {
	t := assert.New(x)
	m, err := ReadMatrix(strings.NewReader(`{"features":[],"rows":null}`))
	t.Nil(err)
	t.Equal(0, m.Features.Len())
	t.Len(m.Rows, 0)
}
