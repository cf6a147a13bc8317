package features

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sgfilter/types/pattern"
)

type featureSetJson struct {
	Features [][]int `json:"features"`
}

type matrixJson struct {
	Features [][]int  `json:"features"`
	Rows     []string `json:"rows"`
}

func encodeFeatures(fs *FeatureSet) [][]int {
	ids := make([][]int, 0, fs.Len())
	for _, p := range fs.pats {
		ids = append(ids, p.Ids())
	}
	return ids
}

func decodeFeatures(ids [][]int) (*FeatureSet, error) {
	pats := make([]pattern.Pattern, 0, len(ids))
	for _, tuple := range ids {
		p, err := pattern.FromSlice(tuple)
		if err != nil {
			return nil, err
		}
		pats = append(pats, p)
	}
	return exactFeatureSet(pats)
}

func WriteFeatureSet(w io.Writer, fs *FeatureSet) error {
	return json.NewEncoder(w).Encode(&featureSetJson{Features: encodeFeatures(fs)})
}

func ReadFeatureSet(r io.Reader) (*FeatureSet, error) {
	var obj featureSetJson
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, errors.Errorf("could not decode feature set: %v", err)
	}
	return decodeFeatures(obj.Features)
}

func WriteMatrix(w io.Writer, m *Matrix) error {
	obj := &matrixJson{
		Features: encodeFeatures(m.Features),
		Rows:     make([]string, 0, len(m.Rows)),
	}
	for _, row := range m.Rows {
		obj.Rows = append(obj.Rows, row.String())
	}
	return json.NewEncoder(w).Encode(obj)
}

// ReadMatrix decodes a matrix written by WriteMatrix. Rows whose width does
// not match the feature set give a *SchemaMismatch.
func ReadMatrix(r io.Reader) (*Matrix, error) {
	var obj matrixJson
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, errors.Errorf("could not decode matrix: %v", err)
	}
	fs, err := decodeFeatures(obj.Features)
	if err != nil {
		return nil, err
	}
	m := NewMatrix(fs)
	for _, s := range obj.Rows {
		row, err := ParseVector(s)
		if err != nil {
			return nil, err
		}
		if err := m.Append(row); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func SaveFeatureSet(path string, fs *FeatureSet) error {
	return save(path, func(w io.Writer) error {
		return WriteFeatureSet(w, fs)
	})
}

func LoadFeatureSet(path string) (fs *FeatureSet, err error) {
	err = load(path, func(r io.Reader) error {
		fs, err = ReadFeatureSet(r)
		return err
	})
	return fs, err
}

func SaveMatrix(path string, m *Matrix) error {
	return save(path, func(w io.Writer) error {
		return WriteMatrix(w, m)
	})
}

func LoadMatrix(path string) (m *Matrix, err error) {
	err = load(path, func(r io.Reader) error {
		m, err = ReadMatrix(r)
		return err
	})
	return m, err
}

func save(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(path, ".gz") {
		if err := write(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	gz := gzip.NewWriter(f)
	if err := write(gz); err != nil {
		gz.Close()
		f.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func load(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if !strings.HasSuffix(path, ".gz") {
		return read(f)
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gz.Close()
	return read(gz)
}
