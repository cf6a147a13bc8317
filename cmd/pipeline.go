package cmd

import (
	"context"
	"io"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sgfilter/candidates"
	"github.com/timtadh/sgfilter/config"
	"github.com/timtadh/sgfilter/features"
	"github.com/timtadh/sgfilter/reporters"
	"github.com/timtadh/sgfilter/types/graph"
)

// LoadCorpus reads the graph corpus at path (a file, a .gz file or a
// directory of them).
func LoadCorpus(conf *config.Config, path string) ([]*graph.Graph, error) {
	errors.Logf("INFO", "loading corpus %v", path)
	return graph.NewLoader(conf).Load(func() (io.Reader, func()) {
		return Input(path)
	})
}

// FeaturesPath is where the feature set used for a matrix is kept.
func FeaturesPath(matrixPath string) string {
	return matrixPath + ".features.json"
}

// SelectFeatures selects features from the pattern corpus and saves them.
func SelectFeatures(ctx context.Context, conf *config.Config, corpusPath, featuresPath string) (*features.FeatureSet, error) {
	graphs, err := LoadCorpus(conf, corpusPath)
	if err != nil {
		return nil, err
	}
	fs, err := features.Select(ctx, conf, graphs)
	if err != nil {
		return nil, err
	}
	errors.Logf("INFO", "selected %v features", fs.Len())
	err = features.SaveFeatureSet(featuresPath, fs)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// Vectors builds and saves the matrix of the corpus against fs.
func Vectors(ctx context.Context, conf *config.Config, fs *features.FeatureSet, corpusPath, matrixPath string) (*features.Matrix, error) {
	graphs, err := LoadCorpus(conf, corpusPath)
	if err != nil {
		return nil, err
	}
	m, err := features.BuildMatrix(ctx, conf, graphs, fs)
	if err != nil {
		return nil, err
	}
	err = features.SaveMatrix(matrixPath, m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Identify selects features from the pattern corpus, saves them next to the
// matrix and builds the database matrix against them.
func Identify(ctx context.Context, conf *config.Config, dbPath, patternsPath, matrixPath string) (*features.Matrix, error) {
	fs, err := SelectFeatures(ctx, conf, patternsPath, FeaturesPath(matrixPath))
	if err != nil {
		return nil, err
	}
	return Vectors(ctx, conf, fs, dbPath, matrixPath)
}

// Candidates compares the query matrix against the database matrix and
// reports every candidate list to rptr.
func Candidates(ctx context.Context, conf *config.Config, dbPath, queryPath string, rptr reporters.Reporter) error {
	db, err := features.LoadMatrix(dbPath)
	if err != nil {
		rptr.Close()
		return err
	}
	queries, err := features.LoadMatrix(queryPath)
	if err != nil {
		rptr.Close()
		return err
	}
	lists, err := candidates.Generate(ctx, conf, db, queries)
	if err != nil {
		rptr.Close()
		return err
	}
	return candidates.Report(lists, rptr)
}
