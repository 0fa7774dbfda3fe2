package mlmodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestForest(t *testing.T) *Forest {
	t.Helper()
	forest, err := Load(filepath.Join("testdata", "forest.json"))
	require.NoError(t, err)
	return forest
}

func TestLoad(t *testing.T) {
	forest := loadTestForest(t)

	assert.Equal(t, 7, forest.NumFeatures)
	assert.Len(t, forest.Trees, 3)
}

func TestLoadMissingFile(t *testing.T) {
	forest, err := Load(filepath.Join("testdata", "missing.json"))
	assert.Nil(t, forest)
	assert.Error(t, err)
}

func TestLoadInvalidArtifact(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "malformed json", content: `{"num_features": 7,`},
		{name: "no trees", content: `{"num_features": 7, "trees": []}`},
		{name: "bad feature count", content: `{"num_features": 0, "trees": [{"nodes": [{"leaf": true}]}]}`},
		{
			name:    "feature index out of range",
			content: `{"num_features": 2, "trees": [{"nodes": [{"feature": 5, "threshold": 1, "left": 0, "right": 0}]}]}`,
		},
		{
			name:    "child index out of range",
			content: `{"num_features": 2, "trees": [{"nodes": [{"feature": 0, "threshold": 1, "left": 3, "right": 0}]}]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "forest.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0600))

			forest, err := Load(path)
			assert.Nil(t, forest)
			assert.Error(t, err)
		})
	}
}

func TestPredict(t *testing.T) {
	forest := loadTestForest(t)

	testCases := []struct {
		name                string
		vector              []float64
		expectedLabel       int
		expectedProbability float64
	}{
		{
			name:                "all trees vote negative",
			vector:              []float64{120.5, 0, 3, 0, 3, 0, 3.2},
			expectedLabel:       0,
			expectedProbability: 0,
		},
		{
			name:                "all trees vote positive",
			vector:              []float64{900, 1, 2, 2, 3, 1, 7.5},
			expectedLabel:       1,
			expectedProbability: 1,
		},
		{
			name:                "minority positive vote",
			vector:              []float64{900, 0, 3, 0, 3, 0, 3.0},
			expectedLabel:       0,
			expectedProbability: 1.0 / 3.0,
		},
		{
			name:                "majority positive vote",
			vector:              []float64{900, 0, 3, 0, 3, 1, 3.0},
			expectedLabel:       1,
			expectedProbability: 2.0 / 3.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			label, probability, err := forest.Predict(tc.vector)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedLabel, label)
			assert.InDelta(t, tc.expectedProbability, probability, 1e-9)
			assert.GreaterOrEqual(t, probability, 0.0)
			assert.LessOrEqual(t, probability, 1.0)
		})
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	forest := loadTestForest(t)
	vector := []float64{900, 0, 3, 0, 3, 1, 3.0}

	firstLabel, firstProbability, err := forest.Predict(vector)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		label, probability, err := forest.Predict(vector)
		require.NoError(t, err)
		assert.Equal(t, firstLabel, label)
		assert.Equal(t, firstProbability, probability)
	}
}

func TestPredictWrongVectorLength(t *testing.T) {
	forest := loadTestForest(t)

	_, _, err := forest.Predict([]float64{1, 2, 3})
	assert.Error(t, err)
}
