package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"examscore/business/prediction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func validModelJSON() string {
	return `{"weights": [1, 0, 0, 2, 0.5, 0, 0, 0, 0, 0, 0], "intercept": 10}`
}

func validScalerJSON() string {
	return `{"mean": [0,0,0,0,0,0,0,0,0,0,0], "scale": [1,1,1,1,1,1,1,1,1,1,1]}`
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "exam_model.json", validModelJSON())
	scalerPath := writeFile(t, dir, "scaler.json", validScalerJSON())

	set, err := Load(modelPath, scalerPath)
	require.NoError(t, err)

	// Identity scaler: transform is a no-op, predict is the plain
	// linear combination.
	x := prediction.FeatureVector{20, 0, 0, 5, 80, 0, 0, 0, 0, 0, 0}
	assert.Equal(t, x, set.Transform(x))
	assert.InDelta(t, 10+20+10+40, set.Predict(set.Transform(x)), 1e-9)
}

func TestLoad_StandardizesBeforePredict(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "exam_model.json",
		`{"weights": [1,0,0,0,0,0,0,0,0,0,0], "intercept": 0}`)
	scalerPath := writeFile(t, dir, "scaler.json",
		`{"mean": [20,0,0,0,0,0,0,0,0,0,0], "scale": [5,1,1,1,1,1,1,1,1,1,1]}`)

	set, err := Load(modelPath, scalerPath)
	require.NoError(t, err)

	var x prediction.FeatureVector
	x[0] = 30

	scaled := set.Transform(x)
	assert.InDelta(t, 2.0, scaled[0], 1e-9) // (30-20)/5
	assert.InDelta(t, 2.0, set.Predict(scaled), 1e-9)
}

func TestLoad_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	scalerPath := writeFile(t, dir, "scaler.json", validScalerJSON())

	_, err := Load(filepath.Join(dir, "nope.json"), scalerPath)
	assert.ErrorIs(t, err, prediction.ErrModelUnavailable)

	modelPath := writeFile(t, dir, "exam_model.json", validModelJSON())
	_, err = Load(modelPath, filepath.Join(dir, "nope.json"))
	assert.ErrorIs(t, err, prediction.ErrModelUnavailable)
}

func TestLoad_DimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	scalerPath := writeFile(t, dir, "scaler.json", validScalerJSON())
	modelPath := writeFile(t, dir, "exam_model.json",
		`{"weights": [1, 2, 3], "intercept": 0}`)

	_, err := Load(modelPath, scalerPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, prediction.ErrModelUnavailable)
	assert.Contains(t, err.Error(), "dimension mismatch")
}

func TestLoad_ZeroScale(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "exam_model.json", validModelJSON())
	scalerPath := writeFile(t, dir, "scaler.json",
		`{"mean": [0,0,0,0,0,0,0,0,0,0,0], "scale": [1,1,1,0,1,1,1,1,1,1,1]}`)

	_, err := Load(modelPath, scalerPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, prediction.ErrModelUnavailable)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "exam_model.json", `{"weights": `)
	scalerPath := writeFile(t, dir, "scaler.json", validScalerJSON())

	_, err := Load(modelPath, scalerPath)
	assert.ErrorIs(t, err, prediction.ErrModelUnavailable)
}
