package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResultFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_ListResultFiles(t *testing.T) {
	dir := t.TempDir()
	writeResultFile(t, dir, "zeta.json", "{}")
	writeResultFile(t, dir, "alpha.json", "{}")
	writeResultFile(t, dir, "notes.txt", "ignore me")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0755))

	loader := NewLoader(dir)
	files, err := loader.ListResultFiles()

	assert.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "alpha.json"), files[0])
	assert.Equal(t, filepath.Join(dir, "zeta.json"), files[1])
}

func TestLoader_ListResultFiles_MissingDir(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "does-not-exist"))

	files, err := loader.ListResultFiles()

	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoader_Records_SingleObject(t *testing.T) {
	dir := t.TempDir()
	path := writeResultFile(t, dir, "ingest.json", `{"metric": "duration_ms", "value": 115}`)

	records := NewLoader(dir).Records(path)

	require.Len(t, records, 1)
	assert.Equal(t, "ingest", records[0].TestName)
	assert.Equal(t, "duration_ms", records[0].Metric)
	assert.Equal(t, "115", records[0].Value)
}

func TestLoader_Records_Array(t *testing.T) {
	dir := t.TempDir()
	path := writeResultFile(t, dir, "api.json", `[
		{"metric": "requests_per_sec", "value": "1200.5"},
		{"metric": "error_rate", "value": 0.01}
	]`)

	records := NewLoader(dir).Records(path)

	require.Len(t, records, 2)
	assert.Equal(t, "api", records[0].TestName)
	assert.Equal(t, "1200.5", records[0].Value)
	assert.Equal(t, "0.01", records[1].Value)
}

func TestLoader_Records_JSONL(t *testing.T) {
	dir := t.TempDir()
	path := writeResultFile(t, dir, "batch.json",
		`{"metric": "duration_ms", "value": 50}
{"metric": "duration_ms", "value": 60}
{"metric": "rows_per_sec", "value": 900}`)

	records := NewLoader(dir).Records(path)

	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, "batch", r.TestName)
	}
}

func TestLoader_Records_JSONLSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := writeResultFile(t, dir, "batch.json",
		`{"metric": "duration_ms", "value": 50}
this line is not json
{"metric": "duration_ms", "value": 60}`)

	records := NewLoader(dir).Records(path)

	require.Len(t, records, 2)
	assert.Equal(t, "50", records[0].Value)
	assert.Equal(t, "60", records[1].Value)
}

func TestLoader_Records_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeResultFile(t, dir, "broken.json", `[{"metric": "x", "value": 1`)

	records := NewLoader(dir).Records(path)

	assert.Empty(t, records)
}

func TestLoader_Records_MissingFile(t *testing.T) {
	dir := t.TempDir()

	records := NewLoader(dir).Records(filepath.Join(dir, "nope.json"))

	assert.Empty(t, records)
}

func TestLoader_Records_OverridesEmbeddedTestName(t *testing.T) {
	dir := t.TempDir()
	path := writeResultFile(t, dir, "ingest.json",
		`{"test_name": "something_else", "metric": "duration_ms", "value": 10}`)

	records := NewLoader(dir).Records(path)

	require.Len(t, records, 1)
	assert.Equal(t, "ingest", records[0].TestName)
}

func TestLoader_LoadAll(t *testing.T) {
	dir := t.TempDir()
	writeResultFile(t, dir, "a.json", `{"metric": "duration_ms", "value": 10}`)
	writeResultFile(t, dir, "b.json", `[{"metric": "ops", "value": 20}, {"metric": "mem", "value": 30}]`)

	records, err := NewLoader(dir).LoadAll()

	assert.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "a", records[0].TestName)
	assert.Equal(t, "b", records[1].TestName)
	assert.Equal(t, "b", records[2].TestName)
}

func TestLastValue_LastWriteWins(t *testing.T) {
	records := []MetricRecord{
		{Metric: "duration_ms", Value: "50"},
		{Metric: "rows_per_sec", Value: "900"},
		{Metric: "duration_ms", Value: "60"},
	}

	assert.Equal(t, "60", LastValue(records, "duration_ms"))
	assert.Equal(t, "900", LastValue(records, "rows_per_sec"))
	assert.Equal(t, "", LastValue(records, "absent_metric"))
}

func TestMetricNames_DistinctFirstSeenOrder(t *testing.T) {
	records := []MetricRecord{
		{Metric: "duration_ms", Value: "50"},
		{Metric: "rows_per_sec", Value: "900"},
		{Metric: "duration_ms", Value: "60"},
		{Metric: "", Value: "ignored"},
	}

	assert.Equal(t, []string{"duration_ms", "rows_per_sec"}, MetricNames(records))
}

func TestTestNameFromPath(t *testing.T) {
	assert.Equal(t, "ingest", TestNameFromPath("/some/dir/ingest.json"))
	assert.Equal(t, "api_v2", TestNameFromPath("api_v2.json"))
}
