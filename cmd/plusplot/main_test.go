package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gacevedo/virus-sucks-plotter/config"
	"github.com/gacevedo/virus-sucks-plotter/pluslife"
	"github.com/gacevedo/virus-sucks-plotter/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = `{
	"testType": "SARS-CoV-2",
	"testResult": {"detectionResult": 1},
	"testData": {"samples": [
		{"samplingTime": 600, "startingChannel": 0, "firstChannelResult": 10},
		{"samplingTime": 600, "startingChannel": 3, "firstChannelResult": 20},
		{"samplingTime": 1200, "startingChannel": 0, "firstChannelResult": 15},
		{"samplingTime": 1200, "startingChannel": 3, "firstChannelResult": 40}
	]}
}`

func writeExport(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestRunWritesChart(t *testing.T) {
	in := writeExport(t, "result.json", export)

	var out bytes.Buffer
	require.NoError(t, run(&out, in, "", config.Default(), true))

	assert.Contains(t, out.String(), "Test type: SARS-CoV-2 | Test result: ")
	assert.Contains(t, out.String(), "Negative")
	assert.Contains(t, out.String(), "Channel 4 (control)")

	info, err := os.Stat(chartPath(in, "", render.PNG))
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRunSVGIntoOutputDir(t *testing.T) {
	in := writeExport(t, "result.json", export)
	outDir := t.TempDir()

	cfg := config.Default()
	cfg.Format = "svg"
	cfg.OutputDir = outDir

	require.NoError(t, run(&bytes.Buffer{}, in, "", cfg, false))

	b, err := os.ReadFile(filepath.Join(outDir, "result.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestRunEmptyDocumentWritesNoChart(t *testing.T) {
	in := writeExport(t, "empty.json", `{"testType":"Flu","testResult":{"detectionResult":7},"testData":{"samples":[]}}`)

	var out bytes.Buffer
	require.NoError(t, run(&out, in, "", config.Default(), true))
	assert.Contains(t, out.String(), "Test result: Unknown")

	_, err := os.Stat(chartPath(in, "", render.PNG))
	assert.True(t, os.IsNotExist(err))
}

func TestRunErrors(t *testing.T) {
	notJSON := writeExport(t, "notes.txt", export)
	err := run(&bytes.Buffer{}, notJSON, "", config.Default(), false)
	var unsupported *pluslife.UnsupportedInputError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "Please drop a valid JSON file.", userMessage(err))

	broken := writeExport(t, "broken.json", `{"testType":`)
	err = run(&bytes.Buffer{}, broken, "", config.Default(), false)
	var parseErr *pluslife.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, userMessage(err), "exported from the virus.sucks app")

	shapeless := writeExport(t, "shapeless.json", `{"testType":"x"}`)
	err = run(&bytes.Buffer{}, shapeless, "", config.Default(), false)
	assert.Contains(t, userMessage(err), "exported from the virus.sucks app")
}

func TestChartPath(t *testing.T) {
	assert.Equal(t, "/data/run1.png", chartPath("/data/run1.json", "", render.PNG))
	assert.Equal(t, "/charts/run1.svg", chartPath("/data/run1.json", "/charts", render.SVG))
}

func TestStyleVerdictUnknownIsPlain(t *testing.T) {
	assert.Equal(t, "Unknown", styleVerdict(pluslife.Translate(0)))
}
