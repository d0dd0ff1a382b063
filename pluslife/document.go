package pluslife

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// TicksPerMinute is the number of exported samplingTime units in one minute.
// The export does not document the unit, so callers that know better can use
// IngestWithDivisor.
const TicksPerMinute = 600.0

// Channel is a detection channel index on the device. Channel 3 is the
// control channel.
type Channel int

// ControlChannel is conventionally wired to the internal control.
const ControlChannel Channel = 3

// RawSample is one fluorescence measurement as found in the export.
type RawSample struct {
	SamplingTime       float64
	StartingChannel    Channel
	FirstChannelResult float64
}

// Sample is a RawSample whose SamplingTime has been converted to minutes.
type Sample struct {
	SamplingTime       float64
	StartingChannel    Channel
	FirstChannelResult float64
}

type TestResult struct {
	DetectionResult float64
}

type TestData struct {
	Samples []Sample
}

// TestDocument is one parsed and normalized export. It is never modified
// after Ingest returns it; loading a new file replaces it wholesale.
type TestDocument struct {
	TestType   string
	TestResult TestResult
	TestData   TestData
}

// Ingest parses the raw contents of an exported file and normalizes every
// sample's samplingTime to minutes. It returns a *ParseError if raw is not
// JSON and a *ShapeError if it is JSON but not shaped like an export. Field
// names must match exactly, including case. An export with zero samples is
// valid.
func Ingest(raw []byte) (TestDocument, error) {
	return IngestWithDivisor(raw, TicksPerMinute)
}

// IngestWithDivisor is Ingest with a caller-supplied number of samplingTime
// units per minute.
func IngestWithDivisor(raw []byte, ticksPerMinute float64) (TestDocument, error) {
	if ticksPerMinute <= 0 || math.IsInf(ticksPerMinute, 0) || math.IsNaN(ticksPerMinute) {
		return TestDocument{}, fmt.Errorf("ticks per minute must be a positive number, got %v", ticksPerMinute)
	}

	text, err := decodeText(raw)
	if err != nil {
		return TestDocument{}, &ParseError{Err: err}
	}

	// Decoding into generic values rather than tagged structs keeps key
	// matching case-sensitive.
	var tree interface{}
	if err := json.Unmarshal(text, &tree); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return TestDocument{}, &ParseError{Offset: syntaxErr.Offset, Err: err}
		}

		return TestDocument{}, &ParseError{Err: err}
	}

	return document(tree, ticksPerMinute)
}

func document(tree interface{}, ticksPerMinute float64) (TestDocument, error) {
	var out TestDocument

	root, err := asObject(tree, "(document)")
	if err != nil {
		return out, err
	}

	if out.TestType, err = stringAt(root, "", "testType"); err != nil {
		return out, err
	}

	testResult, err := objectAt(root, "", "testResult")
	if err != nil {
		return out, err
	}
	if out.TestResult.DetectionResult, err = numberAt(testResult, "testResult", "detectionResult"); err != nil {
		return out, err
	}

	testData, err := objectAt(root, "", "testData")
	if err != nil {
		return out, err
	}
	samples, err := arrayAt(testData, "testData", "samples")
	if err != nil {
		return out, err
	}

	out.TestData.Samples = make([]Sample, 0, len(samples))
	for i, v := range samples {
		raw, err := rawSample(v, fmt.Sprintf("testData.samples[%d]", i))
		if err != nil {
			return TestDocument{}, err
		}

		out.TestData.Samples = append(out.TestData.Samples, Normalize(raw, ticksPerMinute))
	}

	return out, nil
}

func rawSample(v interface{}, path string) (RawSample, error) {
	var out RawSample

	sample, err := asObject(v, path)
	if err != nil {
		return out, err
	}

	if out.SamplingTime, err = numberAt(sample, path, "samplingTime"); err != nil {
		return out, err
	}

	ch, err := numberAt(sample, path, "startingChannel")
	if err != nil {
		return out, err
	}
	if ch != math.Trunc(ch) || math.Abs(ch) > math.MaxInt32 {
		return out, &ShapeError{Field: path + ".startingChannel", Problem: fmt.Sprintf("channel %v is not an integer", ch)}
	}
	out.StartingChannel = Channel(ch)

	if out.FirstChannelResult, err = numberAt(sample, path, "firstChannelResult"); err != nil {
		return out, err
	}

	return out, nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func asObject(v interface{}, path string) (map[string]interface{}, error) {
	if v == nil {
		return nil, missing(path)
	}

	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, wrongType(path, "object", v)
	}

	return m, nil
}

func objectAt(m map[string]interface{}, parent, name string) (map[string]interface{}, error) {
	return asObject(m[name], joinPath(parent, name))
}

func stringAt(m map[string]interface{}, parent, name string) (string, error) {
	path := joinPath(parent, name)

	v := m[name]
	if v == nil {
		return "", missing(path)
	}

	s, ok := v.(string)
	if !ok {
		return "", wrongType(path, "string", v)
	}

	return s, nil
}

func numberAt(m map[string]interface{}, parent, name string) (float64, error) {
	path := joinPath(parent, name)

	v := m[name]
	if v == nil {
		return 0, missing(path)
	}

	f, ok := v.(float64)
	if !ok {
		return 0, wrongType(path, "number", v)
	}

	return f, nil
}

func arrayAt(m map[string]interface{}, parent, name string) ([]interface{}, error) {
	path := joinPath(parent, name)

	v := m[name]
	if v == nil {
		return nil, missing(path)
	}

	a, ok := v.([]interface{})
	if !ok {
		return nil, wrongType(path, "array", v)
	}

	return a, nil
}

// Normalize converts a raw sample's samplingTime into minutes. No rounding is
// applied, so the result is exactly SamplingTime / ticksPerMinute.
func Normalize(raw RawSample, ticksPerMinute float64) Sample {
	return Sample{
		SamplingTime:       raw.SamplingTime / ticksPerMinute,
		StartingChannel:    raw.StartingChannel,
		FirstChannelResult: raw.FirstChannelResult,
	}
}

var utf8BOM = []byte("\xef\xbb\xbf")

// decodeText returns raw as UTF-8. Valid UTF-8 passes through untouched;
// anything else (UTF-16 with a BOM, Latin-1 exports) is sniffed and
// transcoded.
func decodeText(raw []byte) ([]byte, error) {
	text := raw
	if !utf8.Valid(raw) {
		enc, _, _ := charset.DetermineEncoding(raw, "application/json")

		decoded, err := enc.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, err
		}
		text = decoded
	}

	return bytes.TrimPrefix(text, utf8BOM), nil
}
