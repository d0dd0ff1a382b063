package pluslife

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		code  float64
		label string
		css   string
	}{
		{1, "Negative", "color: green; font-weight: bold;"},
		{2, "Positive", "color: red; font-weight: bold;"},
		{3, "Invalid", "color: orange; font-weight: bold;"},
		{0, "Unknown", ""},
		{4, "Unknown", ""},
		{-1, "Unknown", ""},
		{1.5, "Unknown", ""},
	}

	for _, tc := range cases {
		v := Translate(tc.code)
		assert.Equal(t, tc.label, v.Label, "code %v", tc.code)
		assert.Equal(t, tc.css, v.Style.CSS(), "code %v", tc.code)
	}

	assert.Equal(t, Style{}, Translate(99).Style)
}

func TestSummarize(t *testing.T) {
	s := Summarize(TestDocument{TestType: "RSV", TestResult: TestResult{DetectionResult: 1}})
	assert.Equal(t, "Test type: RSV | Test result: Negative", s.String())
}

func TestCheckInput(t *testing.T) {
	assert.NoError(t, CheckInput("export.json", ""))
	assert.NoError(t, CheckInput("EXPORT.JSON", "application/octet-stream"))
	assert.NoError(t, CheckInput("blob", "application/json"))
	assert.NoError(t, CheckInput("blob", "application/json; charset=utf-8"))

	err := CheckInput("photo.png", "image/png")
	var unsupported *UnsupportedInputError
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "photo.png", unsupported.Name)
}

func TestAlert(t *testing.T) {
	assert.Equal(t, "Please drop a valid JSON file.", Alert(CheckInput("a.txt", "text/plain")))

	_, err := Ingest([]byte("{"))
	assert.Contains(t, Alert(err), "valid JSON file exported from the virus.sucks app")

	_, err = Ingest([]byte("{}"))
	assert.Contains(t, Alert(err), "valid JSON file exported from the virus.sucks app")

	assert.Equal(t, "", Alert(errors.New("disk full")))
}
