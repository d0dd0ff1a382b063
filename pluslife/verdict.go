package pluslife

import (
	"fmt"
	"strings"
)

// Detection result codes as exported by the app.
const (
	DetectionNegative = 1
	DetectionPositive = 2
	DetectionInvalid  = 3
)

// Style describes how a verdict label is emphasized. The zero Style means no
// special styling.
type Style struct {
	Color string
	Bold  bool
}

// CSS renders the style as an inline CSS declaration list.
func (s Style) CSS() string {
	var decls []string
	if s.Color != "" {
		decls = append(decls, "color: "+s.Color)
	}
	if s.Bold {
		decls = append(decls, "font-weight: bold")
	}
	if len(decls) == 0 {
		return ""
	}

	return strings.Join(decls, "; ") + ";"
}

type Verdict struct {
	Label string
	Style Style
}

// Translate maps a detection result code to its label and style. Every input
// resolves: anything other than 1, 2 or 3 (including non-integers) is
// "Unknown" with no styling.
func Translate(code float64) Verdict {
	switch code {
	case DetectionNegative:
		return Verdict{Label: "Negative", Style: Style{Color: "green", Bold: true}}
	case DetectionPositive:
		return Verdict{Label: "Positive", Style: Style{Color: "red", Bold: true}}
	case DetectionInvalid:
		return Verdict{Label: "Invalid", Style: Style{Color: "orange", Bold: true}}
	default:
		return Verdict{Label: "Unknown"}
	}
}

// Summary is the one-line description shown above the chart.
type Summary struct {
	TestType string
	Verdict  Verdict
}

func Summarize(doc TestDocument) Summary {
	return Summary{
		TestType: doc.TestType,
		Verdict:  Translate(doc.TestResult.DetectionResult),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Test type: %s | Test result: %s", s.TestType, s.Verdict.Label)
}
