package pluslife

import (
	"mime"
	"path/filepath"
	"strings"
)

// JSONMediaType is the MIME type browsers attach to .json files.
const JSONMediaType = "application/json"

// CheckInput decides whether a user-supplied file should be ingested at all.
// A file is accepted when its MIME type is application/json or its name ends
// in .json; otherwise an *UnsupportedInputError is returned.
func CheckInput(filename, mimeType string) error {
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil && mediaType == JSONMediaType {
		return nil
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return nil
	}

	return &UnsupportedInputError{Name: filename, MIMEType: mimeType}
}
