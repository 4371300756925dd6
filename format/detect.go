// Package format provides file format detection for merge inputs.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// ZIP indicates a ZIP archive, which covers the office container
	// formats the merge pipeline does not accept.
	ZIP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case ZIP:
		return "ZIP"
	default:
		return "Unknown"
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".zip", ".docx", ".odt", ".xlsx", ".pptx", ".epub":
		return ZIP
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// This is more reliable than extension-based detection.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	// ZIP magic: PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return ZIP
	}

	return Unknown
}
