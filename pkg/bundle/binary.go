// File: pkg/bundle/binary.go
package bundle

import (
	"bytes"
)

// isBinaryContent checks if file content is likely to be binary by probing
// its first few bytes for null bytes or a high ratio of non-printable
// characters
func isBinaryContent(data []byte) bool {
	// Probe at most the first 512 bytes
	probe := data
	if len(probe) > 512 {
		probe = probe[:512]
	}

	// Empty files are considered text
	if len(probe) == 0 {
		return false
	}

	// Check for null bytes (common in binary files)
	if bytes.Contains(probe, []byte{0}) {
		return true
	}

	// Count non-printable characters
	nonPrintable := 0
	for _, b := range probe {
		if !isPrintable(b) {
			nonPrintable++
		}
	}

	// If more than 30% non-printable characters, consider it binary
	return float64(nonPrintable)/float64(len(probe)) > 0.3
}

// isPrintable checks if a byte represents a printable ASCII character
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t'
}
