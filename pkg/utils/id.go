package utils

import "strings"

// IsValidDocumentID reports whether id is usable as a Firestore document ID.
// Firestore rejects empty IDs, path separators, the reserved "." and ".."
// names, the __name__ style reserved pattern, and IDs over 1500 bytes.
func IsValidDocumentID(id string) bool {
	if id == "" || len(id) > 1500 {
		return false
	}
	if id == "." || id == ".." {
		return false
	}
	if strings.Contains(id, "/") {
		return false
	}
	if strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__") {
		return false
	}
	return true
}
