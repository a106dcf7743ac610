// Package naming derives safe, sortable object keys from client-supplied
// filenames.
package naming

import (
	"regexp"
	"strings"
	"time"
)

// DefaultBaseName is substituted when a filename is empty after stripping
// directory components.
const DefaultBaseName = "image"

// keyTimeLayout is second-resolution and fixed-width, so lexicographic order
// of generated keys equals chronological order.
const keyTimeLayout = "20060102T150405"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Sanitize turns an arbitrary filename into a safe object-key segment. It
// strips directory components (both separator styles; browsers may send full
// Windows paths), substitutes DefaultBaseName for empty input, and replaces
// every character outside [A-Za-z0-9._-] with underscore.
func Sanitize(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = DefaultBaseName
	}
	return unsafeChars.ReplaceAllString(name, "_")
}

// UploadKey combines a UTC timestamp with a sanitized name into an object
// key of the form 20240101T000000-photo.png. Two uploads within the same
// second with the same name produce the same key and overwrite each other.
func UploadKey(t time.Time, sanitized string) string {
	return t.UTC().Format(keyTimeLayout) + "-" + sanitized
}
