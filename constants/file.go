package constants

import "strings"

// SourceTypes holds the source type values reported by text extractors.
var SourceTypes = []string{"TXT", "COMMAND"}

// AllowedExtensions holds the file extensions the batch harness picks up.
var AllowedExtensions = map[string]struct{}{
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
