package review

import (
	"path/filepath"
	"strings"
)

var languageByExtension = map[string]string{
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".py":    "python",
	".java":  "java",
	".c":     "c",
	".cpp":   "cpp",
	".cs":    "csharp",
	".php":   "php",
	".rb":    "ruby",
	".go":    "go",
	".rs":    "rust",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
}

// uploadExtensions is the allow-list for file review uploads.
var uploadExtensions = map[string]bool{
	".js": true, ".jsx": true, ".ts": true, ".tsx": true, ".py": true,
	".java": true, ".c": true, ".cpp": true, ".cs": true, ".php": true,
	".rb": true, ".go": true, ".rs": true, ".swift": true, ".kt": true,
	".scala": true, ".vue": true, ".html": true, ".css": true, ".scss": true,
	".sql": true, ".sh": true, ".yaml": true, ".yml": true, ".json": true,
}

// DetectLanguage maps a filename to a language tag, falling back to the
// bare extension for types we don't name.
func DetectLanguage(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if lang, ok := languageByExtension[ext]; ok {
		return lang
	}
	return strings.TrimPrefix(ext, ".")
}

// AllowedUpload reports whether the filename's extension is reviewable.
func AllowedUpload(filename string) bool {
	return uploadExtensions[strings.ToLower(filepath.Ext(filename))]
}
