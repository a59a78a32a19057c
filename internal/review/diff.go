package review

import (
	"fmt"
	"strings"
)

// Diff produces a line-aligned textual diff between two code versions.
// Lines are compared by index only, with no move or alignment detection:
// the incremental prompt wants a "what changed at line n" view, not a
// minimal edit script. Returns "" when the versions are equal.
func Diff(original, modified string) string {
	originalLines := strings.Split(original, "\n")
	modifiedLines := strings.Split(modified, "\n")

	longest := len(originalLines)
	if len(modifiedLines) > longest {
		longest = len(modifiedLines)
	}

	var out []string
	for i := 0; i < longest; i++ {
		var origLine, modLine string
		if i < len(originalLines) {
			origLine = originalLines[i]
		}
		if i < len(modifiedLines) {
			modLine = modifiedLines[i]
		}

		if origLine == modLine {
			continue
		}

		lineNum := i + 1
		if origLine != "" && modLine == "" {
			out = append(out, fmt.Sprintf("- %d: %s", lineNum, origLine))
		} else if origLine == "" && modLine != "" {
			out = append(out, fmt.Sprintf("+ %d: %s", lineNum, modLine))
		} else {
			out = append(out, fmt.Sprintf("- %d: %s", lineNum, origLine))
			out = append(out, fmt.Sprintf("+ %d: %s", lineNum, modLine))
		}
	}

	return strings.Join(out, "\n")
}
