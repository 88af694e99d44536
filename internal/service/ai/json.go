package ai

import (
	"fmt"
	"strings"
)

// ExtractJSON cuts the first JSON object out of a model reply. Models often
// wrap the object in prose or code fences, so everything outside the
// outermost braces is discarded.
func ExtractJSON(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("missing json object")
	}
	return trimmed[start : end+1], nil
}
