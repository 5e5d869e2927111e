package estimator

import (
	"fmt"
	"regexp"
	"strings"
)

var jsonFence = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// extractJSON pulls the JSON payload out of a model answer. A fenced
// ```json block wins; otherwise everything between the first '{' and the
// last '}' is taken.
func extractJSON(text string) ([]byte, error) {
	if m := jsonFence.FindStringSubmatch(text); m != nil {
		return []byte(m[1]), nil
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in model response")
	}
	return []byte(text[start : end+1]), nil
}
