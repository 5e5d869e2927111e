package estimator

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// ErrQuotaExhausted reports that the model rejected the request for quota
// reasons even after the automatic retries.
var ErrQuotaExhausted = errors.New("quota exceeded: the model is busy, retried 3 times without success, try again in 1-2 minutes")

// ErrSafetyBlocked reports that the model refused the input.
var ErrSafetyBlocked = errors.New("safety block: the model flagged this text or file, try different content")

// isQuotaError reports whether err looks like a rate or quota rejection.
func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "Too Many Requests")
}

var embeddedJSON = regexp.MustCompile(`(?s)\{.*\}`)

// apiErrorMessage digs the human message out of an API error whose text
// embeds a JSON body, the usual shape being {"error":{"message":...}}.
// It returns the original message when there is nothing to dig.
func apiErrorMessage(msg string) string {
	raw := embeddedJSON.FindString(msg)
	if raw == "" {
		return msg
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return msg
	}
	got, err := jsonpath.Get("$.error.message", v)
	if err != nil {
		return msg
	}
	if s, ok := got.(string); ok && s != "" {
		return s
	}
	return msg
}

// Classify turns a raw model error into a stable, user-presentable one.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	msg := apiErrorMessage(err.Error())
	switch {
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return ErrQuotaExhausted
	case strings.Contains(msg, "SAFETY"):
		return ErrSafetyBlocked
	}
	return fmt.Errorf("%s", msg)
}
