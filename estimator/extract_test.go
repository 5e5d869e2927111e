package estimator

import (
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "fenced json block",
			text: "Here is the estimate:\n```json\n{\"a\": 1}\n```\nDone.",
			want: `{"a": 1}`,
		},
		{
			name: "bare object",
			text: `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "object with surrounding prose",
			text: `Sure! {"a": {"b": 2}} Hope this helps.`,
			want: `{"a": {"b": 2}}`,
		},
		{
			name: "fence wins over outer braces",
			text: "{ignored}\n```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractJSON(tc.text)
			if err != nil {
				t.Fatalf("extractJSON: %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("extractJSON = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	for _, text := range []string{"", "no json here", "}{"} {
		if _, err := extractJSON(text); err == nil {
			t.Errorf("extractJSON(%q): expected an error", text)
		}
	}
}

func TestTaskPromptMentionsContext(t *testing.T) {
	req := Request{
		Description: "a small warehouse",
		Standard:    "NRM2 (RICS New Rules of Measurement)",
	}
	req.Country.Name = "Sri Lanka"
	req.Country.Currency = "LKR"

	p := taskPrompt(req)
	for _, want := range []string{"a small warehouse", "Sri Lanka", "LKR", "NRM2"} {
		if !strings.Contains(p, want) {
			t.Errorf("task prompt does not mention %q", want)
		}
	}
}

func TestSystemPromptMentionsCountry(t *testing.T) {
	var req Request
	req.Country.Name = "Qatar"
	req.Country.Currency = "QAR"
	req.Country.CurrencySymbol = "QAR"

	p := systemPrompt(req.Country)
	if !strings.Contains(p, "Qatar") || !strings.Contains(p, "QAR") {
		t.Error("system prompt does not carry the pricing locale")
	}
	if !strings.Contains(p, "json_schema") {
		t.Error("system prompt does not carry the output schema")
	}
}
