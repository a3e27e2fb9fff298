package quiz

import (
	"strings"
	"testing"
)

const sampleElement = `{"question":"Q","options":["A","B","C","D"],"correct_answer":1,"explanation":"E","improvement_suggestions":["S1","S2"]}`

func sampleArray(n int) string {
	els := make([]string, n)
	for i := range els {
		els[i] = sampleElement
	}
	return "[" + strings.Join(els, ",") + "]"
}

func TestExtractArrayCleanJSON(t *testing.T) {
	arr, ok := extractArray(sampleArray(5))
	if !ok {
		t.Fatal("extractArray failed on clean JSON")
	}
	if len(arr) != 5 {
		t.Fatalf("got %d elements, want 5", len(arr))
	}
	if arr[0]["question"] != "Q" {
		t.Errorf("question = %v, want Q", arr[0]["question"])
	}
}

func TestExtractArrayFenced(t *testing.T) {
	cases := []struct {
		name string
		wrap func(string) string
	}{
		{"json fence", func(s string) string { return "```json\n" + s + "\n```" }},
		{"bare fence", func(s string) string { return "```\n" + s + "\n```" }},
		{"leading whitespace", func(s string) string { return "\n\n  " + s + "  \n" }},
		{"surrounding prose", func(s string) string {
			return "Sure! Here is your quiz:\n" + s + "\nGood luck!"
		}},
	}

	want, ok := extractArray(sampleArray(5))
	if !ok {
		t.Fatal("baseline parse failed")
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			arr, ok := extractArray(tc.wrap(sampleArray(5)))
			if !ok {
				t.Fatal("extractArray failed")
			}
			if len(arr) != len(want) {
				t.Fatalf("got %d elements, want %d", len(arr), len(want))
			}
			for i := range arr {
				if arr[i]["question"] != want[i]["question"] {
					t.Errorf("element %d differs from unfenced parse", i)
				}
			}
		})
	}
}

func TestExtractArrayRegexFallback(t *testing.T) {
	// The bracket slice picks up the earlier, invalid bracket pair; only
	// the regex pass finds the embedded object array.
	raw := "Notes [draft] follow. " + sampleArray(3) + " done"
	arr, ok := extractArray(raw)
	if !ok {
		t.Fatal("extractArray failed to recover embedded array")
	}
	if len(arr) != 3 {
		t.Fatalf("got %d elements, want 3", len(arr))
	}
}

func TestExtractArrayGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"I cannot generate a quiz for that topic.",
		"{\"question\":\"not an array\"}",
		"[1, 2, 3]",
		"```json\nnot json at all\n```",
	} {
		if arr, ok := extractArray(raw); ok {
			t.Errorf("extractArray(%q) succeeded with %d elements, want failure", raw, len(arr))
		}
	}
}

func TestCleanContent(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"bare fence", "```\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"prose wrapped", "Here you go: [{\"a\":1}] enjoy", `[{"a":1}]`},
		{"no array", "no brackets here", "no brackets here"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanContent(tc.in); got != tc.want {
				t.Errorf("cleanContent(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
