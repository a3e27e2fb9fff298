package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"provider error", &ProviderError{Kind: KindNetwork, Err: errors.New("refused")}, KindNetwork},
		{"wrapped provider error", fmt.Errorf("calling: %w", &ProviderError{Kind: KindModel, Err: errors.New("gone")}), KindModel},
		{"plain error", errors.New("whatever"), KindUnclassified},
		{"missing key", ErrMissingAPIKey, KindUnclassified},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Errorf("Classify = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindFromStatus(t *testing.T) {
	cases := []struct {
		code int
		body string
		want ErrorKind
	}{
		{403, "", KindCredential},
		{401, "", KindCredential},
		{400, "API key not valid. Please pass a valid API key.", KindCredential},
		{400, `{"error":"api_key invalid"}`, KindCredential},
		{404, "", KindModel},
		{400, "unknown model", KindModel},
		{500, "internal", KindUnclassified},
		{429, "quota exceeded", KindUnclassified},
	}

	for _, tc := range cases {
		if got := kindFromStatus(tc.code, tc.body); got != tc.want {
			t.Errorf("kindFromStatus(%d, %q) = %q, want %q", tc.code, tc.body, got, tc.want)
		}
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &ProviderError{Kind: KindNetwork, Status: "502 Bad Gateway", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("ProviderError should unwrap to its cause")
	}
	if err.Error() == "" {
		t.Error("empty error string")
	}
}
