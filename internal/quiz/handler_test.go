package quiz

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/pytutor/pytutor_service/internal/usage"
)

func quizApp(fake *fakeClient) *fiber.App {
	app := fiber.New()
	h := NewHandler(newTestService(fake, usage.NewLedger(), ""))
	app.Post("/api/quiz", h.Generate)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, Response) {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, out
}

func TestQuizEndpointMissingKey(t *testing.T) {
	fake := &fakeClient{reply: sampleArray(5)}
	app := quizApp(fake)

	resp, out := postJSON(t, app, "/api/quiz", map[string]string{"topic": "Lists"})
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if out.Error == "" {
		t.Error("want an error message for a missing api_key")
	}
	if len(out.Questions) != 0 {
		t.Errorf("questions = %d, want 0", len(out.Questions))
	}
	if fake.calls != 0 {
		t.Errorf("provider called %d times, want short-circuit before the call", fake.calls)
	}
}

func TestQuizEndpointSuccess(t *testing.T) {
	app := quizApp(&fakeClient{reply: sampleArray(5)})

	resp, out := postJSON(t, app, "/api/quiz", map[string]string{
		"topic":             "Lists",
		"language":          "English",
		"familiarity_level": "Novice",
		"api_key":           "caller-key",
	})
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if out.Error != "" {
		t.Errorf("unexpected error: %q", out.Error)
	}
	if len(out.Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(out.Questions))
	}
}

func TestQuizEndpointGenerationFailure(t *testing.T) {
	app := quizApp(&fakeClient{reply: "no json here"})

	resp, out := postJSON(t, app, "/api/quiz", map[string]string{
		"topic":   "Lists",
		"api_key": "caller-key",
	})
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200 even on failure", resp.StatusCode)
	}
	if out.Error == "" {
		t.Error("want an error message when extraction yields nothing")
	}
	if out.Questions == nil || len(out.Questions) != 0 {
		t.Errorf("questions should be an empty list, got %v", out.Questions)
	}
}
