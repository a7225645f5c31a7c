package classifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"docsort/internal/logging"
	"docsort/internal/services/llm"
)

func newTestClassifier(t *testing.T, handler http.HandlerFunc) (*LLMClassifier, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	client := llm.NewClient(llm.Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "test-model",
	})
	return New(client, logging.NewNop()), &requests
}

func completionResponse(content string) string {
	encoded := strings.NewReplacer(`"`, `\"`, "\n", `\n`).Replace(content)
	return `{"choices":[{"message":{"content":"` + encoded + `"}}]}`
}

func TestClassifyCleansSuggestion(t *testing.T) {
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse(`{"category": " Uber Receipts ", "new_filename": "uber ride receipt 2024-01-15"}`)))
	})
	got, err := c.Classify(context.Background(), "IMG_4521.jpg", "Uber trip receipt, January 15 2024, total $23.50")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.Category != "Uber Receipts" {
		t.Errorf("category = %q", got.Category)
	}
	if got.Filename != "uber_ride_receipt_2024-01-15" {
		t.Errorf("filename = %q", got.Filename)
	}
}

func TestClassifyNeutralizesCategorySeparators(t *testing.T) {
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse(`{"category": "Finance/2024", "new_filename": "q1_report"}`)))
	})
	got, err := c.Classify(context.Background(), "report.pdf", "quarterly report")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.Category != "Finance_2024" {
		t.Errorf("category = %q", got.Category)
	}
}

func TestClassifyHandlesFencedResponse(t *testing.T) {
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("```json\n{\"category\": \"Invoices\", \"new_filename\": \"acme_invoice\"}\n```")))
	})
	got, err := c.Classify(context.Background(), "scan.pdf", "invoice from acme")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.Category != "Invoices" || got.Filename != "acme_invoice" {
		t.Errorf("suggestion = %+v", got)
	}
}

func TestClassifyBlankTextSkipsNetwork(t *testing.T) {
	c, requests := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse(`{"category": "X", "new_filename": "y"}`)))
	})
	if _, err := c.Classify(context.Background(), "blank.txt", "   \n\t"); err == nil {
		t.Fatal("expected error for blank text")
	}
	if n := requests.Load(); n != 0 {
		t.Fatalf("blank text triggered %d requests", n)
	}
}

func TestClassifyRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing filename", `{"category": "Receipts"}`},
		{"missing category", `{"new_filename": "uber_ride_receipt"}`},
		{"blank fields", `{"category": "  ", "new_filename": ""}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(completionResponse(tc.content)))
			})
			if _, err := c.Classify(context.Background(), "doc.txt", "some text"); err == nil {
				t.Fatal("expected error for incomplete suggestion")
			}
		})
	}
}

func TestClassifyInvalidResponse(t *testing.T) {
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("I cannot determine a category for this document.")))
	})
	if _, err := c.Classify(context.Background(), "odd.txt", "some text"); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}

func TestClassifyServerError(t *testing.T) {
	c, _ := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	if _, err := c.Classify(context.Background(), "doc.txt", "some text"); err == nil {
		t.Fatal("expected error for http failure")
	}
}

func TestTruncateTextCapsLongInput(t *testing.T) {
	long := strings.Repeat("a", maxPromptTextRunes+500)
	got := truncateText(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncated text missing ellipsis: %q", got[len(got)-10:])
	}
	if len([]rune(got)) != maxPromptTextRunes+3 {
		t.Fatalf("truncated length = %d", len([]rune(got)))
	}
	short := "brief note"
	if truncateText(short) != short {
		t.Fatal("short text should pass through unchanged")
	}
}

func TestCleanCategoryCapsLength(t *testing.T) {
	long := strings.Repeat("Category Name ", 10)
	got := cleanCategory(long)
	if len([]rune(got)) > maxCategoryRunes {
		t.Fatalf("category length = %d", len([]rune(got)))
	}
	if strings.HasSuffix(got, " ") {
		t.Fatalf("category has trailing space: %q", got)
	}
}
