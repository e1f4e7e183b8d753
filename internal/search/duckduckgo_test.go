package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDuckDuckGoProvider_ParsesAbstractAndTopics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("Expected format=json, got %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "laksa origin" {
			t.Errorf("Expected query to pass through, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Abstract": "Laksa is a spicy noodle dish.",
			"AbstractURL": "https://en.wikipedia.org/wiki/Laksa",
			"Heading": "Laksa",
			"RelatedTopics": [
				{"Text": "Curry laksa - a coconut curry soup", "FirstURL": "https://duckduckgo.com/Curry_laksa"},
				{"Text": "", "FirstURL": "https://duckduckgo.com/empty"},
				{"Text": "Asam laksa - a sour fish soup", "FirstURL": "https://duckduckgo.com/Asam_laksa"}
			]
		}`))
	}))
	defer server.Close()

	p := NewDuckDuckGoProvider(5 * time.Second)
	p.SetBaseURL(server.URL)

	snippets, err := p.Search(context.Background(), "laksa origin", 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(snippets) != 3 {
		t.Fatalf("Expected 3 snippets (abstract + 2 topics), got %d", len(snippets))
	}

	if snippets[0].Title != "Laksa" {
		t.Errorf("Expected abstract heading as title, got %q", snippets[0].Title)
	}
	if snippets[0].URL != "https://en.wikipedia.org/wiki/Laksa" {
		t.Errorf("Unexpected abstract URL: %q", snippets[0].URL)
	}
	if snippets[0].Source != "web:ddg" {
		t.Errorf("Expected source tag web:ddg, got %q", snippets[0].Source)
	}
	if snippets[1].Snippet != "Curry laksa - a coconut curry soup" {
		t.Errorf("Unexpected topic snippet: %q", snippets[1].Snippet)
	}
}

func TestDuckDuckGoProvider_CapsRelatedTopicsWithoutAbstract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Abstract": "",
			"RelatedTopics": [
				{"Text": "topic one", "FirstURL": "https://duckduckgo.com/1"},
				{"Text": "topic two", "FirstURL": "https://duckduckgo.com/2"},
				{"Text": "topic three", "FirstURL": "https://duckduckgo.com/3"},
				{"Text": "topic four", "FirstURL": "https://duckduckgo.com/4"},
				{"Text": "topic five", "FirstURL": "https://duckduckgo.com/5"}
			]
		}`))
	}))
	defer server.Close()

	p := NewDuckDuckGoProvider(5 * time.Second)
	p.SetBaseURL(server.URL)

	snippets, err := p.Search(context.Background(), "many topics", 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(snippets) != 3 {
		t.Fatalf("Expected at most 3 related topics, got %d", len(snippets))
	}
	if snippets[2].Snippet != "topic three" {
		t.Errorf("Expected topics in order, got %q last", snippets[2].Snippet)
	}
}

func TestDuckDuckGoProvider_AbstractDoesNotConsumeTopicBudget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Abstract": "An abstract.",
			"AbstractURL": "https://example.com/a",
			"Heading": "Heading",
			"RelatedTopics": [
				{"Text": "topic one", "FirstURL": "https://duckduckgo.com/1"},
				{"Text": "topic two", "FirstURL": "https://duckduckgo.com/2"},
				{"Text": "topic three", "FirstURL": "https://duckduckgo.com/3"},
				{"Text": "topic four", "FirstURL": "https://duckduckgo.com/4"}
			]
		}`))
	}))
	defer server.Close()

	p := NewDuckDuckGoProvider(5 * time.Second)
	p.SetBaseURL(server.URL)

	snippets, err := p.Search(context.Background(), "abstract plus topics", 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(snippets) != 4 {
		t.Fatalf("Expected abstract + 3 related topics, got %d snippets", len(snippets))
	}
	if snippets[0].Title != "Heading" {
		t.Errorf("Expected abstract first, got %q", snippets[0].Title)
	}
}

func TestDuckDuckGoProvider_EmptyResponseIsEmptyNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Abstract": "", "RelatedTopics": []}`))
	}))
	defer server.Close()

	p := NewDuckDuckGoProvider(5 * time.Second)
	p.SetBaseURL(server.URL)

	snippets, err := p.Search(context.Background(), "nothing known", 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(snippets) != 0 {
		t.Errorf("Expected no snippets, got %d", len(snippets))
	}
}

func TestDuckDuckGoProvider_HTTPErrorIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewDuckDuckGoProvider(5 * time.Second)
	p.SetBaseURL(server.URL)

	_, err := p.Search(context.Background(), "anything", 5)
	if err == nil {
		t.Fatal("Expected error on HTTP 500")
	}
}
