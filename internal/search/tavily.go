package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/HinataHamura/ai-reality-engine/internal/model"
)

const tavilySourceTag = "web:tavily"

// TavilyProvider queries the Tavily search API. It serves as the primary
// provider when an API key is configured.
type TavilyProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewTavilyProvider creates a new Tavily provider
func NewTavilyProvider(apiKey string, timeout time.Duration) (*TavilyProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Tavily API key is required")
	}
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &TavilyProvider{
		apiKey:     apiKey,
		baseURL:    "https://api.tavily.com",
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the provider name
func (p *TavilyProvider) Name() string {
	return "tavily"
}

type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search runs a Tavily search for the query
func (p *TavilyProvider) Search(ctx context.Context, query string, max int) ([]model.EvidenceSnippet, error) {
	if max <= 0 {
		max = 5
	}

	body, err := json.Marshal(tavilyRequest{
		APIKey:     p.apiKey,
		Query:      query,
		MaxResults: max,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily API error: HTTP %d: %.200s", resp.StatusCode, string(respBody))
	}

	var parsed tavilyResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	snippets := make([]model.EvidenceSnippet, 0, len(parsed.Results))
	for _, result := range parsed.Results {
		if strings.TrimSpace(result.Content) == "" {
			continue
		}
		snippets = append(snippets, model.EvidenceSnippet{
			Source:  tavilySourceTag,
			URL:     result.URL,
			Title:   result.Title,
			Snippet: StripHTML(result.Content),
		})
		if len(snippets) >= max {
			break
		}
	}

	return snippets, nil
}

// SetBaseURL overrides the API endpoint (tests)
func (p *TavilyProvider) SetBaseURL(u string) {
	p.baseURL = strings.TrimSuffix(u, "/")
}
