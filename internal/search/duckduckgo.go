package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/HinataHamura/ai-reality-engine/internal/model"
)

const ddgSourceTag = "web:ddg"

// DuckDuckGoProvider queries the DuckDuckGo Instant Answer API.
// It needs no API key, which makes it the standing fallback provider.
type DuckDuckGoProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewDuckDuckGoProvider creates a new DuckDuckGo provider
func NewDuckDuckGoProvider(timeout time.Duration) *DuckDuckGoProvider {
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &DuckDuckGoProvider{
		baseURL:    "https://api.duckduckgo.com/",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name returns the provider name
func (p *DuckDuckGoProvider) Name() string {
	return "duckduckgo"
}

// Instant Answer API response (fields the engine consumes)
type ddgResponse struct {
	Abstract      string `json:"Abstract"`
	AbstractURL   string `json:"AbstractURL"`
	Heading       string `json:"Heading"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// Search queries the instant answer endpoint. The API returns at most one
// abstract plus related topics; max bounds the related topics taken.
func (p *DuckDuckGoProvider) Search(ctx context.Context, query string, max int) ([]model.EvidenceSnippet, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_redirect", "1")
	params.Set("no_html", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo API error: HTTP %d", resp.StatusCode)
	}

	var parsed ddgResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var snippets []model.EvidenceSnippet
	if strings.TrimSpace(parsed.Abstract) != "" {
		snippets = append(snippets, model.EvidenceSnippet{
			Source:  ddgSourceTag,
			URL:     parsed.AbstractURL,
			Title:   parsed.Heading,
			Snippet: StripHTML(parsed.Abstract),
		})
	}

	topicLimit := 3
	if max > 0 && max < topicLimit {
		topicLimit = max
	}
	topics := 0
	for _, topic := range parsed.RelatedTopics {
		if topics >= topicLimit {
			break
		}
		if strings.TrimSpace(topic.Text) == "" {
			continue
		}
		snippets = append(snippets, model.EvidenceSnippet{
			Source:  ddgSourceTag,
			URL:     topic.FirstURL,
			Title:   topic.FirstURL,
			Snippet: StripHTML(topic.Text),
		})
		topics++
	}

	return snippets, nil
}

// SetBaseURL overrides the API endpoint (tests)
func (p *DuckDuckGoProvider) SetBaseURL(u string) {
	p.baseURL = strings.TrimSuffix(u, "/") + "/"
}
