package model

// EvidenceSnippet represents a short retrieved text excerpt tied to one claim
type EvidenceSnippet struct {
	Source  string `json:"source"`          // Provider tag (e.g., "web:tavily", "web:ddg")
	URL     string `json:"url,omitempty"`   // Source URL, if the provider returned one
	Title   string `json:"title,omitempty"` // Page or topic title
	Snippet string `json:"snippet"`         // The excerpt text, HTML-stripped
}
