package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spetersoncode/ferret"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// Tavily calls the Tavily search API.
type Tavily struct {
	apiKey   string
	endpoint string
	client   *http.Client
	// depth controls Tavily's depth parameter (basic or advanced).
	depth string
}

// TavilyOption configures the Tavily client.
type TavilyOption func(*Tavily)

// WithDepth sets Tavily's search depth (basic or advanced).
func WithDepth(depth string) TavilyOption {
	return func(t *Tavily) {
		if depth != "" {
			t.depth = depth
		}
	}
}

// WithHTTPClient sets the HTTP client, useful for overriding the default
// 30 second timeout.
func WithHTTPClient(client *http.Client) TavilyOption {
	return func(t *Tavily) {
		if client != nil {
			t.client = client
		}
	}
}

// WithEndpoint overrides the API endpoint. Used in tests.
func WithEndpoint(endpoint string) TavilyOption {
	return func(t *Tavily) {
		if endpoint != "" {
			t.endpoint = endpoint
		}
	}
}

// NewTavily constructs a Tavily search provider.
func NewTavily(apiKey string, opts ...TavilyOption) *Tavily {
	t := &Tavily{
		apiKey:   apiKey,
		endpoint: tavilyEndpoint,
		depth:    "basic",
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Search posts a query to Tavily and returns up to maxResults records.
// Fields absent from the upstream response are left empty; the workflow
// substitutes placeholders when it derives sources.
func (t *Tavily) Search(ctx context.Context, query string, maxResults int) ([]ferret.SearchResult, error) {
	if strings.TrimSpace(t.apiKey) == "" {
		return nil, errors.New("tavily: API key is missing")
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	body := map[string]any{
		"query":       query,
		"api_key":     t.apiKey,
		"depth":       t.depth,
		"max_results": maxResults,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily http %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			Title         string `json:"title"`
			URL           string `json:"url"`
			PublishedDate string `json:"published_date"`
			Content       string `json:"content"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	results := make([]ferret.SearchResult, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, ferret.SearchResult{
			Title:         r.Title,
			URL:           r.URL,
			PublishedDate: r.PublishedDate,
			Snippet:       r.Content,
		})
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}

var _ ferret.Searcher = (*Tavily)(nil)
