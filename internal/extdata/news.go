package extdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Headline is a single news item returned by a NewsClient.
type Headline struct {
	Title       string
	Description string
	PublishedAt time.Time
}

// NewsClient fetches recent headlines for a topic.
type NewsClient interface {
	Headlines(ctx context.Context, topic string) ([]Headline, error)
}

// NewsAPI is a NewsClient backed by a NewsAPI-compatible endpoint.
type NewsAPI struct {
	apiKey   string
	endpoint string
	pageSize int
	client   *http.Client
}

// NewNewsAPI creates a news client for the given endpoint.
func NewNewsAPI(apiKey, endpoint string) *NewsAPI {
	return &NewsAPI{
		apiKey:   apiKey,
		endpoint: endpoint,
		pageSize: 20,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type newsResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

// Headlines fetches recent headlines matching the topic.
func (n *NewsAPI) Headlines(ctx context.Context, topic string) ([]Headline, error) {
	q := url.Values{}
	q.Set("q", topic)
	q.Set("apiKey", n.apiKey)
	q.Set("pageSize", fmt.Sprintf("%d", n.pageSize))
	q.Set("sortBy", "publishedAt")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if result.Status != "" && result.Status != "ok" {
		return nil, fmt.Errorf("api status: %s", result.Status)
	}

	headlines := make([]Headline, 0, len(result.Articles))
	for _, a := range result.Articles {
		headlines = append(headlines, Headline{
			Title:       a.Title,
			Description: a.Description,
			PublishedAt: a.PublishedAt,
		})
	}

	return headlines, nil
}
