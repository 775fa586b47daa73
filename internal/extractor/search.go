package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"wiki-quiz/internal/domain"
)

const opensearchEndpoint = "https://en.wikipedia.org/w/api.php"

// SearchTopic resolves a free-text topic to the URL of the top Wikipedia
// search result via the opensearch API.
func (e *Extractor) SearchTopic(ctx context.Context, topic string) (string, error) {
	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", topic)
	params.Set("limit", "1")
	params.Set("namespace", "0")
	params.Set("format", "json")

	endpoint := e.searchEndpoint
	if endpoint == "" {
		endpoint = opensearchEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", domain.NewInternalError("failed to build search request", err)
	}
	req.Header.Set("User-Agent", e.cfg.UserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", domain.NewNetworkError(
			fmt.Sprintf("Failed to search Wikipedia for topic %q. Please check your internet connection.", topic), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewNetworkError(
			fmt.Sprintf("Wikipedia search returned HTTP %d for topic %q", resp.StatusCode, topic), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewNetworkError("Failed to read Wikipedia search response", err)
	}

	// Response shape: [search_term, [titles], [descriptions], [urls]]
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope) < 4 {
		return "", domain.NewContentError(
			fmt.Sprintf("Unexpected Wikipedia search response for topic %q", topic), err)
	}

	var urls []string
	if err := json.Unmarshal(envelope[3], &urls); err != nil || len(urls) == 0 {
		return "", domain.NewContentError(
			fmt.Sprintf("No Wikipedia article found for topic: %s", topic), nil)
	}

	return urls[0], nil
}
