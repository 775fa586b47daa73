package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"wiki-quiz/internal/config"
	"wiki-quiz/internal/domain"

	"go.uber.org/zap"
)

// retryableStatuses are the transient HTTP statuses worth another attempt.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Extractor fetches Wikipedia articles and normalizes them into
// ContentRecords. It implements domain.ArticleExtractor.
type Extractor struct {
	cfg    config.ExtractorConfig
	client *http.Client
	logger *zap.Logger

	// searchEndpoint overrides the opensearch API location in tests.
	searchEndpoint string
}

// NewExtractor creates an Extractor with its own HTTP client. The connect
// timeout is enforced by the dialer, the (longer) request timeout by the
// client.
func NewExtractor(cfg config.ExtractorConfig, logger *zap.Logger) *Extractor {
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: cfg.ConnectTimeout,
		},
	}
	return &Extractor{cfg: cfg, client: client, logger: logger}
}

var _ domain.ArticleExtractor = (*Extractor)(nil)

// Extract fetches the article at url with retry/backoff and parses it.
func (e *Extractor) Extract(ctx context.Context, url string) (*domain.ContentRecord, error) {
	body, err := e.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	record := e.parse(body)
	e.logger.Info("Extracted article content",
		zap.String("url", url),
		zap.String("title", record.Title),
		zap.Int("sections", len(record.Sections)),
		zap.Int("text_len", len(record.FullText)),
	)
	return record, nil
}

// fetch performs the HTTP GET with up to MaxAttempts tries. Transport
// failures and transient statuses back off BackoffBase x attempt-number
// between tries; 404 and 403 fail immediately without retry.
func (e *Extractor) fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	var lastStatus int

	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := e.cfg.BackoffBase * time.Duration(attempt-1)
			e.logger.Debug("Retrying fetch",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", delay),
			)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, domain.NewNetworkError(
					fmt.Sprintf("Fetch of %s canceled", url), ctx.Err())
			}
		}

		body, status, err := e.doRequest(ctx, url)
		if err != nil {
			lastErr = err
			lastStatus = 0
			continue
		}

		switch {
		case status == http.StatusOK:
			return body, nil
		case status == http.StatusNotFound:
			return nil, domain.NewContentError(
				fmt.Sprintf("Wikipedia page not found: %s. Please check the URL and try again.", url), nil)
		case status == http.StatusForbidden:
			return nil, domain.NewContentError(
				fmt.Sprintf("Access forbidden: %s. Wikipedia may be blocking the request.", url), nil)
		case retryableStatuses[status]:
			lastErr = nil
			lastStatus = status
			continue
		default:
			return nil, domain.NewContentError(
				fmt.Sprintf("HTTP error %d while fetching %s", status, url), nil)
		}
	}

	return nil, e.exhaustedError(url, lastErr, lastStatus)
}

func (e *Extractor) doRequest(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", e.cfg.UserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

// exhaustedError builds the terminal NetworkError, distinguishing DNS
// failure from timeout from generic connectivity so the message stays
// actionable for the caller.
func (e *Extractor) exhaustedError(url string, lastErr error, lastStatus int) error {
	if lastErr == nil {
		return domain.NewNetworkError(
			fmt.Sprintf("Failed to fetch %s after %d attempts (last HTTP status %d). The site may be overloaded; please try again later.",
				url, e.cfg.MaxAttempts, lastStatus), nil)
	}

	var dnsErr *net.DNSError
	if errors.As(lastErr, &dnsErr) {
		return domain.NewNetworkError(
			"Network connection error: cannot resolve the Wikipedia domain. "+
				"Please check your internet connection and DNS settings.", lastErr)
	}

	var netErr net.Error
	if errors.As(lastErr, &netErr) && netErr.Timeout() {
		return domain.NewNetworkError(
			fmt.Sprintf("Connection timeout while fetching %s. Please check your internet connection and try again.", url),
			lastErr)
	}

	return domain.NewNetworkError(
		fmt.Sprintf("Connection error while fetching %s. Please check your internet connection and try again.", url),
		lastErr)
}
