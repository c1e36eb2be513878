package fetch

import (
	"context"
	"io"
	"net/http"

	"github.com/ytget/yt-thumbnailer/internal/logger"
	"github.com/ytget/yt-thumbnailer/internal/model"
	"github.com/ytget/ytdlp/v2/client"
)

var log = logger.Get("Fetch")

// Fetcher retrieves a page body as text
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Service fetches pages over HTTP. Requests are not retried.
type Service struct {
	httpClient *http.Client
	userAgent  string
}

// NewService creates a fetch service backed by the ytdlp HTTP client.
// Timeout and retries are left at zero so the request is sent exactly once.
func NewService(userAgent string) *Service {
	c := client.NewWith(client.Config{UserAgent: userAgent})
	return NewServiceWithClient(c.HTTPClient, userAgent)
}

// NewServiceWithClient creates a fetch service using the provided client
func NewServiceWithClient(httpClient *http.Client, userAgent string) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Service{httpClient: httpClient, userAgent: userAgent}
}

// Fetch performs a GET and returns the full response body. Only transport errors
// fail; error pages are returned like any other body.
func (s *Service) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &model.NetworkError{URL: url, Err: err}
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &model.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &model.NetworkError{URL: url, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Emit(logger.WARNING, "%s answered %s, scanning the body anyway", url, resp.Status)
	}
	log.Emit(logger.DEBUG, "fetched %d bytes from %s", len(body), url)
	return string(body), nil
}
