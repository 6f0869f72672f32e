package ctftime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
)

const (
	// DefaultBaseURL is the public CTFTime API endpoint
	DefaultBaseURL = "https://ctftime.org"

	// defaultUserAgent mimics a browser; CTFTime rejects requests with the
	// default Go user agent
	defaultUserAgent = "Gecko"

	defaultTimeout = 15 * time.Second
)

// ErrEventNotFound indicates the schedule service has no event for the ID
var ErrEventNotFound = goerr.New("ctftime event not found")

// Service provides interface to the CTFTime schedule API
type Service interface {
	// GetEvent fetches one event record by its CTFTime event ID
	GetEvent(ctx context.Context, eventID string) (*model.Event, error)
}

// Client implements Service against the public CTFTime REST API
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a CTFTime API client
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExtractEventID returns the last non-empty path segment of a CTFTime event
// URL, e.g. "9999" for "https://ctftime.org/event/9999/".
func ExtractEventID(eventURL string) (string, error) {
	parts := strings.Split(eventURL, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i], nil
		}
	}
	return "", goerr.New("no event ID in URL", goerr.V("url", eventURL))
}

// GetEvent fetches an event record from the schedule API
func (c *Client) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	if eventID == "" {
		return nil, goerr.New("event ID is required")
	}

	url := fmt.Sprintf("%s/api/v1/events/%s/", c.baseURL, eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build ctftime request", goerr.V("url", url))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call ctftime API", goerr.V("url", url))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, goerr.Wrap(ErrEventNotFound, "ctftime returned 404", goerr.V("event_id", eventID))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, goerr.New("ctftime returned unexpected status",
			goerr.V("status", resp.StatusCode), goerr.V("event_id", eventID))
	}

	var event model.Event
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return nil, goerr.Wrap(err, "failed to decode ctftime response", goerr.V("event_id", eventID))
	}

	if err := event.Validate(); err != nil {
		return nil, goerr.Wrap(err, "ctftime response is incomplete", goerr.V("event_id", eventID))
	}

	return &event, nil
}

var _ Service = &Client{}
