// Package gateway provides the transport layer that fetches a user's
// public event feed from the GitHub REST API. It only performs the HTTP
// request and maps response statuses onto the domain error taxonomy; the
// body is handed back untouched for the parsing pipeline.
package gateway

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/CaioMS2000/github-activity/internal/domain"
	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

const (
	defaultBaseURL = "https://api.github.com"

	// GitHub rejects requests without a User-Agent.
	userAgent = "github-activity/1.0"

	// maxUsernameLength is GitHub's own username limit.
	maxUsernameLength = 39

	requestTimeout = 30 * time.Second
)

// Fetcher defines the behavior of a gateway for fetching a user's event
// feed. It returns the raw response body as text.
type Fetcher interface {
	FetchUserEvents(ctx context.Context, username string) (string, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

// NewGitHubGateway creates a gateway whose client waits out secondary rate
// limits. token may be empty; when set, requests are authenticated with it,
// which raises the API quota considerably.
func NewGitHubGateway(token string, logger *log.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	return &GitHubGateway{
		httpClient: &http.Client{Transport: transport, Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		logger:     logger,
	}, nil
}

// FetchUserEvents performs a single GET against /users/{username}/events
// and returns the response body. No retries: one request, one response.
func (g *GitHubGateway) FetchUserEvents(ctx context.Context, username string) (string, error) {
	if err := ValidateUsername(username); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/users/%s/events", g.baseURL, username)
	g.logger.Printf("Fetching %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &domain.NetworkError{Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, username); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.NetworkError{Err: err}
	}
	g.logger.Printf("Received %d bytes (status %d)", len(body), resp.StatusCode)
	return string(body), nil
}

// checkStatus maps non-2xx responses onto the error taxonomy.
func checkStatus(resp *http.Response, username string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return &domain.NotFoundError{Username: username}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &domain.RateLimitedError{StatusCode: resp.StatusCode}
	case resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		// 403 is only a rate limit when the quota header says so.
		return &domain.RateLimitedError{StatusCode: resp.StatusCode}
	default:
		return &domain.UnexpectedStatusError{StatusCode: resp.StatusCode}
	}
}

// ValidateUsername rejects usernames that could never match a GitHub
// account, before any request goes out.
func ValidateUsername(username string) error {
	if username == "" {
		return &domain.InvalidUsernameError{Reason: "username cannot be empty"}
	}
	if strings.ContainsAny(username, " \t") {
		return &domain.InvalidUsernameError{Reason: "username cannot contain whitespace"}
	}
	if len(username) > maxUsernameLength {
		return &domain.InvalidUsernameError{Reason: fmt.Sprintf("username is too long (max %d characters)", maxUsernameLength)}
	}
	return nil
}
