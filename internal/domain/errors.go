package domain

import "fmt"

// The error types below form the failure taxonomy outside of parsing:
// input validation and everything the transport layer can report. Parse
// and mapping failures are jsonval.ParseError. Each type carries only what
// is needed to print one clear message; there is no retry state.

// InvalidUsernameError reports a username rejected before any request is
// made.
type InvalidUsernameError struct {
	Reason string
}

func (e *InvalidUsernameError) Error() string {
	return "invalid username: " + e.Reason
}

// NotFoundError reports an HTTP 404 for the requested user.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Username)
}

// RateLimitedError reports an HTTP 403/429 with a rate-limit indication.
type RateLimitedError struct {
	StatusCode int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited by the GitHub API (status %d); try again later or set GITHUB_TOKEN", e.StatusCode)
}

// NetworkError wraps a transport-level failure (DNS, connection refused,
// timeout, truncated body).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError reports any non-2xx response not covered by the
// more specific types above.
type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d from the GitHub API", e.StatusCode)
}
