// Package domain contains the core data structures for the application:
// the decoded feed event, its closed set of payload variants, and the
// error taxonomy shared by the transport and CLI layers.
package domain

// Event is one decoded entry of a user's public event feed. Events are
// built once by the mapper and read-only afterwards.
type Event struct {
	Kind       string // raw discriminator, e.g. "PushEvent"
	ActorLogin string
	RepoName   string // "owner/name" form
	CreatedAt  string // raw timestamp string, deliberately not parsed
	Payload    EventPayload
}

// EventPayload is the kind-specific part of an event. It is a closed set:
// the concrete types below are the only implementations, and every event
// carries exactly one of them. Unrecognized discriminators degrade to
// OtherPayload instead of failing.
type EventPayload interface {
	isPayload()
}

// PushPayload is a push of zero or more commits.
type PushPayload struct {
	CommitCount int
}

// IssueCommentPayload is a comment on an issue or pull request.
type IssueCommentPayload struct{}

// IssuesOpenedPayload is an issue being opened. Other issue actions
// (closed, reopened, ...) are not distinguished and fall through to
// OtherPayload.
type IssuesOpenedPayload struct{}

// WatchPayload is the repository being starred.
type WatchPayload struct{}

// ForkPayload is the repository being forked.
type ForkPayload struct{}

// CreateBranchPayload, CreateRepoPayload and CreateTagPayload are the
// three ref types of a CreateEvent.
type CreateBranchPayload struct{}

type CreateRepoPayload struct{}

type CreateTagPayload struct{}

// OtherPayload is the catch-all for discriminators the classifier does not
// recognize. RawKind preserves the original type string so the renderer
// can still describe the event.
type OtherPayload struct {
	RawKind string
}

func (PushPayload) isPayload()         {}
func (IssueCommentPayload) isPayload() {}
func (IssuesOpenedPayload) isPayload() {}
func (WatchPayload) isPayload()        {}
func (ForkPayload) isPayload()         {}
func (CreateBranchPayload) isPayload() {}
func (CreateRepoPayload) isPayload()   {}
func (CreateTagPayload) isPayload()    {}
func (OtherPayload) isPayload()        {}
