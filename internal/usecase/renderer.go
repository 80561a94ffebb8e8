package usecase

import (
	"fmt"

	"github.com/CaioMS2000/github-activity/internal/domain"
)

// Render converts each event into one descriptive line, preserving the
// feed's input order. It is a pure function: no I/O, no mutation, same
// input always yields the same output.
func Render(events []domain.Event) []string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, RenderEvent(e))
	}
	return lines
}

// RenderEvent formats a single event according to its payload variant.
func RenderEvent(e domain.Event) string {
	switch p := e.Payload.(type) {
	case domain.PushPayload:
		return fmt.Sprintf("Pushed %d commit(s) to %s", p.CommitCount, e.RepoName)
	case domain.IssueCommentPayload:
		return fmt.Sprintf("Commented on a pull request/issue in %s", e.RepoName)
	case domain.IssuesOpenedPayload:
		return fmt.Sprintf("Opened an issue in %s", e.RepoName)
	case domain.WatchPayload:
		return fmt.Sprintf("Starred %s", e.RepoName)
	case domain.ForkPayload:
		return fmt.Sprintf("Forked %s", e.RepoName)
	case domain.CreateBranchPayload:
		return fmt.Sprintf("Created a branch in %s", e.RepoName)
	case domain.CreateRepoPayload:
		return fmt.Sprintf("Created a repository in %s", e.RepoName)
	case domain.CreateTagPayload:
		return fmt.Sprintf("Created a tag in %s", e.RepoName)
	case domain.OtherPayload:
		return fmt.Sprintf("Performed %s in %s", p.RawKind, e.RepoName)
	default:
		// Unreachable for events built by MapEvents; keeps a hand-built
		// event with a nil payload from panicking.
		return fmt.Sprintf("Performed %s in %s", e.Kind, e.RepoName)
	}
}
