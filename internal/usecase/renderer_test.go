package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaioMS2000/github-activity/internal/domain"
	"github.com/CaioMS2000/github-activity/internal/jsonval"
)

// TestRenderEvent_AllVariants covers every payload variant. Go does not
// enforce switch exhaustiveness, so a variant added without a rendering
// arm shows up here as a "Performed ..." fallback line.
func TestRenderEvent_AllVariants(t *testing.T) {
	testCases := []struct {
		name     string
		payload  domain.EventPayload
		expected string
	}{
		{name: "push", payload: domain.PushPayload{CommitCount: 2}, expected: "Pushed 2 commit(s) to octo/repo"},
		{name: "push with no commits", payload: domain.PushPayload{}, expected: "Pushed 0 commit(s) to octo/repo"},
		{name: "issue comment", payload: domain.IssueCommentPayload{}, expected: "Commented on a pull request/issue in octo/repo"},
		{name: "issue opened", payload: domain.IssuesOpenedPayload{}, expected: "Opened an issue in octo/repo"},
		{name: "watch", payload: domain.WatchPayload{}, expected: "Starred octo/repo"},
		{name: "fork", payload: domain.ForkPayload{}, expected: "Forked octo/repo"},
		{name: "create branch", payload: domain.CreateBranchPayload{}, expected: "Created a branch in octo/repo"},
		{name: "create repository", payload: domain.CreateRepoPayload{}, expected: "Created a repository in octo/repo"},
		{name: "create tag", payload: domain.CreateTagPayload{}, expected: "Created a tag in octo/repo"},
		{name: "other", payload: domain.OtherPayload{RawKind: "GollumEvent"}, expected: "Performed GollumEvent in octo/repo"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := domain.Event{
				Kind:       "any",
				ActorLogin: "octocat",
				RepoName:   "octo/repo",
				CreatedAt:  "2024-01-01T00:00:00Z",
				Payload:    tc.payload,
			}
			assert.Equal(t, tc.expected, RenderEvent(event))
		})
	}
}

func TestRender_OrderPreservedAndIdempotent(t *testing.T) {
	events := []domain.Event{
		{Kind: "WatchEvent", RepoName: "a/one", Payload: domain.WatchPayload{}},
		{Kind: "ForkEvent", RepoName: "b/two", Payload: domain.ForkPayload{}},
		{Kind: "PushEvent", RepoName: "c/three", Payload: domain.PushPayload{CommitCount: 1}},
	}

	first := Render(events)
	second := Render(events)

	assert.Equal(t, []string{
		"Starred a/one",
		"Forked b/two",
		"Pushed 1 commit(s) to c/three",
	}, first)
	assert.Equal(t, first, second)
}

func TestRender_UnknownKindNeverEmpty(t *testing.T) {
	for _, kind := range []string{"MemberEvent", "PublicEvent", "TotallyMadeUpEvent"} {
		event := domain.Event{
			Kind:     kind,
			RepoName: "a/r",
			Payload:  Classify(kind, nil),
		}
		line := RenderEvent(event)
		assert.NotEmpty(t, line)
		assert.Contains(t, line, kind)
	}
}

// End-to-end scenarios over the whole pipeline: raw text through parser,
// mapper and renderer.
func TestPipeline_EndToEnd(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "watch event",
			input:    `[{"type":"WatchEvent","actor":{"login":"alice"},"repo":{"name":"alice/repo"},"created_at":"2024-01-01T00:00:00Z","payload":{}}]`,
			expected: []string{"Starred alice/repo"},
		},
		{
			name:     "push event with two commits",
			input:    `[{"type":"PushEvent","actor":{"login":"torvalds"},"repo":{"name":"torvalds/linux"},"created_at":"2024-01-01T00:00:00Z","payload":{"commits":[{"sha":"a"},{"sha":"b"}]}}]`,
			expected: []string{"Pushed 2 commit(s) to torvalds/linux"},
		},
		{
			name: "mixed feed keeps order",
			input: `[
				{"type":"CreateEvent","actor":{"login":"a"},"repo":{"name":"a/new"},"created_at":"x","payload":{"ref_type":"repository"}},
				{"type":"IssuesEvent","actor":{"login":"a"},"repo":{"name":"b/lib"},"created_at":"x","payload":{"action":"opened"}},
				{"type":"IssuesEvent","actor":{"login":"a"},"repo":{"name":"b/lib"},"created_at":"x","payload":{"action":"closed"}}
			]`,
			expected: []string{
				"Created a repository in a/new",
				"Opened an issue in b/lib",
				"Performed IssuesEvent in b/lib",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := jsonval.Parse(tc.input)
			require.NoError(t, err)
			events, err := MapEvents(root)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, Render(events))
		})
	}
}
