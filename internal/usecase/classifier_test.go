package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaioMS2000/github-activity/internal/domain"
	"github.com/CaioMS2000/github-activity/internal/jsonval"
)

func payloadObj(t *testing.T, text string) *jsonval.Object {
	t.Helper()
	v, err := jsonval.Parse(text)
	require.NoError(t, err)
	obj, ok := v.(*jsonval.Object)
	require.True(t, ok)
	return obj
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		kind     string
		payload  string
		expected domain.EventPayload
	}{
		{
			name:     "push with commits",
			kind:     "PushEvent",
			payload:  `{"commits": [{}, {}, {}]}`,
			expected: domain.PushPayload{CommitCount: 3},
		},
		{
			name:     "push with empty commits",
			kind:     "PushEvent",
			payload:  `{"commits": []}`,
			expected: domain.PushPayload{CommitCount: 0},
		},
		{
			name:     "push without commits",
			kind:     "PushEvent",
			payload:  `{}`,
			expected: domain.PushPayload{CommitCount: 0},
		},
		{
			name:     "push with non-array commits",
			kind:     "PushEvent",
			payload:  `{"commits": 5}`,
			expected: domain.PushPayload{CommitCount: 0},
		},
		{
			name:     "issue comment",
			kind:     "IssueCommentEvent",
			payload:  `{"action": "created"}`,
			expected: domain.IssueCommentPayload{},
		},
		{
			name:     "issue opened",
			kind:     "IssuesEvent",
			payload:  `{"action": "opened"}`,
			expected: domain.IssuesOpenedPayload{},
		},
		{
			name:     "issue closed falls through",
			kind:     "IssuesEvent",
			payload:  `{"action": "closed"}`,
			expected: domain.OtherPayload{RawKind: "IssuesEvent"},
		},
		{
			name:     "issue without action falls through",
			kind:     "IssuesEvent",
			payload:  `{}`,
			expected: domain.OtherPayload{RawKind: "IssuesEvent"},
		},
		{
			name:     "watch",
			kind:     "WatchEvent",
			payload:  `{"action": "started"}`,
			expected: domain.WatchPayload{},
		},
		{
			name:     "fork",
			kind:     "ForkEvent",
			payload:  `{"forkee": {"full_name": "alice/repo"}}`,
			expected: domain.ForkPayload{},
		},
		{
			name:     "create branch",
			kind:     "CreateEvent",
			payload:  `{"ref_type": "branch", "ref": "feature/x"}`,
			expected: domain.CreateBranchPayload{},
		},
		{
			name:     "create repository",
			kind:     "CreateEvent",
			payload:  `{"ref_type": "repository"}`,
			expected: domain.CreateRepoPayload{},
		},
		{
			name:     "create tag",
			kind:     "CreateEvent",
			payload:  `{"ref_type": "tag", "ref": "v1.0.0"}`,
			expected: domain.CreateTagPayload{},
		},
		{
			name:     "create with unknown ref_type",
			kind:     "CreateEvent",
			payload:  `{"ref_type": "gist"}`,
			expected: domain.OtherPayload{RawKind: "CreateEvent"},
		},
		{
			name:     "create without ref_type",
			kind:     "CreateEvent",
			payload:  `{}`,
			expected: domain.OtherPayload{RawKind: "CreateEvent"},
		},
		{
			name:     "delete event is not special-cased",
			kind:     "DeleteEvent",
			payload:  `{"ref_type": "branch"}`,
			expected: domain.OtherPayload{RawKind: "DeleteEvent"},
		},
		{
			name:     "unknown discriminator",
			kind:     "SponsorshipEvent",
			payload:  `{}`,
			expected: domain.OtherPayload{RawKind: "SponsorshipEvent"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.kind, payloadObj(t, tc.payload))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestClassify_NilPayload(t *testing.T) {
	assert.Equal(t, domain.PushPayload{CommitCount: 0}, Classify("PushEvent", nil))
	assert.Equal(t, domain.WatchPayload{}, Classify("WatchEvent", nil))
	assert.Equal(t, domain.OtherPayload{RawKind: "GollumEvent"}, Classify("GollumEvent", nil))
}

// Classification must ignore payload fields outside the few it is defined
// over, so unrelated data can never flip the variant.
func TestClassify_IgnoresUnrelatedFields(t *testing.T) {
	payload := `{"action": "opened", "ref_type": "branch", "commits": [{}]}`
	assert.Equal(t, domain.WatchPayload{}, Classify("WatchEvent", payloadObj(t, payload)))
	assert.Equal(t, domain.IssuesOpenedPayload{}, Classify("IssuesEvent", payloadObj(t, payload)))
	assert.Equal(t, domain.CreateBranchPayload{}, Classify("CreateEvent", payloadObj(t, payload)))
}
