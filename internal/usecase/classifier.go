package usecase

import (
	"github.com/CaioMS2000/github-activity/internal/domain"
	"github.com/CaioMS2000/github-activity/internal/jsonval"
)

// Classify maps an event's type discriminator plus the minimal nested
// payload fields to one payload variant. It is total: any discriminator it
// does not recognize becomes OtherPayload, so no event is ever dropped.
// Classification only ever reads the fields listed here, never the rest of
// the payload.
func Classify(kind string, payload *jsonval.Object) domain.EventPayload {
	if payload == nil {
		payload = jsonval.NewObject()
	}
	switch kind {
	case "PushEvent":
		// A push whose commits list is absent still counts as a push of 0.
		count := 0
		if v, ok := payload.Get("commits"); ok {
			if commits, ok := v.(jsonval.Array); ok {
				count = len(commits)
			}
		}
		return domain.PushPayload{CommitCount: count}
	case "IssueCommentEvent":
		return domain.IssueCommentPayload{}
	case "IssuesEvent":
		if payloadString(payload, "action") == "opened" {
			return domain.IssuesOpenedPayload{}
		}
		return domain.OtherPayload{RawKind: kind}
	case "WatchEvent":
		return domain.WatchPayload{}
	case "ForkEvent":
		return domain.ForkPayload{}
	case "CreateEvent":
		switch payloadString(payload, "ref_type") {
		case "branch":
			return domain.CreateBranchPayload{}
		case "repository":
			return domain.CreateRepoPayload{}
		case "tag":
			return domain.CreateTagPayload{}
		default:
			return domain.OtherPayload{RawKind: kind}
		}
	default:
		return domain.OtherPayload{RawKind: kind}
	}
}

// payloadString returns the string value of a payload field, or "" when
// the field is absent or not a string.
func payloadString(payload *jsonval.Object, key string) string {
	v, ok := payload.Get(key)
	if !ok {
		return ""
	}
	s, ok := v.(jsonval.String)
	if !ok {
		return ""
	}
	return string(s)
}
