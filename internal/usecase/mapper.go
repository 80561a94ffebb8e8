// Package usecase contains the business logic of the application: mapping
// the generic JSON tree to typed events, classifying payloads, rendering
// lines and summarizing a batch.
package usecase

import (
	"fmt"

	"github.com/CaioMS2000/github-activity/internal/domain"
	"github.com/CaioMS2000/github-activity/internal/jsonval"
)

// MapEvents walks the parsed feed document and produces one Event per
// array element, in input order.
//
// The top level must be an array and every element must be an object with
// the required fields type, actor.login, repo.name and created_at. Extra
// fields are ignored, but a missing or wrongly shaped required field
// aborts the whole batch: a malformed entry usually means the API contract
// changed, which is worth surfacing immediately instead of returning a
// partial result.
func MapEvents(root jsonval.Value) ([]domain.Event, error) {
	arr, ok := root.(jsonval.Array)
	if !ok {
		return nil, &jsonval.ParseError{Message: "expected array at top level"}
	}

	events := make([]domain.Event, 0, len(arr))
	for i, elem := range arr {
		obj, ok := elem.(*jsonval.Object)
		if !ok {
			return nil, mapErrorf(i, "expected an object")
		}

		kind, err := requireString(obj, i, "type")
		if err != nil {
			return nil, err
		}
		actorLogin, err := requireNestedString(obj, i, "actor", "login")
		if err != nil {
			return nil, err
		}
		repoName, err := requireNestedString(obj, i, "repo", "name")
		if err != nil {
			return nil, err
		}
		createdAt, err := requireString(obj, i, "created_at")
		if err != nil {
			return nil, err
		}

		// payload is optional; absent or non-object is an empty object.
		payload := jsonval.NewObject()
		if v, ok := obj.Get("payload"); ok {
			if p, ok := v.(*jsonval.Object); ok {
				payload = p
			}
		}

		events = append(events, domain.Event{
			Kind:       kind,
			ActorLogin: actorLogin,
			RepoName:   repoName,
			CreatedAt:  createdAt,
			Payload:    Classify(kind, payload),
		})
	}
	return events, nil
}

func mapErrorf(index int, format string, args ...interface{}) *jsonval.ParseError {
	return &jsonval.ParseError{Message: fmt.Sprintf("events[%d]: %s", index, fmt.Sprintf(format, args...))}
}

func requireString(obj *jsonval.Object, index int, key string) (string, error) {
	v, ok := obj.Get(key)
	if !ok {
		return "", mapErrorf(index, "missing required field %q", key)
	}
	s, ok := v.(jsonval.String)
	if !ok {
		return "", mapErrorf(index, "field %q is not a string", key)
	}
	return string(s), nil
}

func requireNestedString(obj *jsonval.Object, index int, outer, inner string) (string, error) {
	v, ok := obj.Get(outer)
	if !ok {
		return "", mapErrorf(index, "missing required field %q", outer)
	}
	nested, ok := v.(*jsonval.Object)
	if !ok {
		return "", mapErrorf(index, "field %q is not an object", outer)
	}
	inV, ok := nested.Get(inner)
	if !ok {
		return "", mapErrorf(index, "missing required field %q", outer+"."+inner)
	}
	s, ok := inV.(jsonval.String)
	if !ok {
		return "", mapErrorf(index, "field %q is not a string", outer+"."+inner)
	}
	return string(s), nil
}
