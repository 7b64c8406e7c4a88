package webhook

import (
	"fmt"
	"time"

	"github-event-monitor/internal/model"
)

// Format renders a canonical event record as its one-line display string:
//
//	PUSH         "alice" pushed to "main" on 04 March 2024 - 09:15 PM UTC
//	PULL_REQUEST "bob" submitted a pull request from "feature" to "main" on ...
//	MERGE        "bob" merged branch "feature" to "main" on ...
//
// Format is a pure function of the record. A malformed record (unknown
// action, unparseable timestamp) falls back to its raw structural
// representation so one bad row never breaks a whole listing.
func Format(e model.Event) string {
	ts, err := time.Parse(model.TimestampLayout, e.Timestamp)
	if err != nil {
		return e.String()
	}
	when := ts.UTC().Format(model.DisplayTimestampLayout)

	switch e.Action {
	case model.ActionPush:
		return fmt.Sprintf(`"%s" pushed to "%s" on %s`, deref(e.Author), deref(e.ToBranch), when)
	case model.ActionPullRequest:
		return fmt.Sprintf(`"%s" submitted a pull request from "%s" to "%s" on %s`,
			deref(e.Author), deref(e.FromBranch), deref(e.ToBranch), when)
	case model.ActionMerge:
		return fmt.Sprintf(`"%s" merged branch "%s" to "%s" on %s`,
			deref(e.Author), deref(e.FromBranch), deref(e.ToBranch), when)
	default:
		return e.String()
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
