package model

import "fmt"

// Action classifies a canonical event. The set is closed: the only way to
// build an Event is through the three constructors below, each carrying
// exactly the fields that exist for its variant.
type Action string

const (
	ActionPush        Action = "PUSH"
	ActionPullRequest Action = "PULL_REQUEST"
	ActionMerge       Action = "MERGE"
)

// TimestampLayout is the stored ISO-8601 UTC instant with fixed microsecond
// precision. Fixed width keeps lexicographic and chronological order aligned.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// DisplayTimestampLayout renders a stored timestamp for display strings,
// e.g. "04 March 2024 - 09:15 PM UTC".
const DisplayTimestampLayout = "02 January 2006 - 03:04 PM UTC"

// Event is the canonical record persisted for every accepted webhook
// delivery. Records are insert-only: a pull request and its later merge are
// two separate records correlated by RequestID, never a mutation.
type Event struct {
	ID         string  // surrogate key, assigned at ingestion
	Timestamp  string  // server-assigned receipt time, TimestampLayout
	RequestID  *string // push: head commit SHA; PR/merge: PR number
	Author     *string // push: sender login; PR/merge: PR author login
	Action     Action
	FromBranch *string // nil for PUSH
	ToBranch   *string
}

// NewPushEvent builds a PUSH record. Pushes have no source branch.
func NewPushEvent(requestID, author, toBranch string) Event {
	return Event{
		RequestID: &requestID,
		Author:    &author,
		Action:    ActionPush,
		ToBranch:  &toBranch,
	}
}

// NewPullRequestEvent builds a PULL_REQUEST record.
func NewPullRequestEvent(requestID, author, fromBranch, toBranch string) Event {
	return Event{
		RequestID:  &requestID,
		Author:     &author,
		Action:     ActionPullRequest,
		FromBranch: &fromBranch,
		ToBranch:   &toBranch,
	}
}

// NewMergeEvent builds a MERGE record.
func NewMergeEvent(requestID, author, fromBranch, toBranch string) Event {
	return Event{
		RequestID:  &requestID,
		Author:     &author,
		Action:     ActionMerge,
		FromBranch: &fromBranch,
		ToBranch:   &toBranch,
	}
}

// String returns the raw structural representation of the record. It is the
// display fallback for malformed records, so it must never panic.
func (e Event) String() string {
	return fmt.Sprintf(
		"{id: %s, timestamp: %s, request_id: %s, author: %s, action: %s, from_branch: %s, to_branch: %s}",
		e.ID, e.Timestamp, strOrNone(e.RequestID), strOrNone(e.Author), e.Action,
		strOrNone(e.FromBranch), strOrNone(e.ToBranch),
	)
}

func strOrNone(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
