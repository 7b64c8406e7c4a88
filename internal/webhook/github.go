package webhook

import (
	"encoding/json"
	"strconv"
	"strings"

	"github-event-monitor/internal/model"
)

// GitHub event type discriminators, taken from the X-GitHub-Event header.
const (
	EventTypePush        = "push"
	EventTypePullRequest = "pull_request"
)

const branchRefPrefix = "refs/heads/"

// GitHubParser normalizes raw GitHub webhook payloads into canonical event
// records. It holds no state and performs no I/O.
type GitHubParser struct{}

func NewGitHubParser() *GitHubParser {
	return &GitHubParser{}
}

// Normalize classifies a delivery by its event type discriminator and
// extracts the canonical fields. Only "push" and "pull_request" are
// recognized; anything else returns ok=false and must be discarded.
//
// Extraction never fails: missing keys at any depth, and even malformed
// payload bytes, degrade to zero-valued fields. Only the discriminator
// gates accept/discard.
func (p *GitHubParser) Normalize(eventType string, payload []byte) (model.Event, bool) {
	switch eventType {
	case EventTypePush:
		return p.normalizePush(payload), true
	case EventTypePullRequest:
		return p.normalizePullRequest(payload), true
	default:
		return model.Event{}, false
	}
}

// normalizePush maps a push delivery: head commit SHA as request id, sender
// login as author, ref with the refs/heads/ prefix stripped as target branch.
func (p *GitHubParser) normalizePush(payload []byte) model.Event {
	var body struct {
		Ref        string `json:"ref"`
		HeadCommit struct {
			ID string `json:"id"`
		} `json:"head_commit"`
		Sender struct {
			Login string `json:"login"`
		} `json:"sender"`
	}
	// Tolerant parse: unmarshal fills whatever matches and the rest stays zero.
	_ = json.Unmarshal(payload, &body)

	branch := strings.TrimPrefix(body.Ref, branchRefPrefix)
	return model.NewPushEvent(body.HeadCommit.ID, body.Sender.Login, branch)
}

// normalizePullRequest maps a pull_request delivery. A delivery with
// merged=true is a MERGE record, otherwise a PULL_REQUEST record; the PR
// lifecycle is reconstructed by correlating the two via request id.
func (p *GitHubParser) normalizePullRequest(payload []byte) model.Event {
	var body struct {
		PullRequest struct {
			Number int `json:"number"`
			User   struct {
				Login string `json:"login"`
			} `json:"user"`
			Head struct {
				Ref string `json:"ref"`
			} `json:"head"`
			Base struct {
				Ref string `json:"ref"`
			} `json:"base"`
			Merged bool `json:"merged"`
		} `json:"pull_request"`
	}
	_ = json.Unmarshal(payload, &body)

	pr := body.PullRequest
	requestID := strconv.Itoa(pr.Number)

	if pr.Merged {
		return model.NewMergeEvent(requestID, pr.User.Login, pr.Head.Ref, pr.Base.Ref)
	}
	return model.NewPullRequestEvent(requestID, pr.User.Login, pr.Head.Ref, pr.Base.Ref)
}
