// Package server provides the HTTP REST API for the placement backend.
package server

import (
	"github.com/talentbruecke/placement-backend/internal/matching"
)

// IssuePayload is one eligibility finding with its rendered message.
type IssuePayload struct {
	matching.Issue
	Message string `json:"message"`
}

// EligibilityPayload is the API shape of an eligibility verdict.
type EligibilityPayload struct {
	CanApply bool           `json:"can_apply"`
	Errors   []IssuePayload `json:"errors"`
	Warnings []IssuePayload `json:"warnings"`
}

// DetailPayload is one match detail with its rendered message.
type DetailPayload struct {
	matching.Detail
	Message string `json:"message"`
}

// MatchPayload is the API shape of a match score.
type MatchPayload struct {
	Enabled        bool                    `json:"enabled"`
	TotalScore     int                     `json:"total_score"`
	Breakdown      matching.Breakdown      `json:"breakdown"`
	Recommendation matching.Recommendation `json:"recommendation,omitempty"`
	Details        []DetailPayload         `json:"details"`
}

// EvaluationPayload is the combined evaluation response.
type EvaluationPayload struct {
	Eligibility EligibilityPayload `json:"eligibility"`
	Match       MatchPayload       `json:"match"`
}

// presentIssues renders issues with their display messages. The result
// is never nil so JSON clients always see an array.
func presentIssues(issues []matching.Issue) []IssuePayload {
	out := make([]IssuePayload, 0, len(issues))
	for _, issue := range issues {
		out = append(out, IssuePayload{Issue: issue, Message: issue.Message()})
	}
	return out
}

// presentVerdict renders an eligibility verdict for API responses.
func presentVerdict(v matching.EligibilityVerdict) EligibilityPayload {
	return EligibilityPayload{
		CanApply: v.CanApply,
		Errors:   presentIssues(v.Errors),
		Warnings: presentIssues(v.Warnings),
	}
}

// presentScore renders a match score for API responses.
func presentScore(m matching.MatchScore) MatchPayload {
	details := make([]DetailPayload, 0, len(m.Details))
	for _, d := range m.Details {
		details = append(details, DetailPayload{Detail: d, Message: d.Message()})
	}
	return MatchPayload{
		Enabled:        m.Enabled,
		TotalScore:     m.TotalScore,
		Breakdown:      m.Breakdown,
		Recommendation: m.Recommendation,
		Details:        details,
	}
}
