// Package matching implements the applicant-job evaluators: the
// eligibility checker that gates application submission and the
// five-factor match scorer. Both are deterministic pure functions of
// (profile, job, documents); they never mutate their inputs and never
// fail for absent optional data.
package matching

import (
	"fmt"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

// IssueKind is the machine-checkable category of an eligibility finding.
type IssueKind string

// Eligibility issue kinds. The first three are blocking errors, the last
// two are advisory warnings.
const (
	IssueNoProfile                  IssueKind = "no_profile"
	IssueMissingField               IssueKind = "missing_field"
	IssueNoPositionType             IssueKind = "no_position_type"
	IssuePositionMismatch           IssueKind = "position_mismatch"
	IssueMissingRecommendedDocument IssueKind = "missing_recommended_document"
)

// Issue is one eligibility finding. Only the payload fields relevant to
// its kind are set. Human-readable text is produced by Message at the
// presentation boundary; the evaluator itself stays locale-free.
type Issue struct {
	Kind IssueKind `json:"kind"`

	// Field names the missing mandatory profile field (missing_field).
	Field string `json:"field,omitempty"`

	// DocumentType names the absent document (missing_recommended_document).
	DocumentType domain.DocumentType `json:"document_type,omitempty"`

	// ApplicantType and JobType name the two sides of a position
	// mismatch (position_mismatch).
	ApplicantType domain.PositionType `json:"applicant_type,omitempty"`
	JobType       domain.PositionType `json:"job_type,omitempty"`
}

// Message renders the issue as English display text.
func (i Issue) Message() string {
	switch i.Kind {
	case IssueNoProfile:
		return "create your profile first"
	case IssueMissingField:
		return fmt.Sprintf("required field missing: %s", i.Field)
	case IssueNoPositionType:
		return "select a position type"
	case IssuePositionMismatch:
		return fmt.Sprintf("your selected position type %s does not include this job's type %s",
			i.ApplicantType, i.JobType)
	case IssueMissingRecommendedDocument:
		return fmt.Sprintf("recommended document missing: %s", i.DocumentType)
	}
	return string(i.Kind)
}

// EligibilityVerdict is the output of CheckEligibility. CanApply is true
// exactly when Errors is empty; Warnings never gate.
type EligibilityVerdict struct {
	CanApply bool    `json:"can_apply"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}
