package matching

import (
	"github.com/talentbruecke/placement-backend/internal/domain"
)

// RecommendedLister supplies the advisory document types for a position
// type. The requirements catalog implements it; required document types
// are enforced by the upload flow and are not re-checked here.
type RecommendedLister interface {
	Recommended(domain.PositionType) []domain.DocumentType
}

// mandatoryField is one required profile field together with its getter.
// The order here is the order missing-field errors are reported in.
type mandatoryField struct {
	name  string
	value func(*domain.ApplicantProfile) string
}

var mandatoryFields = []mandatoryField{
	{"first_name", func(p *domain.ApplicantProfile) string { return p.FirstName }},
	{"last_name", func(p *domain.ApplicantProfile) string { return p.LastName }},
	{"date_of_birth", func(p *domain.ApplicantProfile) string {
		if p.DateOfBirth == nil {
			return ""
		}
		return p.DateOfBirth.String()
	}},
	{"nationality", func(p *domain.ApplicantProfile) string { return p.Nationality }},
	{"phone", func(p *domain.ApplicantProfile) string { return p.Phone }},
	{"street", func(p *domain.ApplicantProfile) string { return p.Street }},
	{"city", func(p *domain.ApplicantProfile) string { return p.City }},
	{"country", func(p *domain.ApplicantProfile) string { return p.Country }},
}

// CheckEligibility decides whether the applicant may submit an
// application to the job. Missing mandatory fields and a missing
// position-type selection are blocking errors; a position-type mismatch
// and recommended-but-absent documents are advisory warnings. A nil
// profile short-circuits into the single no_profile error.
func CheckEligibility(profile *domain.ApplicantProfile, job *domain.JobPosting, documents []domain.Document, catalog RecommendedLister) EligibilityVerdict {
	verdict := EligibilityVerdict{
		Errors:   []Issue{},
		Warnings: []Issue{},
	}

	if profile == nil {
		verdict.Errors = append(verdict.Errors, Issue{Kind: IssueNoProfile})
		return verdict
	}

	// Every missing field is reported so the caller can list them all.
	for _, f := range mandatoryFields {
		if f.value(profile) == "" {
			verdict.Errors = append(verdict.Errors, Issue{
				Kind:  IssueMissingField,
				Field: f.name,
			})
		}
	}

	if profile.FirstPositionType() == "" {
		verdict.Errors = append(verdict.Errors, Issue{Kind: IssueNoPositionType})
	} else if !profile.HasPositionType(job.PositionType) {
		// Applying across position types is allowed but flagged.
		verdict.Warnings = append(verdict.Warnings, Issue{
			Kind:          IssuePositionMismatch,
			ApplicantType: profile.FirstPositionType(),
			JobType:       job.PositionType,
		})
	}

	if catalog != nil {
		uploaded := make(map[domain.DocumentType]bool, len(documents))
		for _, doc := range documents {
			uploaded[doc.Type] = true
		}
		for _, docType := range catalog.Recommended(job.PositionType) {
			if !uploaded[docType] {
				verdict.Warnings = append(verdict.Warnings, Issue{
					Kind:         IssueMissingRecommendedDocument,
					DocumentType: docType,
				})
			}
		}
	}

	verdict.CanApply = len(verdict.Errors) == 0
	return verdict
}
