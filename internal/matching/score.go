package matching

import (
	"fmt"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

// Sub-score caps. They sum to 100, so the total is naturally bounded.
const (
	PositionScoreCap     = 30
	GermanScoreCap       = 25
	EnglishScoreCap      = 15
	ExperienceScoreCap   = 20
	AvailabilityScoreCap = 10
)

// Points awarded per year of work experience.
const pointsPerExperienceYear = 4

// Recommendation tier thresholds (inclusive lower bounds).
const (
	veryGoodThreshold = 70
	moderateThreshold = 40
)

// Recommendation is the human-facing tier of a match score.
type Recommendation string

// Recommendation tiers.
const (
	RecommendationVeryGood Recommendation = "very_good"
	RecommendationModerate Recommendation = "moderate"
	RecommendationLow      Recommendation = "low"
)

// DetailKind identifies which sub-score a detail explains.
type DetailKind string

// Detail kinds, in the fixed emission order.
const (
	DetailPosition     DetailKind = "position_type"
	DetailGerman       DetailKind = "german_level"
	DetailEnglish      DetailKind = "english_level"
	DetailExperience   DetailKind = "experience"
	DetailAvailability DetailKind = "availability"
)

// Detail is one explanatory entry of a match score. Met distinguishes
// positive from negative findings. Value carries the kind-specific
// number: the signed rank difference for language details and the year
// count for experience.
type Detail struct {
	Kind  DetailKind `json:"kind"`
	Met   bool       `json:"met"`
	Value int        `json:"value,omitempty"`
}

// Message renders the detail as English display text.
func (d Detail) Message() string {
	switch d.Kind {
	case DetailPosition:
		if d.Met {
			return "position matches"
		}
		return "position mismatch"
	case DetailGerman:
		switch {
		case d.Value > 0:
			return "german exceeds requirement"
		case d.Value == 0:
			return "german meets requirement"
		default:
			return fmt.Sprintf("german below requirement by %d level(s)", -d.Value)
		}
	case DetailEnglish:
		if d.Met {
			return "english meets requirement"
		}
		return "english below requirement"
	case DetailExperience:
		return fmt.Sprintf("%d years of experience", d.Value)
	case DetailAvailability:
		return "availability matches"
	}
	return string(d.Kind)
}

// Breakdown holds the five independently capped sub-scores.
type Breakdown struct {
	PositionType int `json:"position_type"`
	GermanLevel  int `json:"german_level"`
	EnglishLevel int `json:"english_level"`
	Experience   int `json:"experience"`
	Availability int `json:"availability"`
}

// Sum returns the total of all sub-scores.
func (b Breakdown) Sum() int {
	return b.PositionType + b.GermanLevel + b.EnglishLevel + b.Experience + b.Availability
}

// MatchScore is the output of ComputeMatchScore. TotalScore always equals
// Breakdown.Sum by construction. Enabled is false when no profile exists;
// all other fields are zero in that case.
type MatchScore struct {
	Enabled        bool           `json:"enabled"`
	TotalScore     int            `json:"total_score"`
	Breakdown      Breakdown      `json:"breakdown"`
	Recommendation Recommendation `json:"recommendation,omitempty"`
	Details        []Detail       `json:"details,omitempty"`
}

// ComputeMatchScore computes the 0-100 compatibility score between an
// applicant and a job. Scoring requires a profile but no documents; a
// nil profile yields a disabled score.
func ComputeMatchScore(profile *domain.ApplicantProfile, job *domain.JobPosting) MatchScore {
	if profile == nil {
		return MatchScore{Enabled: false}
	}

	score := MatchScore{Enabled: true}

	// a) position type
	if profile.HasPositionType(job.PositionType) {
		score.Breakdown.PositionType = PositionScoreCap
		score.Details = append(score.Details, Detail{Kind: DetailPosition, Met: true})
	} else {
		score.Details = append(score.Details, Detail{Kind: DetailPosition, Met: false})
	}

	// b) german
	points, detail := scoreLanguage(DetailGerman, GermanScoreCap, job.GermanRequired, profile.GermanLevel)
	score.Breakdown.GermanLevel = points
	if detail != nil {
		score.Details = append(score.Details, *detail)
	}

	// c) english
	points, detail = scoreLanguage(DetailEnglish, EnglishScoreCap, job.EnglishRequired, profile.EnglishLevel)
	score.Breakdown.EnglishLevel = points
	if detail != nil {
		score.Details = append(score.Details, *detail)
	}

	// d) experience
	years := profile.WorkExperienceYears
	if years < 0 {
		years = 0
	}
	experience := years * pointsPerExperienceYear
	if experience > ExperienceScoreCap {
		experience = ExperienceScoreCap
	}
	score.Breakdown.Experience = experience
	if years > 0 {
		score.Details = append(score.Details, Detail{Kind: DetailExperience, Met: true, Value: years})
	}

	// e) availability
	points, detail = scoreAvailability(profile, job)
	score.Breakdown.Availability = points
	if detail != nil {
		score.Details = append(score.Details, *detail)
	}

	score.TotalScore = score.Breakdown.Sum()
	score.Recommendation = recommendationFor(score.TotalScore)
	return score
}

// scoreLanguage awards full credit when the job has no requirement or the
// applicant meets it, and proportional credit for a shortfall:
// floor(cap * (maxRank - shortfall) / maxRank), never negative.
func scoreLanguage(kind DetailKind, maxPoints int, required, actual domain.LanguageLevel) (int, *Detail) {
	if !required.IsRequirement() {
		// Nothing to fail; no detail either.
		return maxPoints, nil
	}

	diff := actual.Rank() - required.Rank()
	if diff >= 0 {
		return maxPoints, &Detail{Kind: kind, Met: true, Value: diff}
	}

	shortfall := -diff
	if shortfall > domain.MaxLevelRank {
		shortfall = domain.MaxLevelRank
	}
	points := maxPoints * (domain.MaxLevelRank - shortfall) / domain.MaxLevelRank
	return points, &Detail{Kind: kind, Met: false, Value: diff}
}

// scoreAvailability checks the semester-break window against the job's
// desired window for student holiday jobs. A window is only constraining
// when all four endpoints are known; otherwise, and for every other
// position type, the full score is awarded without a detail.
func scoreAvailability(profile *domain.ApplicantProfile, job *domain.JobPosting) (int, *Detail) {
	if job.PositionType != domain.PositionStudentenferienjob {
		return AvailabilityScoreCap, nil
	}
	if profile.SemesterBreakFrom == nil || profile.SemesterBreakTo == nil ||
		job.StartDate == nil || job.EndDate == nil {
		return AvailabilityScoreCap, nil
	}

	overlaps := !profile.SemesterBreakTo.Before(*job.StartDate) &&
		!job.EndDate.Before(*profile.SemesterBreakFrom)
	if overlaps {
		return AvailabilityScoreCap, &Detail{Kind: DetailAvailability, Met: true}
	}
	return 0, nil
}

// recommendationFor maps a total score to its tier. The 70/40 boundaries
// are inclusive on the lower side.
func recommendationFor(total int) Recommendation {
	switch {
	case total >= veryGoodThreshold:
		return RecommendationVeryGood
	case total >= moderateThreshold:
		return RecommendationModerate
	default:
		return RecommendationLow
	}
}
