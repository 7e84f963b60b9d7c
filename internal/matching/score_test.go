package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

func fullProfile() *domain.ApplicantProfile {
	dob := time.Date(1999, 4, 12, 0, 0, 0, 0, time.UTC)
	return &domain.ApplicantProfile{
		FirstName:           "Amina",
		LastName:            "Haddad",
		DateOfBirth:         &dob,
		Nationality:         "Tunisian",
		Phone:               "+216 555 0101",
		Street:              "Hauptstrasse 12",
		City:                "Leipzig",
		Country:             "Germany",
		PositionTypes:       []domain.PositionType{domain.PositionStudentenferienjob},
		PositionType:        domain.PositionStudentenferienjob,
		GermanLevel:         domain.LevelC1,
		EnglishLevel:        domain.LevelB2,
		WorkExperienceYears: 3,
	}
}

func TestComputeMatchScore_FullMatchScenario(t *testing.T) {
	job := &domain.JobPosting{
		PositionType:    domain.PositionStudentenferienjob,
		GermanRequired:  domain.LevelB1,
		EnglishRequired: domain.LevelA2,
	}

	score := ComputeMatchScore(fullProfile(), job)

	require.True(t, score.Enabled)
	assert.Equal(t, 30, score.Breakdown.PositionType)
	assert.Equal(t, 25, score.Breakdown.GermanLevel)
	assert.Equal(t, 15, score.Breakdown.EnglishLevel)
	assert.Equal(t, 12, score.Breakdown.Experience)
	assert.Equal(t, 10, score.Breakdown.Availability)
	assert.Equal(t, 92, score.TotalScore)
	assert.Equal(t, RecommendationVeryGood, score.Recommendation)
}

func TestComputeMatchScore_NoProfile(t *testing.T) {
	job := &domain.JobPosting{PositionType: domain.PositionSaisonjob}

	score := ComputeMatchScore(nil, job)

	assert.False(t, score.Enabled)
	assert.Equal(t, 0, score.TotalScore)
	assert.Empty(t, score.Details)
	assert.Equal(t, Breakdown{}, score.Breakdown)
}

func TestComputeMatchScore_Deterministic(t *testing.T) {
	profile := fullProfile()
	job := &domain.JobPosting{
		PositionType:    domain.PositionStudentenferienjob,
		GermanRequired:  domain.LevelB2,
		EnglishRequired: domain.LevelB1,
	}

	first := ComputeMatchScore(profile, job)
	second := ComputeMatchScore(profile, job)

	assert.Equal(t, first, second)
}

func TestComputeMatchScore_GermanShortfall(t *testing.T) {
	profile := fullProfile()
	profile.GermanLevel = domain.LevelA1
	job := &domain.JobPosting{
		PositionType:   domain.PositionStudentenferienjob,
		GermanRequired: domain.LevelC1,
	}

	score := ComputeMatchScore(profile, job)

	// Shortfall of 4 levels: floor(25 * (1 - 4/6)) = 8.
	assert.Equal(t, 8, score.Breakdown.GermanLevel)

	var german *Detail
	for i := range score.Details {
		if score.Details[i].Kind == DetailGerman {
			german = &score.Details[i]
		}
	}
	require.NotNil(t, german)
	assert.False(t, german.Met)
	assert.Equal(t, "german below requirement by 4 level(s)", german.Message())
}

func TestComputeMatchScore_LanguageNotRequired(t *testing.T) {
	profile := fullProfile()
	profile.GermanLevel = ""
	profile.EnglishLevel = ""
	job := &domain.JobPosting{PositionType: domain.PositionStudentenferienjob}

	score := ComputeMatchScore(profile, job)

	assert.Equal(t, 25, score.Breakdown.GermanLevel)
	assert.Equal(t, 15, score.Breakdown.EnglishLevel)
	for _, d := range score.Details {
		assert.NotEqual(t, DetailGerman, d.Kind)
		assert.NotEqual(t, DetailEnglish, d.Kind)
	}
}

func TestComputeMatchScore_ExperienceMonotonic(t *testing.T) {
	job := &domain.JobPosting{PositionType: domain.PositionSaisonjob}

	previous := -1
	for years := 0; years <= 5; years++ {
		profile := fullProfile()
		profile.WorkExperienceYears = years

		score := ComputeMatchScore(profile, job)

		expected := years * 4
		if expected > 20 {
			expected = 20
		}
		assert.Equal(t, expected, score.Breakdown.Experience, "years=%d", years)
		assert.GreaterOrEqual(t, score.Breakdown.Experience, previous)
		previous = score.Breakdown.Experience
	}
}

func TestComputeMatchScore_NegativeExperienceClampsToZero(t *testing.T) {
	profile := fullProfile()
	profile.WorkExperienceYears = -3
	job := &domain.JobPosting{PositionType: domain.PositionSaisonjob}

	score := ComputeMatchScore(profile, job)

	assert.Equal(t, 0, score.Breakdown.Experience)
	for _, d := range score.Details {
		assert.NotEqual(t, DetailExperience, d.Kind)
	}
}

func TestComputeMatchScore_SumAndCapInvariants(t *testing.T) {
	levels := []domain.LanguageLevel{"", domain.LevelNone, domain.LevelA1, domain.LevelB1, domain.LevelC2}
	years := []int{-2, 0, 1, 4, 9}

	for _, german := range levels {
		for _, english := range levels {
			for _, y := range years {
				profile := fullProfile()
				profile.GermanLevel = german
				profile.EnglishLevel = english
				profile.WorkExperienceYears = y

				job := &domain.JobPosting{
					PositionType:    domain.PositionStudentenferienjob,
					GermanRequired:  domain.LevelB2,
					EnglishRequired: domain.LevelC1,
				}

				score := ComputeMatchScore(profile, job)

				assert.Equal(t, score.Breakdown.Sum(), score.TotalScore)
				assert.GreaterOrEqual(t, score.Breakdown.PositionType, 0)
				assert.LessOrEqual(t, score.Breakdown.PositionType, PositionScoreCap)
				assert.GreaterOrEqual(t, score.Breakdown.GermanLevel, 0)
				assert.LessOrEqual(t, score.Breakdown.GermanLevel, GermanScoreCap)
				assert.GreaterOrEqual(t, score.Breakdown.EnglishLevel, 0)
				assert.LessOrEqual(t, score.Breakdown.EnglishLevel, EnglishScoreCap)
				assert.GreaterOrEqual(t, score.Breakdown.Experience, 0)
				assert.LessOrEqual(t, score.Breakdown.Experience, ExperienceScoreCap)
				assert.GreaterOrEqual(t, score.Breakdown.Availability, 0)
				assert.LessOrEqual(t, score.Breakdown.Availability, AvailabilityScoreCap)
				assert.LessOrEqual(t, score.TotalScore, 100)
			}
		}
	}
}

func TestComputeMatchScore_PositionMismatchScoresZero(t *testing.T) {
	profile := fullProfile()
	profile.PositionTypes = []domain.PositionType{domain.PositionFachkraft}
	profile.PositionType = domain.PositionFachkraft
	job := &domain.JobPosting{PositionType: domain.PositionSaisonjob}

	score := ComputeMatchScore(profile, job)

	assert.Equal(t, 0, score.Breakdown.PositionType)
	require.NotEmpty(t, score.Details)
	assert.Equal(t, DetailPosition, score.Details[0].Kind)
	assert.False(t, score.Details[0].Met)
	assert.Equal(t, "position mismatch", score.Details[0].Message())
}

func TestComputeMatchScore_LegacySingularPositionType(t *testing.T) {
	profile := fullProfile()
	profile.PositionTypes = nil
	profile.PositionType = domain.PositionSaisonjob
	job := &domain.JobPosting{PositionType: domain.PositionSaisonjob}

	score := ComputeMatchScore(profile, job)

	assert.Equal(t, 30, score.Breakdown.PositionType)
}

func TestComputeMatchScore_AvailabilityOverlap(t *testing.T) {
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	profile := fullProfile()
	profile.SemesterBreakFrom = &from
	profile.SemesterBreakTo = &to
	job := &domain.JobPosting{
		PositionType: domain.PositionStudentenferienjob,
		StartDate:    &start,
		EndDate:      &end,
	}

	score := ComputeMatchScore(profile, job)

	assert.Equal(t, 10, score.Breakdown.Availability)
	last := score.Details[len(score.Details)-1]
	assert.Equal(t, DetailAvailability, last.Kind)
	assert.Equal(t, "availability matches", last.Message())
}

func TestComputeMatchScore_AvailabilityDisjoint(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	profile := fullProfile()
	profile.SemesterBreakFrom = &from
	profile.SemesterBreakTo = &to
	job := &domain.JobPosting{
		PositionType: domain.PositionStudentenferienjob,
		StartDate:    &start,
		EndDate:      &end,
	}

	score := ComputeMatchScore(profile, job)

	assert.Equal(t, 0, score.Breakdown.Availability)
	for _, d := range score.Details {
		assert.NotEqual(t, DetailAvailability, d.Kind)
	}
}

func TestComputeMatchScore_AvailabilityUnspecifiedIsNonBlocking(t *testing.T) {
	profile := fullProfile()
	job := &domain.JobPosting{PositionType: domain.PositionStudentenferienjob}

	score := ComputeMatchScore(profile, job)

	assert.Equal(t, 10, score.Breakdown.Availability)
	for _, d := range score.Details {
		assert.NotEqual(t, DetailAvailability, d.Kind)
	}
}

func TestComputeMatchScore_DetailOrderIsFixed(t *testing.T) {
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	profile := fullProfile()
	profile.SemesterBreakFrom = &from
	profile.SemesterBreakTo = &to
	job := &domain.JobPosting{
		PositionType:    domain.PositionStudentenferienjob,
		GermanRequired:  domain.LevelB1,
		EnglishRequired: domain.LevelA2,
		StartDate:       &start,
		EndDate:         &end,
	}

	score := ComputeMatchScore(profile, job)

	kinds := make([]DetailKind, 0, len(score.Details))
	for _, d := range score.Details {
		kinds = append(kinds, d.Kind)
	}
	assert.Equal(t, []DetailKind{
		DetailPosition, DetailGerman, DetailEnglish, DetailExperience, DetailAvailability,
	}, kinds)
}

func TestRecommendationBoundaries(t *testing.T) {
	assert.Equal(t, RecommendationVeryGood, recommendationFor(100))
	assert.Equal(t, RecommendationVeryGood, recommendationFor(70))
	assert.Equal(t, RecommendationModerate, recommendationFor(69))
	assert.Equal(t, RecommendationModerate, recommendationFor(40))
	assert.Equal(t, RecommendationLow, recommendationFor(39))
	assert.Equal(t, RecommendationLow, recommendationFor(0))
}

func TestScoreLanguage_EnglishShortfallDetail(t *testing.T) {
	points, detail := scoreLanguage(DetailEnglish, EnglishScoreCap, domain.LevelC1, domain.LevelB1)

	// Shortfall of 2 levels: floor(15 * 4/6) = 10.
	assert.Equal(t, 10, points)
	require.NotNil(t, detail)
	assert.Equal(t, "english below requirement", detail.Message())
}
