// Package domain defines the shared enumerations and aggregates of the
// placement marketplace: language levels, position types, document types,
// applicant profiles and job postings.
package domain

import "fmt"

// LanguageLevel is a proficiency tier on the CEFR-like ordered scale
// none < a1 < a2 < b1 < b2 < c1 < c2. The empty string is treated the
// same as LevelNone: no proficiency on a profile, no requirement on a job.
type LanguageLevel string

// Language levels in ascending order.
const (
	LevelNone LanguageLevel = "none"
	LevelA1   LanguageLevel = "a1"
	LevelA2   LanguageLevel = "a2"
	LevelB1   LanguageLevel = "b1"
	LevelB2   LanguageLevel = "b2"
	LevelC1   LanguageLevel = "c1"
	LevelC2   LanguageLevel = "c2"
)

// MaxLevelRank is the rank of the highest level (c2).
const MaxLevelRank = 6

// levelRanks is the single ordered-rank table for the scale. Both language
// sub-scorers go through Rank so the ordering is defined exactly once.
var levelRanks = map[LanguageLevel]int{
	LevelNone: 0,
	LevelA1:   1,
	LevelA2:   2,
	LevelB1:   3,
	LevelB2:   4,
	LevelC1:   5,
	LevelC2:   6,
}

// Rank returns the integer rank (0..6) of the level. Unknown or empty
// levels rank as none.
func (l LanguageLevel) Rank() int {
	return levelRanks[l]
}

// IsRequirement reports whether the level expresses an actual requirement
// when set on a job posting. Empty and none both mean "not required".
func (l LanguageLevel) IsRequirement() bool {
	return l != "" && l != LevelNone
}

// Valid reports whether the level is part of the scale. The empty string
// is accepted as the unset sentinel.
func (l LanguageLevel) Valid() bool {
	if l == "" {
		return true
	}
	_, ok := levelRanks[l]
	return ok
}

// ParseLanguageLevel converts a string into a LanguageLevel.
func ParseLanguageLevel(s string) (LanguageLevel, error) {
	l := LanguageLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown language level: %q", s)
	}
	return l, nil
}
