package domain

import (
	"time"

	"github.com/google/uuid"
)

// LanguageRequirement is one (language, level) pair on a job posting,
// for languages beyond German and English.
type LanguageRequirement struct {
	Language string        `json:"language"`
	Level    LanguageLevel `json:"level"`
}

// JobPosting is one company-created listing. PositionType is always set;
// jobs cannot be created without it.
type JobPosting struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`

	PositionType PositionType `json:"position_type"`

	// Language requirements. The none/empty sentinel means not required.
	GermanRequired  LanguageLevel         `json:"german_required,omitempty"`
	EnglishRequired LanguageLevel         `json:"english_required,omitempty"`
	OtherLanguages  []LanguageRequirement `json:"other_languages_required,omitempty"`

	// Desired availability window
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
