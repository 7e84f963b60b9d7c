package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicantProfile holds everything the marketplace knows about an
// applicant. The position_types set is authoritative; the singular
// PositionType field is a derived view equal to the first element,
// kept in sync by Normalize at every mutation site.
type ApplicantProfile struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	// Identity
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Nationality string     `json:"nationality"`
	Phone       string     `json:"phone"`

	// Address
	Street      string `json:"street"`
	HouseNumber string `json:"house_number,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	City        string `json:"city"`
	Country     string `json:"country"`

	// Position interest. PositionType mirrors the first element of
	// PositionTypes for older clients.
	PositionTypes []PositionType `json:"position_types"`
	PositionType  PositionType   `json:"position_type,omitempty"`

	// Languages and experience
	GermanLevel         LanguageLevel `json:"german_level,omitempty"`
	EnglishLevel        LanguageLevel `json:"english_level,omitempty"`
	WorkExperienceYears int           `json:"work_experience_years"`

	// Availability for the student holiday job type
	SemesterBreakFrom *time.Time `json:"semester_break_from,omitempty"`
	SemesterBreakTo   *time.Time `json:"semester_break_to,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Normalize re-derives the legacy singular position type from the set.
func (p *ApplicantProfile) Normalize() {
	if len(p.PositionTypes) > 0 {
		p.PositionType = p.PositionTypes[0]
	} else {
		p.PositionType = ""
	}
}

// HasPositionType reports whether the applicant selected the given
// position type. The legacy singular field counts as selected.
func (p *ApplicantProfile) HasPositionType(t PositionType) bool {
	for _, pt := range p.PositionTypes {
		if pt == t {
			return true
		}
	}
	return p.PositionType != "" && p.PositionType == t
}

// FirstPositionType returns the applicant's primary position type, or ""
// when none is selected.
func (p *ApplicantProfile) FirstPositionType() PositionType {
	if len(p.PositionTypes) > 0 {
		return p.PositionTypes[0]
	}
	return p.PositionType
}
