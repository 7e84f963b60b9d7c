package types

import (
	"github.com/go-playground/validator/v10"
)

// ProfileUpdateRequest represents the request to create or replace the
// caller's applicant profile. Dates use the YYYY-MM-DD form.
type ProfileUpdateRequest struct {
	FirstName           string   `json:"first_name" validate:"omitempty,max=100"`
	LastName            string   `json:"last_name" validate:"omitempty,max=100"`
	DateOfBirth         string   `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Nationality         string   `json:"nationality,omitempty" validate:"omitempty,max=100"`
	Phone               string   `json:"phone,omitempty" validate:"omitempty,max=50"`
	Street              string   `json:"street,omitempty" validate:"omitempty,max=200"`
	HouseNumber         string   `json:"house_number,omitempty" validate:"omitempty,max=20"`
	City                string   `json:"city,omitempty" validate:"omitempty,max=100"`
	PostalCode          string   `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Country             string   `json:"country,omitempty" validate:"omitempty,max=100"`
	PositionTypes       []string `json:"position_types,omitempty" validate:"omitempty,dive,oneof=studentenferienjob saisonjob work_and_holiday fachkraft ausbildung"`
	GermanLevel         string   `json:"german_level,omitempty" validate:"omitempty,oneof=none a1 a2 b1 b2 c1 c2"`
	EnglishLevel        string   `json:"english_level,omitempty" validate:"omitempty,oneof=none a1 a2 b1 b2 c1 c2"`
	WorkExperienceYears int      `json:"work_experience_years,omitempty" validate:"omitempty,min=0,max=60"`
	SemesterBreakFrom   string   `json:"semester_break_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SemesterBreakTo     string   `json:"semester_break_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// LanguageRequirementRequest is one additional language requirement on
// a job posting.
type LanguageRequirementRequest struct {
	Language string `json:"language" validate:"required,max=50"`
	Level    string `json:"level" validate:"required,oneof=a1 a2 b1 b2 c1 c2"`
}

// JobCreateRequest represents the request to create a job posting.
// The same shape serves updates.
type JobCreateRequest struct {
	Title           string                       `json:"title" validate:"required,max=200"`
	Description     string                       `json:"description,omitempty" validate:"omitempty,max=10000"`
	City            string                       `json:"city,omitempty" validate:"omitempty,max=100"`
	PositionType    string                       `json:"position_type" validate:"required,oneof=studentenferienjob saisonjob work_and_holiday fachkraft ausbildung"`
	GermanRequired  string                       `json:"german_required,omitempty" validate:"omitempty,oneof=none a1 a2 b1 b2 c1 c2"`
	EnglishRequired string                       `json:"english_required,omitempty" validate:"omitempty,oneof=none a1 a2 b1 b2 c1 c2"`
	OtherLanguages  []LanguageRequirementRequest `json:"other_languages,omitempty" validate:"omitempty,dive"`
	StartDate       string                       `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate         string                       `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// DocumentCreateRequest represents the request to register an uploaded
// document under one of the known document tags.
type DocumentCreateRequest struct {
	DocumentType string `json:"document_type" validate:"required,oneof=passport cv photo enrollment_cert enrollment_trans ba_declaration language_cert diploma school_cert work_reference other"`
	FileName     string `json:"file_name" validate:"required,max=255"`
}

// ApplicationCreateRequest represents the request to apply to a job.
type ApplicationCreateRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

// ApplicationStatusRequest represents a company moving an application
// through the review pipeline.
type ApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed interview accepted rejected"`
}

// Validate validates the ProfileUpdateRequest using the validator.
func (r *ProfileUpdateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the JobCreateRequest using the validator.
func (r *JobCreateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the DocumentCreateRequest using the validator.
func (r *DocumentCreateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ApplicationCreateRequest using the validator.
func (r *ApplicationCreateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ApplicationStatusRequest using the validator.
func (r *ApplicationStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
