package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

// Application is one submitted application of an applicant to a job.
// Submitting an application shares the applicant's documents with the
// job's company for review.
type Application struct {
	ID          uuid.UUID                `json:"id"`
	JobID       uuid.UUID                `json:"job_id"`
	ApplicantID uuid.UUID                `json:"applicant_id"`
	Status      domain.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ListApplicationsOptions contains filters for listing applications.
type ListApplicationsOptions struct {
	ApplicantID *uuid.UUID
	JobID       *uuid.UUID
	Status      domain.ApplicationStatus
	Limit       int
	Offset      int
}
