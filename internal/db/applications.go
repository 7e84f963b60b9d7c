package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

// CreateApplication submits an application. The unique constraint on
// (job_id, applicant_id) rejects duplicates.
func (db *DB) CreateApplication(ctx context.Context, jobID, applicantID uuid.UUID) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (job_id, applicant_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING id, job_id, applicant_id, status, created_at, updated_at`,
		jobID, applicantID, domain.ApplicationPending,
	).Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &a, nil
}

// GetApplicationByID retrieves an application, or nil when none exists.
func (db *DB) GetApplicationByID(ctx context.Context, id uuid.UUID) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, applicant_id, status, created_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &a, nil
}

// GetApplicationForJob retrieves the application of one applicant to one
// job, or nil when none exists.
func (db *DB) GetApplicationForJob(ctx context.Context, jobID, applicantID uuid.UUID) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, applicant_id, status, created_at, updated_at
		 FROM applications WHERE job_id = $1 AND applicant_id = $2`,
		jobID, applicantID,
	).Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &a, nil
}

// ListApplications retrieves applications with optional filters and
// pagination, returning the total count alongside the page.
func (db *DB) ListApplications(ctx context.Context, opts ListApplicationsOptions) ([]Application, int, error) {
	var conditions []string
	var args []any
	argIndex := 1

	if opts.ApplicantID != nil {
		conditions = append(conditions, fmt.Sprintf("applicant_id = $%d", argIndex))
		args = append(args, *opts.ApplicantID)
		argIndex++
	}
	if opts.JobID != nil {
		conditions = append(conditions, fmt.Sprintf("job_id = $%d", argIndex))
		args = append(args, *opts.JobID)
		argIndex++
	}
	if opts.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, opts.Status)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM applications %s", whereClause)
	var total int
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT id, job_id, applicant_id, status, created_at, updated_at
		 FROM applications %s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
	)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var applications []Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, a)
	}
	return applications, total, nil
}

// UpdateApplicationStatus moves an application to a new status.
func (db *DB) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*Application, error) {
	var a Application
	err := db.pool.QueryRow(ctx,
		`UPDATE applications SET status = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, job_id, applicant_id, status, created_at, updated_at`,
		id, status,
	).Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return &a, nil
}

// SharedDocuments retrieves the documents shared with the company
// through an application: the applicant's document list at review time.
func (db *DB) SharedDocuments(ctx context.Context, applicationID uuid.UUID) ([]domain.Document, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT d.id, d.applicant_id, d.document_type, d.file_name, d.uploaded_at
		 FROM documents d
		 JOIN applications a ON a.applicant_id = d.applicant_id
		 WHERE a.id = $1
		 ORDER BY d.uploaded_at DESC`,
		applicationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared documents: %w", err)
	}
	defer rows.Close()

	var documents []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.ApplicantID, &d.Type, &d.FileName, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, d)
	}
	return documents, nil
}
