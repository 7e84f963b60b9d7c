package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

const jobColumns = `id, company_id, title, COALESCE(description, ''), COALESCE(city, ''),
	        position_type, COALESCE(german_required, ''), COALESCE(english_required, ''),
	        other_languages, start_date, end_date, created_at, updated_at`

// JobCreateInput holds the fields needed to create or update a job posting.
type JobCreateInput struct {
	CompanyID       uuid.UUID
	Title           string
	Description     string
	City            string
	PositionType    domain.PositionType
	GermanRequired  domain.LanguageLevel
	EnglishRequired domain.LanguageLevel
	OtherLanguages  []domain.LanguageRequirement
	StartDate       *time.Time
	EndDate         *time.Time
}

// ListJobsOptions contains filters for listing job postings.
type ListJobsOptions struct {
	PositionType domain.PositionType
	City         string
	CompanyID    *uuid.UUID
	Limit        int
	Offset       int
}

// CreateJob inserts a new job posting.
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (*domain.JobPosting, error) {
	otherLanguagesJSON, err := json.Marshal(input.OtherLanguages)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal language requirements: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (company_id, title, description, city, position_type,
		                   german_required, english_required, other_languages, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+jobColumns,
		input.CompanyID, input.Title, nullIfEmpty(input.Description), nullIfEmpty(input.City),
		input.PositionType, nullIfEmpty(string(input.GermanRequired)),
		nullIfEmpty(string(input.EnglishRequired)), otherLanguagesJSON,
		input.StartDate, input.EndDate,
	)
	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// UpdateJob updates an existing job posting owned by the company.
func (db *DB) UpdateJob(ctx context.Context, id uuid.UUID, input *JobCreateInput) (*domain.JobPosting, error) {
	otherLanguagesJSON, err := json.Marshal(input.OtherLanguages)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal language requirements: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE jobs SET
		     title = $2,
		     description = $3,
		     city = $4,
		     position_type = $5,
		     german_required = $6,
		     english_required = $7,
		     other_languages = $8,
		     start_date = $9,
		     end_date = $10,
		     updated_at = NOW()
		 WHERE id = $1 AND company_id = $11
		 RETURNING `+jobColumns,
		id, input.Title, nullIfEmpty(input.Description), nullIfEmpty(input.City),
		input.PositionType, nullIfEmpty(string(input.GermanRequired)),
		nullIfEmpty(string(input.EnglishRequired)), otherLanguagesJSON,
		input.StartDate, input.EndDate, input.CompanyID,
	)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// GetJobByID retrieves a job posting, or nil when none exists.
func (db *DB) GetJobByID(ctx context.Context, id uuid.UUID) (*domain.JobPosting, error) {
	row := db.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// DeleteJob removes a job posting owned by the company.
func (db *DB) DeleteJob(ctx context.Context, id, companyID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

// ListJobs lists job postings with optional filters and pagination,
// returning the total count alongside the page.
func (db *DB) ListJobs(ctx context.Context, opts ListJobsOptions) ([]domain.JobPosting, int, error) {
	var conditions []string
	var args []any
	argIndex := 1

	if opts.PositionType != "" {
		conditions = append(conditions, fmt.Sprintf("position_type = $%d", argIndex))
		args = append(args, opts.PositionType)
		argIndex++
	}
	if opts.City != "" {
		conditions = append(conditions, fmt.Sprintf("city ILIKE $%d", argIndex))
		args = append(args, "%"+opts.City+"%")
		argIndex++
	}
	if opts.CompanyID != nil {
		conditions = append(conditions, fmt.Sprintf("company_id = $%d", argIndex))
		args = append(args, *opts.CompanyID)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs %s", whereClause)
	var total int
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
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
		`SELECT `+jobColumns+` FROM jobs %s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
	)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, total, nil
}

// scanJob scans one job row, decoding the other_languages JSONB.
func scanJob(row pgx.Row) (*domain.JobPosting, error) {
	var j domain.JobPosting
	var otherLanguagesJSON []byte

	err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.City,
		&j.PositionType, &j.GermanRequired, &j.EnglishRequired,
		&otherLanguagesJSON, &j.StartDate, &j.EndDate, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if otherLanguagesJSON != nil {
		_ = json.Unmarshal(otherLanguagesJSON, &j.OtherLanguages)
	}

	return &j, nil
}
