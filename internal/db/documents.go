package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

// CreateDocument records the metadata of one uploaded file.
func (db *DB) CreateDocument(ctx context.Context, applicantID uuid.UUID, docType domain.DocumentType, fileName string) (*domain.Document, error) {
	var d domain.Document
	err := db.pool.QueryRow(ctx,
		`INSERT INTO documents (applicant_id, document_type, file_name)
		 VALUES ($1, $2, $3)
		 RETURNING id, applicant_id, document_type, file_name, uploaded_at`,
		applicantID, docType, fileName,
	).Scan(&d.ID, &d.ApplicantID, &d.Type, &d.FileName, &d.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return &d, nil
}

// GetDocumentByID retrieves a document, or nil when none exists.
func (db *DB) GetDocumentByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var d domain.Document
	err := db.pool.QueryRow(ctx,
		`SELECT id, applicant_id, document_type, file_name, uploaded_at
		 FROM documents WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.ApplicantID, &d.Type, &d.FileName, &d.UploadedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &d, nil
}

// ListDocumentsByApplicant retrieves all documents owned by an applicant.
func (db *DB) ListDocumentsByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.Document, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, applicant_id, document_type, file_name, uploaded_at
		 FROM documents
		 WHERE applicant_id = $1
		 ORDER BY uploaded_at DESC`,
		applicantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
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

// DeleteDocument removes a document owned by the applicant.
func (db *DB) DeleteDocument(ctx context.Context, id, applicantID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM documents WHERE id = $1 AND applicant_id = $2`, id, applicantID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s", id)
	}
	return nil
}
