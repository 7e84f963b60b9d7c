package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

const profileColumns = `id, user_id, first_name, last_name, date_of_birth, nationality, phone,
	        street, COALESCE(house_number, ''), COALESCE(postal_code, ''), city, country,
	        position_types, COALESCE(position_type, ''), COALESCE(german_level, ''),
	        COALESCE(english_level, ''), work_experience_years,
	        semester_break_from, semester_break_to, created_at, updated_at`

// GetProfileByUserID retrieves the applicant profile for a user, or nil
// when the user has not created one yet.
func (db *DB) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.ApplicantProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM applicant_profiles WHERE user_id = $1`,
		userID,
	)
	profile, err := scanProfile(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile creates or updates the profile for a user. The legacy
// singular position type is normalized from the set before writing so
// the two representations never drift.
func (db *DB) UpsertProfile(ctx context.Context, userID uuid.UUID, profile *domain.ApplicantProfile) (*domain.ApplicantProfile, error) {
	profile.Normalize()

	positionTypesJSON, err := json.Marshal(profile.PositionTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal position types: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO applicant_profiles (user_id, first_name, last_name, date_of_birth,
		                                 nationality, phone, street, house_number, postal_code,
		                                 city, country, position_types, position_type,
		                                 german_level, english_level, work_experience_years,
		                                 semester_break_from, semester_break_to)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 ON CONFLICT (user_id) DO UPDATE SET
		     first_name = $2,
		     last_name = $3,
		     date_of_birth = $4,
		     nationality = $5,
		     phone = $6,
		     street = $7,
		     house_number = $8,
		     postal_code = $9,
		     city = $10,
		     country = $11,
		     position_types = $12,
		     position_type = $13,
		     german_level = $14,
		     english_level = $15,
		     work_experience_years = $16,
		     semester_break_from = $17,
		     semester_break_to = $18,
		     updated_at = NOW()
		 RETURNING `+profileColumns,
		userID, profile.FirstName, profile.LastName, profile.DateOfBirth,
		profile.Nationality, profile.Phone, profile.Street,
		nullIfEmpty(profile.HouseNumber), nullIfEmpty(profile.PostalCode),
		profile.City, profile.Country, positionTypesJSON,
		nullIfEmpty(string(profile.PositionType)),
		nullIfEmpty(string(profile.GermanLevel)), nullIfEmpty(string(profile.EnglishLevel)),
		profile.WorkExperienceYears, profile.SemesterBreakFrom, profile.SemesterBreakTo,
	)
	stored, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return stored, nil
}

// scanProfile scans one profile row, decoding the position_types JSONB.
func scanProfile(row pgx.Row) (*domain.ApplicantProfile, error) {
	var p domain.ApplicantProfile
	var positionTypesJSON []byte

	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.DateOfBirth,
		&p.Nationality, &p.Phone, &p.Street, &p.HouseNumber, &p.PostalCode,
		&p.City, &p.Country, &positionTypesJSON, &p.PositionType,
		&p.GermanLevel, &p.EnglishLevel, &p.WorkExperienceYears,
		&p.SemesterBreakFrom, &p.SemesterBreakTo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if positionTypesJSON != nil {
		_ = json.Unmarshal(positionTypesJSON, &p.PositionTypes)
	}

	return &p, nil
}
