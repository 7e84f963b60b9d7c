// Package server provides the HTTP REST API for the placement backend.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/talentbruecke/placement-backend/internal/domain"
	"github.com/talentbruecke/placement-backend/internal/server/middleware"
	"github.com/talentbruecke/placement-backend/internal/types"
)

// handleGetProfile returns the caller's applicant profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.db.GetProfileByUserID(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile creates or replaces the caller's applicant
// profile.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := profileFromRequest(&req)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := s.db.UpsertProfile(r.Context(), userID, profile)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// profileFromRequest converts a validated update request into a domain
// profile.
func profileFromRequest(req *types.ProfileUpdateRequest) (*domain.ApplicantProfile, error) {
	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	breakFrom, err := parseDate(req.SemesterBreakFrom)
	if err != nil {
		return nil, err
	}
	breakTo, err := parseDate(req.SemesterBreakTo)
	if err != nil {
		return nil, err
	}

	positionTypes := make([]domain.PositionType, 0, len(req.PositionTypes))
	for _, t := range req.PositionTypes {
		positionTypes = append(positionTypes, domain.PositionType(t))
	}

	profile := &domain.ApplicantProfile{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		DateOfBirth:         dateOfBirth,
		Nationality:         req.Nationality,
		Phone:               req.Phone,
		Street:              req.Street,
		HouseNumber:         req.HouseNumber,
		PostalCode:          req.PostalCode,
		City:                req.City,
		Country:             req.Country,
		PositionTypes:       positionTypes,
		GermanLevel:         domain.LanguageLevel(req.GermanLevel),
		EnglishLevel:        domain.LanguageLevel(req.EnglishLevel),
		WorkExperienceYears: req.WorkExperienceYears,
		SemesterBreakFrom:   breakFrom,
		SemesterBreakTo:     breakTo,
	}
	profile.Normalize()
	return profile, nil
}

// parseDate parses an optional YYYY-MM-DD date string.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, &ErrValidation{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	return &t, nil
}
