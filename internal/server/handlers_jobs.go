// Package server provides the HTTP REST API for the placement backend.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/talentbruecke/placement-backend/internal/db"
	"github.com/talentbruecke/placement-backend/internal/domain"
	"github.com/talentbruecke/placement-backend/internal/server/middleware"
	"github.com/talentbruecke/placement-backend/internal/types"
)

// handleListJobs returns the public job listing with optional filters.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	opts := db.ListJobsOptions{
		City: r.URL.Query().Get("city"),
	}

	if positionType := r.URL.Query().Get("position_type"); positionType != "" {
		t, err := domain.ParsePositionType(positionType)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		opts.PositionType = t
	}
	opts.Limit, opts.Offset = parsePagination(r)

	jobs, total, err := s.db.ListJobs(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []domain.JobPosting{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"total": total,
	})
}

// handleGetJob returns one job posting.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.db.GetJobByID(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleCreateJob creates a job posting owned by the calling company.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.JobCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	input, err := jobInputFromRequest(companyID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.db.CreateJob(r.Context(), input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleUpdateJob replaces a job posting owned by the calling company.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req types.JobCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	input, err := jobInputFromRequest(companyID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.db.UpdateJob(r.Context(), jobID, input)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleDeleteJob removes a job posting owned by the calling company.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := s.db.DeleteJob(r.Context(), jobID, companyID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, "Job not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleCatalogDocuments returns the document requirements for one
// position type.
func (s *Server) handleCatalogDocuments(w http.ResponseWriter, r *http.Request) {
	positionType, err := domain.ParsePositionType(r.PathValue("position_type"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"position_type": positionType,
		"documents":     s.catalog.Requirements(positionType),
	})
}

// jobInputFromRequest converts a validated job request into a store
// input.
func jobInputFromRequest(companyID uuid.UUID, req *types.JobCreateRequest) (*db.JobCreateInput, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	otherLanguages := make([]domain.LanguageRequirement, 0, len(req.OtherLanguages))
	for _, l := range req.OtherLanguages {
		otherLanguages = append(otherLanguages, domain.LanguageRequirement{
			Language: l.Language,
			Level:    domain.LanguageLevel(l.Level),
		})
	}

	return &db.JobCreateInput{
		CompanyID:       companyID,
		Title:           req.Title,
		Description:     req.Description,
		City:            req.City,
		PositionType:    domain.PositionType(req.PositionType),
		GermanRequired:  domain.LanguageLevel(req.GermanRequired),
		EnglishRequired: domain.LanguageLevel(req.EnglishRequired),
		OtherLanguages:  otherLanguages,
		StartDate:       startDate,
		EndDate:         endDate,
	}, nil
}

// parsePagination reads limit/offset query parameters. The store layer
// applies the defaults and caps.
func parsePagination(r *http.Request) (limit, offset int) {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}
