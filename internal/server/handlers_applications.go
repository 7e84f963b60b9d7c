// Package server provides the HTTP REST API for the placement backend.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/talentbruecke/placement-backend/internal/db"
	"github.com/talentbruecke/placement-backend/internal/domain"
	"github.com/talentbruecke/placement-backend/internal/matching"
	"github.com/talentbruecke/placement-backend/internal/server/middleware"
	"github.com/talentbruecke/placement-backend/internal/types"
)

// handleCreateApplication submits an application to a job. Submission is
// gated on the eligibility verdict: blocking issues reject the request
// with the rendered verdict so the client can show what to fix.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

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

	existing, err := s.db.GetApplicationForJob(r.Context(), jobID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to check application")
		return
	}
	if existing != nil {
		s.errorResponse(w, http.StatusConflict, "Already applied to this job")
		return
	}

	profile, documents, err := s.fetchApplicantData(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applicant data")
		return
	}

	verdict := matching.CheckEligibility(profile, job, documents, s.catalog)
	if !verdict.CanApply {
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error":       "not eligible",
			"eligibility": presentVerdict(verdict),
		})
		return
	}

	application, err := s.db.CreateApplication(r.Context(), jobID, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create application")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"application": application,
		"eligibility": presentVerdict(verdict),
	})
}

// handleListApplications lists applications scoped by the caller's role:
// applicants see their own, companies see those received for one of
// their jobs.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	role, err := middleware.GetRole(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var opts db.ListApplicationsOptions
	opts.Limit, opts.Offset = parsePagination(r)

	if status := r.URL.Query().Get("status"); status != "" {
		st := domain.ApplicationStatus(status)
		if !st.Valid() {
			s.errorResponse(w, http.StatusBadRequest, "Invalid status")
			return
		}
		opts.Status = st
	}

	switch role {
	case domain.RoleApplicant:
		opts.ApplicantID = &userID
	case domain.RoleCompany:
		jobIDParam := r.URL.Query().Get("job_id")
		if jobIDParam == "" {
			s.errorResponse(w, http.StatusBadRequest, "job_id is required")
			return
		}
		jobID, err := uuid.Parse(jobIDParam)
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
		if job.CompanyID != userID {
			s.errorResponse(w, http.StatusForbidden, "Forbidden")
			return
		}
		opts.JobID = &jobID
	default:
		s.errorResponse(w, http.StatusForbidden, "Forbidden")
		return
	}

	applications, total, err := s.db.ListApplications(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	if applications == nil {
		applications = []db.Application{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applications": applications,
		"total":        total,
	})
}

// handleUpdateApplicationStatus moves a received application through the
// review pipeline. Only the company that owns the job may do so.
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	companyID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	applicationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req types.ApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	application, err := s.db.GetApplicationByID(r.Context(), applicationID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get application")
		return
	}
	if application == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	job, err := s.db.GetJobByID(r.Context(), application.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job")
		return
	}
	if job == nil || job.CompanyID != companyID {
		s.errorResponse(w, http.StatusForbidden, "Forbidden")
		return
	}

	updated, err := s.db.UpdateApplicationStatus(r.Context(), applicationID,
		domain.ApplicationStatus(req.Status))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update application")
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}
