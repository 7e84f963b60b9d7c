// Package server provides the HTTP REST API for the placement backend.
package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/talentbruecke/placement-backend/internal/domain"
	"github.com/talentbruecke/placement-backend/internal/matching"
	"github.com/talentbruecke/placement-backend/internal/server/middleware"
)

// evaluate runs both evaluators against one applicant-job pair and
// renders the combined payload. Results are computed on demand and never
// cached.
func (s *Server) evaluate(profile *domain.ApplicantProfile, job *domain.JobPosting, documents []domain.Document) EvaluationPayload {
	verdict := matching.CheckEligibility(profile, job, documents, s.catalog)
	score := matching.ComputeMatchScore(profile, job)
	return EvaluationPayload{
		Eligibility: presentVerdict(verdict),
		Match:       presentScore(score),
	}
}

// fetchApplicantData loads an applicant's profile and documents
// concurrently.
func (s *Server) fetchApplicantData(ctx context.Context, applicantID uuid.UUID) (*domain.ApplicantProfile, []domain.Document, error) {
	var (
		profile   *domain.ApplicantProfile
		documents []domain.Document
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.db.GetProfileByUserID(gctx, applicantID)
		return err
	})
	g.Go(func() error {
		var err error
		documents, err = s.db.ListDocumentsByApplicant(gctx, applicantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return profile, documents, nil
}

// handleJobEvaluation evaluates the calling applicant against one job.
func (s *Server) handleJobEvaluation(w http.ResponseWriter, r *http.Request) {
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

	profile, documents, err := s.fetchApplicantData(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applicant data")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.evaluate(profile, job, documents))
}

// handleApplicationEvaluation evaluates the applicant behind a received
// application for the owning company. The computation is identical to
// the applicant-side view, run against the documents shared with the
// application.
func (s *Server) handleApplicationEvaluation(w http.ResponseWriter, r *http.Request) {
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
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	if job.CompanyID != companyID {
		s.errorResponse(w, http.StatusForbidden, "Forbidden")
		return
	}

	var (
		profile   *domain.ApplicantProfile
		documents []domain.Document
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		profile, err = s.db.GetProfileByUserID(gctx, application.ApplicantID)
		return err
	})
	g.Go(func() error {
		var err error
		documents, err = s.db.SharedDocuments(gctx, applicationID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applicant data")
		return
	}

	s.jsonResponse(w, http.StatusOK, s.evaluate(profile, job, documents))
}
