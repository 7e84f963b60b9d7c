// Package server provides the HTTP REST API for the placement backend.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/talentbruecke/placement-backend/internal/domain"
	"github.com/talentbruecke/placement-backend/internal/server/middleware"
	"github.com/talentbruecke/placement-backend/internal/types"
)

// handleListDocuments returns the caller's uploaded documents.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	documents, err := s.db.ListDocumentsByApplicant(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}
	if documents == nil {
		documents = []domain.Document{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"documents": documents})
}

// handleCreateDocument records the metadata of an uploaded file.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.DocumentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	document, err := s.db.CreateDocument(r.Context(), userID,
		domain.DocumentType(req.DocumentType), req.FileName)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create document")
		return
	}

	s.jsonResponse(w, http.StatusCreated, document)
}

// handleDeleteDocument removes one of the caller's documents.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	documentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document ID")
		return
	}

	if err := s.db.DeleteDocument(r.Context(), documentID, userID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, "Document not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
