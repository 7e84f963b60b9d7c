// Package server provides the HTTP REST API for the placement backend.
package server

import (
	"net/http"

	"github.com/talentbruecke/placement-backend/internal/db"
	"github.com/talentbruecke/placement-backend/internal/domain"
	"github.com/talentbruecke/placement-backend/internal/types"
)

// handleListUsers lists accounts for admins, optionally filtered by
// role.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	var opts db.ListUsersOptions
	opts.Limit, opts.Offset = parsePagination(r)

	if roleParam := r.URL.Query().Get("role"); roleParam != "" {
		role, err := domain.ParseRole(roleParam)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		opts.Role = role
	}

	dbUsers, total, err := s.db.ListUsers(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	users := make([]*types.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, convertDBUser(&dbUsers[i]))
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"users": users,
		"total": total,
	})
}
