package domain

import "fmt"

// Role is the account role of a marketplace user.
type Role string

// Account roles.
const (
	RoleApplicant Role = "applicant"
	RoleCompany   Role = "company"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleApplicant, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role: %q", s)
	}
	return r, nil
}

// ApplicationStatus tracks a submitted application through review.
type ApplicationStatus string

// Application statuses.
const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationReviewed  ApplicationStatus = "reviewed"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// Valid reports whether the status is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationInterview,
		ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}
