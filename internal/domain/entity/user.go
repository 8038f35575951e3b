// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"time"
)

// EmployeeCodeLength is the fixed length of every employee code.
const EmployeeCodeLength = 8

var employeeCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

// Principal is an employee identity that can hold an account, roles and sessions.
type Principal struct {
	ID           int64     // Surrogate key.
	EmployeeCode string    // Fixed-length business identifier, e.g. "EMP00042".
	Name         string    // Display name.
	Active       bool      // Inactive principals cannot authenticate.
	CreatedAt    time.Time // Timestamp of when the principal was provisioned.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// ValidEmployeeCode reports whether code is 8 upper-case alphanumerics.
func ValidEmployeeCode(code string) bool {
	return employeeCodePattern.MatchString(code)
}
