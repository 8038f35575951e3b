// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrPrincipalNotFound is returned when no principal has the requested id.
	ErrPrincipalNotFound = errors.New("principal not found")
	// ErrEmployeeCodeTaken is returned when the employee code is already provisioned.
	ErrEmployeeCodeTaken = errors.New("employee code already exists")
)

// PrincipalRepository persists employee identities.
type PrincipalRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Principal, error)

	// Create assigns principal.ID on success.
	Create(ctx context.Context, principal *entity.Principal) error

	SetActive(ctx context.Context, id int64, active bool) error

	// AcquireSessionMutex takes an exclusive lock on the principal for the rest of the
	// enclosing transaction. Session creation and limit enforcement for one principal
	// are serialised through it.
	AcquireSessionMutex(ctx context.Context, id int64) error
}
