package memory

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
)

type principalRepository struct {
	conn conn
}

func (repo *principalRepository) FindByID(ctx context.Context, id int64) (*entity.Principal, error) {
	var out *entity.Principal
	err := repo.conn.run(ctx, func(st *state) error {
		principal, ok := st.principals[id]
		if !ok {
			return repository.ErrPrincipalNotFound
		}
		out = &principal

		return nil
	})

	return out, err
}

func (repo *principalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	return repo.conn.run(ctx, func(st *state) error {
		for _, existing := range st.principals {
			if existing.EmployeeCode == principal.EmployeeCode {
				return repository.ErrEmployeeCodeTaken
			}
		}

		now := time.Now()
		row := *principal
		row.ID = st.id()
		row.CreatedAt = now
		row.UpdatedAt = now
		st.principals[row.ID] = row

		*principal = row

		return nil
	})
}

func (repo *principalRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return repo.conn.run(ctx, func(st *state) error {
		principal, ok := st.principals[id]
		if !ok {
			return repository.ErrPrincipalNotFound
		}
		principal.Active = active
		principal.UpdatedAt = time.Now()
		st.principals[id] = principal

		return nil
	})
}

// AcquireSessionMutex only checks existence: the enclosing transaction already holds the store lock.
func (repo *principalRepository) AcquireSessionMutex(ctx context.Context, id int64) error {
	return repo.conn.run(ctx, func(st *state) error {
		if _, ok := st.principals[id]; !ok {
			return repository.ErrPrincipalNotFound
		}

		return nil
	})
}
