package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
)

type sessionRepository struct {
	conn conn
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return repo.conn.run(ctx, func(st *state) error {
		if _, ok := st.principals[session.PrincipalID]; !ok {
			return repository.ErrPrincipalNotFound
		}
		for _, existing := range st.sessions {
			if existing.AccessTokenHash == session.AccessTokenHash || existing.RefreshTokenHash == session.RefreshTokenHash {
				return domainerrors.ErrDuplicateResource.WrapMessage("session token already exists")
			}
		}

		row := *session
		row.ID = st.id()
		st.sessions[row.ID] = row
		session.ID = row.ID

		return nil
	})
}

func (repo *sessionRepository) FindByID(ctx context.Context, id int64) (*entity.Session, error) {
	return repo.find(ctx, func(session entity.Session) bool { return session.ID == id })
}

func (repo *sessionRepository) FindByAccessHash(ctx context.Context, accessHash string) (*entity.Session, error) {
	return repo.find(ctx, func(session entity.Session) bool { return session.AccessTokenHash == accessHash })
}

func (repo *sessionRepository) FindValidByAccessHash(ctx context.Context, accessHash string, now time.Time) (*entity.Session, error) {
	return repo.find(ctx, func(session entity.Session) bool {
		return session.AccessTokenHash == accessHash && session.AccessValidAt(now)
	})
}

func (repo *sessionRepository) FindValidByRefreshHash(ctx context.Context, refreshHash string, now time.Time) (*entity.Session, error) {
	return repo.find(ctx, func(session entity.Session) bool {
		return session.RefreshTokenHash == refreshHash && session.RefreshValidAt(now)
	})
}

func (repo *sessionRepository) find(ctx context.Context, match func(entity.Session) bool) (*entity.Session, error) {
	var out *entity.Session
	err := repo.conn.run(ctx, func(st *state) error {
		for _, session := range st.sessions {
			if match(session) {
				out = &session

				return nil
			}
		}

		return repository.ErrSessionNotFound
	})

	return out, err
}

func (repo *sessionRepository) Touch(ctx context.Context, id int64, now time.Time) error {
	return repo.conn.run(ctx, func(st *state) error {
		session, ok := st.sessions[id]
		if ok && session.Active && session.LastActivityAt.Before(now) {
			session.LastActivityAt = now
			st.sessions[id] = session
		}

		return nil
	})
}

func (repo *sessionRepository) Rotate(ctx context.Context, id int64, rotation repository.SessionRotation) error {
	return repo.conn.run(ctx, func(st *state) error {
		session, ok := st.sessions[id]
		if !ok || !session.Active || session.RefreshTokenHash != rotation.PreviousRefreshHash {
			return repository.ErrSessionRotated
		}

		session.AccessTokenHash = rotation.AccessTokenHash
		session.RefreshTokenHash = rotation.RefreshTokenHash
		session.AccessExpiresAt = rotation.AccessExpiresAt
		session.RefreshExpiresAt = rotation.RefreshExpiresAt
		session.LastActivityAt = rotation.RotatedAt
		st.sessions[id] = session

		return nil
	})
}

func (repo *sessionRepository) Deactivate(ctx context.Context, id int64) error {
	_, err := repo.deactivateWhere(ctx, func(session entity.Session) bool { return session.ID == id })

	return err
}

func (repo *sessionRepository) DeactivateAllForPrincipal(ctx context.Context, principalID int64) (int, error) {
	return repo.deactivateWhere(ctx, func(session entity.Session) bool { return session.PrincipalID == principalID })
}

func (repo *sessionRepository) DeactivateMany(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	return repo.deactivateWhere(ctx, func(session entity.Session) bool { return slices.Contains(ids, session.ID) })
}

func (repo *sessionRepository) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	return repo.deactivateWhere(ctx, func(session entity.Session) bool { return !now.Before(session.RefreshExpiresAt) })
}

func (repo *sessionRepository) deactivateWhere(ctx context.Context, match func(entity.Session) bool) (int, error) {
	var count int
	err := repo.conn.run(ctx, func(st *state) error {
		for id, session := range st.sessions {
			if session.Active && match(session) {
				session.Active = false
				st.sessions[id] = session
				count++
			}
		}

		return nil
	})

	return count, err
}

func (repo *sessionRepository) ListActiveForPrincipal(ctx context.Context, principalID int64, now time.Time) ([]*entity.Session, error) {
	var out []*entity.Session
	err := repo.conn.run(ctx, func(st *state) error {
		for _, session := range st.sessions {
			if session.PrincipalID == principalID && session.RefreshValidAt(now) {
				out = append(out, &session)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b *entity.Session) int {
		if c := a.LastActivityAt.Compare(b.LastActivityAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}
