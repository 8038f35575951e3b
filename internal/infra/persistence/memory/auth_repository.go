package memory

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
)

type authAccountRepository struct {
	conn conn
}

func copyAccount(account entity.AuthAccount) entity.AuthAccount {
	if account.RecoveryTokenExpiresAt != nil {
		expiresAt := *account.RecoveryTokenExpiresAt
		account.RecoveryTokenExpiresAt = &expiresAt
	}

	return account
}

func (repo *authAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.AuthAccount, error) {
	return repo.find(ctx, func(account entity.AuthAccount) bool { return account.Username == username })
}

func (repo *authAccountRepository) FindByPrincipalID(ctx context.Context, principalID int64) (*entity.AuthAccount, error) {
	return repo.find(ctx, func(account entity.AuthAccount) bool { return account.PrincipalID == principalID })
}

func (repo *authAccountRepository) FindByRecoveryTokenHash(ctx context.Context, hash string) (*entity.AuthAccount, error) {
	if hash == "" {
		return nil, repository.ErrAccountNotFound
	}

	return repo.find(ctx, func(account entity.AuthAccount) bool { return account.RecoveryTokenHash == hash })
}

func (repo *authAccountRepository) find(ctx context.Context, match func(entity.AuthAccount) bool) (*entity.AuthAccount, error) {
	var out *entity.AuthAccount
	err := repo.conn.run(ctx, func(st *state) error {
		for _, account := range st.accounts {
			if match(account) {
				found := copyAccount(account)
				out = &found

				return nil
			}
		}

		return repository.ErrAccountNotFound
	})

	return out, err
}

func (repo *authAccountRepository) Create(ctx context.Context, account *entity.AuthAccount) error {
	return repo.conn.run(ctx, func(st *state) error {
		if _, ok := st.principals[account.PrincipalID]; !ok {
			return repository.ErrPrincipalNotFound
		}
		if _, ok := st.accounts[account.PrincipalID]; ok {
			return repository.ErrAccountExists
		}
		for _, existing := range st.accounts {
			if existing.Username == account.Username {
				return repository.ErrAccountExists
			}
		}

		now := time.Now()
		row := copyAccount(*account)
		row.ID = st.id()
		row.CreatedAt = now
		row.UpdatedAt = now
		st.accounts[row.PrincipalID] = row

		account.ID = row.ID
		account.CreatedAt = now
		account.UpdatedAt = now

		return nil
	})
}

func (repo *authAccountRepository) SetPasswordHash(ctx context.Context, principalID int64, hash string) error {
	return repo.update(ctx, principalID, func(_ *state, account *entity.AuthAccount) error {
		account.PasswordHash = hash

		return nil
	})
}

func (repo *authAccountRepository) IncrementFailedAttempts(ctx context.Context, principalID int64) (int, error) {
	var count int
	err := repo.update(ctx, principalID, func(_ *state, account *entity.AuthAccount) error {
		account.FailedAttempts++
		count = account.FailedAttempts

		return nil
	})

	return count, err
}

func (repo *authAccountRepository) ResetFailedAttempts(ctx context.Context, principalID int64) error {
	return repo.update(ctx, principalID, func(_ *state, account *entity.AuthAccount) error {
		account.FailedAttempts = 0

		return nil
	})
}

func (repo *authAccountRepository) SetEnabled(ctx context.Context, principalID int64, enabled bool) error {
	return repo.update(ctx, principalID, func(_ *state, account *entity.AuthAccount) error {
		account.Enabled = enabled

		return nil
	})
}

func (repo *authAccountRepository) SetRecoveryToken(ctx context.Context, principalID int64, hash string, expiresAt *time.Time) error {
	return repo.update(ctx, principalID, func(st *state, account *entity.AuthAccount) error {
		if hash == "" {
			account.RecoveryTokenHash = ""
			account.RecoveryTokenExpiresAt = nil

			return nil
		}
		for pid, other := range st.accounts {
			if pid != principalID && other.RecoveryTokenHash == hash {
				return repository.ErrAccountExists
			}
		}

		account.RecoveryTokenHash = hash
		account.RecoveryTokenExpiresAt = nil
		if expiresAt != nil {
			at := *expiresAt
			account.RecoveryTokenExpiresAt = &at
		}

		return nil
	})
}

func (repo *authAccountRepository) update(ctx context.Context, principalID int64, mutate func(*state, *entity.AuthAccount) error) error {
	return repo.conn.run(ctx, func(st *state) error {
		account, ok := st.accounts[principalID]
		if !ok {
			return repository.ErrAccountNotFound
		}
		if err := mutate(st, &account); err != nil {
			return err
		}
		account.UpdatedAt = time.Now()
		st.accounts[principalID] = account

		return nil
	})
}
