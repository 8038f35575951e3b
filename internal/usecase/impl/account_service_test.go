package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_ProvisionPrincipal(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   usecase.ProvisionPrincipalInput
		wantErr error
	}{
		{name: "valid", input: usecase.ProvisionPrincipalInput{EmployeeCode: "EMP00001", Name: "Bob"}},
		{name: "duplicate code", input: usecase.ProvisionPrincipalInput{EmployeeCode: "EMP00001", Name: "Other"}, wantErr: domainerrors.ErrDuplicateResource},
		{name: "short code", input: usecase.ProvisionPrincipalInput{EmployeeCode: "E1", Name: "Bob"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "lower case code", input: usecase.ProvisionPrincipalInput{EmployeeCode: "emp00002", Name: "Bob"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing name", input: usecase.ProvisionPrincipalInput{EmployeeCode: "EMP00003"}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := h.accounts.ProvisionPrincipal(ctx, &tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotZero(t, principal.ID)
			assert.True(t, principal.Active)
		})
	}
}

func TestAccountService_CreateAccount(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	alice, err := h.accounts.ProvisionPrincipal(ctx, &usecase.ProvisionPrincipalInput{EmployeeCode: "EMP00002", Name: "Alice"})
	require.NoError(t, err)

	_, err = h.accounts.CreateAccount(ctx, &usecase.CreateAccountInput{PrincipalID: alice.ID, Username: "bob", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateResource, "username taken")

	_, err = h.accounts.CreateAccount(ctx, &usecase.CreateAccountInput{PrincipalID: bob.ID, Username: "bob2", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateResource, "principal already has an account")

	_, err = h.accounts.CreateAccount(ctx, &usecase.CreateAccountInput{PrincipalID: 999, Username: "ghost", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = h.accounts.CreateAccount(ctx, &usecase.CreateAccountInput{PrincipalID: alice.ID, Username: "alice", Password: "short"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	account, err := h.accounts.CreateAccount(ctx, &usecase.CreateAccountInput{PrincipalID: alice.ID, Username: "alice", Password: testPassword})
	require.NoError(t, err)
	assert.NotEqual(t, testPassword, account.PasswordHash)
	assert.True(t, account.Enabled)
}

func TestAccountService_AdminOperationsOnUnknownAccount(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()

	assert.ErrorIs(t, h.accounts.ResetFailedAttempts(ctx, 42), domainerrors.ErrNotFound)
	assert.ErrorIs(t, h.accounts.SetEnabled(ctx, 42, false), domainerrors.ErrNotFound)
	_, err := h.accounts.IssueRecoveryToken(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.ErrorIs(t, h.accounts.DeactivatePrincipal(ctx, 42), domainerrors.ErrNotFound)
}

func TestAccountService_PasswordRecovery(t *testing.T) {
	h := newHarness(t, 0)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	ctx := context.Background()

	login, err := h.login("bob", testPassword)
	require.NoError(t, err)
	for range 5 {
		_, _ = h.login("bob", "WrongPass1")
	}

	recovery, err := h.accounts.IssueRecoveryToken(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, recovery.Token)

	err = h.accounts.ResetPassword(ctx, &usecase.ResetPasswordInput{RecoveryToken: recovery.Token, NewPassword: "weak"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	require.NoError(t, h.accounts.ResetPassword(ctx, &usecase.ResetPasswordInput{RecoveryToken: recovery.Token, NewPassword: "Another456!"}))

	err = h.accounts.ResetPassword(ctx, &usecase.ResetPasswordInput{RecoveryToken: recovery.Token, NewPassword: "Third789!"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken, "tokens redeem once")

	assert.Zero(t, h.failedAttempts(t, bob.ID), "reset clears the lockout")

	_, err = h.auth.Authenticate(ctx, login.Tokens.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken, "existing sessions end")

	_, err = h.login("bob", testPassword)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	_, err = h.login("bob", "Another456!")
	assert.NoError(t, err)
}

func TestAccountService_ExpiredRecoveryToken(t *testing.T) {
	h := newHarness(t, 0)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	ctx := context.Background()

	recovery, err := h.accounts.IssueRecoveryToken(ctx, bob.ID)
	require.NoError(t, err)

	h.clock.Advance(2 * time.Hour)

	err = h.accounts.ResetPassword(ctx, &usecase.ResetPasswordInput{RecoveryToken: recovery.Token, NewPassword: "Another456!"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	err = h.accounts.ResetPassword(ctx, &usecase.ResetPasswordInput{RecoveryToken: "bogus", NewPassword: "Another456!"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAccountService_DisableEndsSessions(t *testing.T) {
	h := newHarness(t, 0)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	ctx := context.Background()

	login, err := h.login("bob", testPassword)
	require.NoError(t, err)

	require.NoError(t, h.accounts.SetEnabled(ctx, bob.ID, false))

	_, err = h.auth.Authenticate(ctx, login.Tokens.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
