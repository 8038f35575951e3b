package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/auth"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPrincipalID int64 = 7

type authServiceFixture struct {
	service       *authService
	txManager     *mockRepo.MockTransactionManager
	principalRepo *mockRepo.MockPrincipalRepository
	accountRepo   *mockRepo.MockAuthAccountRepository
	sessionRepo   *mockRepo.MockSessionRepository
	tokens        service.TokenService
	hasher        service.PasswordHasher
	metrics       *recordingMetrics
}

// createTestAuthService wires authService over repository mocks. The RBAC mock carries
// no expectations, so any permission lookup fails the test.
func createTestAuthService(t *testing.T) *authServiceFixture {
	t.Helper()

	cfg := newTestConfig(3)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	fx := &authServiceFixture{
		txManager:     mockRepo.NewMockTransactionManager(t),
		principalRepo: mockRepo.NewMockPrincipalRepository(t),
		accountRepo:   mockRepo.NewMockAuthAccountRepository(t),
		sessionRepo:   mockRepo.NewMockSessionRepository(t),
		tokens:        tokens,
		hasher:        auth.NewBcryptHasher(cfg),
		metrics:       newRecordingMetrics(),
	}

	permissions := NewPermissionService(PermissionServiceParams{
		RBACRepo: mockRepo.NewMockRBACRepository(t),
		Logger:   newDiscardLogger(),
	})

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:     fx.txManager,
		PrincipalRepo: fx.principalRepo,
		AccountRepo:   fx.accountRepo,
		SessionRepo:   fx.sessionRepo,
		Hasher:        fx.hasher,
		TokenService:  tokens,
		Permissions:   permissions,
		Metrics:       fx.metrics,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	}).(*authService)

	return fx
}

func (fx *authServiceFixture) account(t *testing.T) *entity.AuthAccount {
	t.Helper()

	hash, err := fx.hasher.Hash(testPassword)
	require.NoError(t, err)

	return &entity.AuthAccount{
		ID:           1,
		PrincipalID:  testPrincipalID,
		Username:     "bob",
		PasswordHash: hash,
		Enabled:      true,
	}
}

func activePrincipal() *entity.Principal {
	return &entity.Principal{ID: testPrincipalID, EmployeeCode: testEmployeeCode, Name: "bob", Active: true}
}

// assertNotAuthFailure checks that err is reported as a storage failure, not as a credential or token problem.
func assertNotAuthFailure(t *testing.T, err, cause error) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.NotErrorIs(t, err, domainerrors.ErrAccountLocked)
}

func TestAuthService_Login_FindAccountError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbError := errors.New("database connection failed")

	fx.accountRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, dbError)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: testPassword})

	assert.Nil(t, output)
	assertNotAuthFailure(t, err, dbError)
	assert.Equal(t, 1, fx.metrics.login(service.OutcomeError))
}

func TestAuthService_Login_OrphanedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := fx.account(t)

	fx.accountRepo.EXPECT().FindByUsername(ctx, "bob").Return(account, nil)
	fx.principalRepo.EXPECT().FindByID(ctx, testPrincipalID).Return(nil, repository.ErrPrincipalNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: testPassword})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, 1, fx.metrics.login(service.OutcomeInvalidCredentials))
}

func TestAuthService_Login_IncrementFailedAttemptsError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbError := errors.New("deadlock detected")
	account := fx.account(t)

	fx.accountRepo.EXPECT().FindByUsername(ctx, "bob").Return(account, nil)
	fx.principalRepo.EXPECT().FindByID(ctx, testPrincipalID).Return(activePrincipal(), nil)
	fx.accountRepo.EXPECT().IncrementFailedAttempts(ctx, testPrincipalID).Return(0, dbError)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "Wrong123!"})

	assert.Nil(t, output)
	assertNotAuthFailure(t, err, dbError)
	assert.Equal(t, 0, fx.metrics.login(service.OutcomeInvalidCredentials))
	assert.Equal(t, 1, fx.metrics.login(service.OutcomeError))
}

func TestAuthService_Login_SessionCreateError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbError := errors.New("insert into sessions failed")
	account := fx.account(t)

	fx.accountRepo.EXPECT().FindByUsername(ctx, "bob").Return(account, nil)
	fx.principalRepo.EXPECT().FindByID(ctx, testPrincipalID).Return(activePrincipal(), nil)

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPrincipals := mockRepo.NewMockPrincipalRepository(t)
		txAccounts := mockRepo.NewMockAuthAccountRepository(t)
		txSessions := mockRepo.NewMockSessionRepository(t)

		factory.EXPECT().NewPrincipalRepository().Return(txPrincipals)
		factory.EXPECT().NewAuthAccountRepository().Return(txAccounts)
		factory.EXPECT().NewSessionRepository().Return(txSessions)

		txPrincipals.EXPECT().AcquireSessionMutex(ctx, testPrincipalID).Return(nil)
		txAccounts.EXPECT().FindByPrincipalID(ctx, testPrincipalID).Return(account, nil)
		txAccounts.EXPECT().ResetFailedAttempts(ctx, testPrincipalID).Return(nil)
		txSessions.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(dbError)
	})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: testPassword})

	assert.Nil(t, output)
	assertNotAuthFailure(t, err, dbError)
	assert.Contains(t, err.Error(), "failed to execute login transaction")
}

func TestAuthService_Login_LockFailureAbortsBeforeWrites(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbError := errors.New("lock timeout")
	account := fx.account(t)

	fx.accountRepo.EXPECT().FindByUsername(ctx, "bob").Return(account, nil)
	fx.principalRepo.EXPECT().FindByID(ctx, testPrincipalID).Return(activePrincipal(), nil)

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txPrincipals := mockRepo.NewMockPrincipalRepository(t)
		factory.EXPECT().NewPrincipalRepository().Return(txPrincipals)
		txPrincipals.EXPECT().AcquireSessionMutex(ctx, testPrincipalID).Return(dbError)
	})

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: testPassword})

	assertNotAuthFailure(t, err, dbError)
}

// A failing session insert must roll back the counter reset that ran before it.
func TestAuthService_Login_FailedTransactionLeavesNoPartialState(t *testing.T) {
	h := newHarness(t, 3)
	bob := h.provision(t, testEmployeeCode, "bob", testPassword)
	ctx := context.Background()

	for range 2 {
		_, err := h.login("bob", "Wrong123!")
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
	require.Equal(t, 2, h.failedAttempts(t, bob.ID))

	dbError := errors.New("insert into sessions failed")
	failingSessions := mockRepo.NewMockSessionRepository(t)
	failingSessions.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Session")).Return(dbError)

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return h.store.TransactionManager().Execute(ctx, func(tx repository.RepositoryFactory) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				factory.EXPECT().NewPrincipalRepository().Return(tx.NewPrincipalRepository())
				factory.EXPECT().NewAuthAccountRepository().Return(tx.NewAuthAccountRepository())
				factory.EXPECT().NewSessionRepository().Return(failingSessions)

				return fn(factory)
			})
		})

	srv := NewAuthService(AuthServiceParams{
		TxManager:     txManager,
		PrincipalRepo: h.store.Principals(),
		AccountRepo:   h.store.Accounts(),
		SessionRepo:   h.store.Sessions(),
		Hasher:        h.auth.hasher,
		TokenService:  h.auth.tokenService,
		Permissions:   h.permissions,
		Config:        newTestConfig(3),
		Logger:        newDiscardLogger(),
	})

	_, err := srv.Login(ctx, &usecase.LoginInput{Username: "bob", Password: testPassword})
	assertNotAuthFailure(t, err, dbError)

	assert.Equal(t, 2, h.failedAttempts(t, bob.ID), "counter reset must be rolled back")
	sessions, err := h.store.Sessions().ListActiveForPrincipal(ctx, bob.ID, time.Now())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestAuthService_Refresh_RotateError(t *testing.T) {
	tests := []struct {
		name      string
		rotateErr error
		check     func(t *testing.T, err, rotateErr error)
	}{
		{
			name:      "storage failure is not a token problem",
			rotateErr: errors.New("update sessions failed"),
			check:     assertNotAuthFailure,
		},
		{
			name:      "lost rotation race",
			rotateErr: repository.ErrSessionRotated,
			check: func(t *testing.T, err, _ error) {
				t.Helper()
				assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			ctx := context.Background()
			pair, err := fx.tokens.IssuePair(testPrincipalID, "bob")
			require.NoError(t, err)
			session := &entity.Session{ID: 11, PrincipalID: testPrincipalID, Active: true}

			fx.sessionRepo.EXPECT().
				FindValidByRefreshHash(ctx, fx.tokens.HashToken(pair.RefreshToken), mock.Anything).
				Return(session, nil)
			fx.accountRepo.EXPECT().FindByPrincipalID(ctx, testPrincipalID).Return(fx.account(t), nil)
			fx.principalRepo.EXPECT().FindByID(ctx, testPrincipalID).Return(activePrincipal(), nil)
			fx.sessionRepo.EXPECT().
				Rotate(ctx, int64(11), mock.MatchedBy(func(rotation repository.SessionRotation) bool {
					return rotation.PreviousRefreshHash == fx.tokens.HashToken(pair.RefreshToken)
				})).
				Return(tt.rotateErr)

			output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: pair.RefreshToken})

			assert.Nil(t, output)
			tt.check(t, err, tt.rotateErr)
		})
	}
}

func TestAuthService_Refresh_FindSessionError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbError := errors.New("connection reset")
	pair, err := fx.tokens.IssuePair(testPrincipalID, "bob")
	require.NoError(t, err)

	fx.sessionRepo.EXPECT().FindValidByRefreshHash(ctx, mock.Anything, mock.Anything).Return(nil, dbError)

	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: pair.RefreshToken})

	assertNotAuthFailure(t, err, dbError)
	assert.Equal(t, 1, fx.metrics.refresh[service.OutcomeError])
}

func TestAuthService_Refresh_OrphanedSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	pair, err := fx.tokens.IssuePair(testPrincipalID, "bob")
	require.NoError(t, err)
	session := &entity.Session{ID: 11, PrincipalID: testPrincipalID, Active: true}

	fx.sessionRepo.EXPECT().FindValidByRefreshHash(ctx, mock.Anything, mock.Anything).Return(session, nil)
	fx.accountRepo.EXPECT().FindByPrincipalID(ctx, testPrincipalID).Return(fx.account(t), nil)
	fx.principalRepo.EXPECT().FindByID(ctx, testPrincipalID).Return(nil, repository.ErrPrincipalNotFound)

	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: pair.RefreshToken})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Authenticate_FindSessionError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbError := errors.New("connection reset")
	pair, err := fx.tokens.IssuePair(testPrincipalID, "bob")
	require.NoError(t, err)

	fx.sessionRepo.EXPECT().
		FindValidByAccessHash(ctx, fx.tokens.HashToken(pair.AccessToken), mock.Anything).
		Return(nil, dbError)

	principal, err := fx.service.Authenticate(ctx, pair.AccessToken)

	assert.Nil(t, principal)
	assertNotAuthFailure(t, err, dbError)
}

func TestAuthService_Logout_DeactivateError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	dbError := errors.New("update sessions failed")
	pair, err := fx.tokens.IssuePair(testPrincipalID, "bob")
	require.NoError(t, err)
	session := &entity.Session{ID: 11, PrincipalID: testPrincipalID, Active: true}

	fx.sessionRepo.EXPECT().FindByAccessHash(ctx, fx.tokens.HashToken(pair.AccessToken)).Return(session, nil)
	fx.sessionRepo.EXPECT().Deactivate(ctx, int64(11)).Return(dbError)

	err = fx.service.Logout(ctx, &usecase.LogoutInput{AccessToken: pair.AccessToken})

	assertNotAuthFailure(t, err, dbError)
}
