package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/auth"
	"backoffice/internal/infra/persistence/memory"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPassword     = "Secret123!"
	testEmployeeCode = "EMP00001"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MaxActiveSessions: maxActiveSessions,
			LockoutThreshold:  5,
		},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.ApplyDefaults()

	return cfg
}

// recordingMetrics counts outcomes per label.
type recordingMetrics struct {
	mu      sync.Mutex
	logins  map[string]int
	refresh map[string]int
	evicted int
	swept   int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{logins: map[string]int{}, refresh: map[string]int{}}
}

func (m *recordingMetrics) LoginAttempt(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins[outcome]++
}

func (m *recordingMetrics) RefreshAttempt(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refresh[outcome]++
}

func (m *recordingMetrics) SessionsEvicted(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evicted += count
}

func (m *recordingMetrics) SessionsSwept(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.swept += count
}

func (m *recordingMetrics) login(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.logins[outcome]
}

// testClock is a settable clock shared by the services of one harness.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// harness wires every service over one in-memory store.
type harness struct {
	store       *memory.Store
	clock       *testClock
	metrics     *recordingMetrics
	auth        *authService
	accounts    *accountService
	sessions    *sessionService
	permissions *permissionService
}

func newHarness(t *testing.T, maxActiveSessions int) *harness {
	t.Helper()

	cfg := newTestConfig(maxActiveSessions)
	logger := newDiscardLogger()
	store := memory.NewStore()
	clock := &testClock{now: time.Now()}
	metrics := newRecordingMetrics()

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)

	permissions := NewPermissionService(PermissionServiceParams{
		RBACRepo: store.RBAC(),
		Logger:   logger,
	}).(*permissionService)

	authSrv := NewAuthService(AuthServiceParams{
		TxManager:     store.TransactionManager(),
		PrincipalRepo: store.Principals(),
		AccountRepo:   store.Accounts(),
		SessionRepo:   store.Sessions(),
		Hasher:        hasher,
		TokenService:  tokens,
		Permissions:   permissions,
		Metrics:       metrics,
		Config:        cfg,
		Logger:        logger,
	}).(*authService)
	authSrv.now = clock.Now

	accounts := NewAccountService(AccountServiceParams{
		TxManager:     store.TransactionManager(),
		PrincipalRepo: store.Principals(),
		AccountRepo:   store.Accounts(),
		Hasher:        hasher,
		Config:        cfg,
		Logger:        logger,
	}).(*accountService)
	accounts.now = clock.Now

	sessions := NewSessionService(SessionServiceParams{
		TxManager:   store.TransactionManager(),
		SessionRepo: store.Sessions(),
		Metrics:     metrics,
		Logger:      logger,
	}).(*sessionService)
	sessions.now = clock.Now

	return &harness{
		store:       store,
		clock:       clock,
		metrics:     metrics,
		auth:        authSrv,
		accounts:    accounts,
		sessions:    sessions,
		permissions: permissions,
	}
}

// provision creates a principal with an enabled account.
func (h *harness) provision(t *testing.T, code, username, password string) *entity.Principal {
	t.Helper()
	ctx := context.Background()

	principal, err := h.accounts.ProvisionPrincipal(ctx, &usecase.ProvisionPrincipalInput{EmployeeCode: code, Name: username})
	require.NoError(t, err)

	_, err = h.accounts.CreateAccount(ctx, &usecase.CreateAccountInput{
		PrincipalID: principal.ID,
		Username:    username,
		Password:    password,
	})
	require.NoError(t, err)

	return principal
}

func (h *harness) login(username, password string) (*usecase.AuthOutput, error) {
	return h.auth.Login(context.Background(), &usecase.LoginInput{Username: username, Password: password})
}

func (h *harness) failedAttempts(t *testing.T, principalID int64) int {
	t.Helper()

	account, err := h.store.Accounts().FindByPrincipalID(context.Background(), principalID)
	require.NoError(t, err)

	return account.FailedAttempts
}

// onExecute makes txManager run the transaction body once against a fresh mock factory
// prepared by setup, and return the body's error as the real managers do.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
