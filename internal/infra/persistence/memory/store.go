// Package memory is a process-local storage driver. It honours the same uniqueness,
// reference and atomicity rules as the postgres driver so the service can run
// without a database in development and tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
)

// state is every table the service owns. Rows are held by value.
type state struct {
	nextID int64

	principals      map[int64]entity.Principal
	accounts        map[int64]entity.AuthAccount // keyed by principal id
	sessions        map[int64]entity.Session
	roles           map[int64]entity.Role
	permissions     map[int64]entity.Permission
	rolePermissions map[entity.RolePermission]struct{}
	userRoles       map[entity.UserRole]struct{}
}

func newState() *state {
	return &state{
		principals:      make(map[int64]entity.Principal),
		accounts:        make(map[int64]entity.AuthAccount),
		sessions:        make(map[int64]entity.Session),
		roles:           make(map[int64]entity.Role),
		permissions:     make(map[int64]entity.Permission),
		rolePermissions: make(map[entity.RolePermission]struct{}),
		userRoles:       make(map[entity.UserRole]struct{}),
	}
}

func (st *state) id() int64 {
	st.nextID++

	return st.nextID
}

func (st *state) clone() *state {
	out := &state{
		nextID:          st.nextID,
		principals:      maps.Clone(st.principals),
		accounts:        make(map[int64]entity.AuthAccount, len(st.accounts)),
		sessions:        maps.Clone(st.sessions),
		roles:           maps.Clone(st.roles),
		permissions:     maps.Clone(st.permissions),
		rolePermissions: maps.Clone(st.rolePermissions),
		userRoles:       maps.Clone(st.userRoles),
	}
	for id, account := range st.accounts {
		out.accounts[id] = copyAccount(account)
	}

	return out
}

// Store owns the in-memory tables. A transaction holds the store lock for its
// whole duration, which also serialises it against every other operation.
type Store struct {
	mu sync.Mutex
	st *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

// conn is a view on the store. Outside a transaction every call locks the store;
// inside one the lock is already held by Execute.
type conn struct {
	store *Store
	inTx  bool
}

func (c conn) run(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.inTx {
		c.store.mu.Lock()
		defer c.store.mu.Unlock()
	}

	return fn(c.store.st)
}

func (s *Store) Principals() repository.PrincipalRepository {
	return &principalRepository{conn: conn{store: s}}
}

func (s *Store) Accounts() repository.AuthAccountRepository {
	return &authAccountRepository{conn: conn{store: s}}
}

func (s *Store) Sessions() repository.SessionRepository {
	return &sessionRepository{conn: conn{store: s}}
}

func (s *Store) RBAC() repository.RBACRepository {
	return &rbacRepository{conn: conn{store: s}}
}

// TransactionManager returns a manager whose transactions roll back to a snapshot on error.
func (s *Store) TransactionManager() repository.TransactionManager {
	return &transactionManager{store: s}
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	conn conn
}

func (f *repositoryFactory) NewPrincipalRepository() repository.PrincipalRepository {
	return &principalRepository{conn: f.conn}
}

func (f *repositoryFactory) NewAuthAccountRepository() repository.AuthAccountRepository {
	return &authAccountRepository{conn: f.conn}
}

func (f *repositoryFactory) NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{conn: f.conn}
}

func (f *repositoryFactory) NewRBACRepository() repository.RBACRepository {
	return &rbacRepository{conn: f.conn}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snapshot := tm.store.st.clone()
	defer func() {
		if r := recover(); r != nil {
			tm.store.st = snapshot
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{conn: conn{store: tm.store, inTx: true}}); err != nil {
		tm.store.st = snapshot

		return err
	}

	return nil
}
