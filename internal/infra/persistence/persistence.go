// Package persistence selects the storage driver and exposes its repositories to the container.
package persistence

import (
	"log/slog"

	"backoffice/config"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/memory"
	"backoffice/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the full repository set of the configured driver.
type Repositories struct {
	fx.Out

	Principals  repository.PrincipalRepository
	Accounts    repository.AuthAccountRepository
	Sessions    repository.SessionRepository
	RBAC        repository.RBACRepository
	Transaction repository.TransactionManager
}

func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			Principals:  store.Principals(),
			Accounts:    store.Accounts(),
			Sessions:    store.Sessions(),
			RBAC:        store.RBAC(),
			Transaction: store.TransactionManager(),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Principals:  postgres.NewPrincipalRepository(db),
			Accounts:    postgres.NewAuthAccountRepository(db),
			Sessions:    postgres.NewSessionRepository(db),
			RBAC:        postgres.NewRBACRepository(db),
			Transaction: postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", params.Config.Storage.Driver)
	}
}
