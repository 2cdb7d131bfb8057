package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/account"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Account, error)
	ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*ent.Account, error)
}

type accountRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAccountRepository(client *ent.Client, logger *slog.Logger) AccountRepository {
	return &accountRepository{client: client, logger: logger.With("component", "account_repository")}
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Account, error) {
	a, err := r.client.Account.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("account", id.String())
		}
		return nil, common.InternalError("get account", err)
	}
	return a, nil
}

func (r *accountRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*ent.Account, error) {
	rows, err := r.client.Account.Query().
		Where(account.HouseholdID(householdID)).
		Order(ent.Asc(account.FieldName)).
		All(ctx)
	if err != nil {
		return nil, common.InternalError("list accounts", err)
	}
	return rows, nil
}
