package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/category"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

type CategoryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Category, error)
	FindByName(ctx context.Context, householdID uuid.UUID, name string) (*ent.Category, error)
	ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*ent.Category, error)
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{client: client, logger: logger.With("component", "category_repository")}
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Category, error) {
	c, err := r.client.Category.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("category", id.String())
		}
		return nil, common.InternalError("get category", err)
	}
	return c, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, householdID uuid.UUID, name string) (*ent.Category, error) {
	c, err := r.client.Category.Query().
		Where(category.HouseholdID(householdID), category.NameEqualFold(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("category", name)
		}
		return nil, common.InternalError("find category", err)
	}
	return c, nil
}

func (r *categoryRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*ent.Category, error) {
	rows, err := r.client.Category.Query().
		Where(category.HouseholdID(householdID)).
		Order(ent.Asc(category.FieldName)).
		All(ctx)
	if err != nil {
		return nil, common.InternalError("list categories", err)
	}
	return rows, nil
}
