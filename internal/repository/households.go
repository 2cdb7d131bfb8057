package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/householdmember"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
)

type HouseholdRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Household, error)
	// IsMember reports whether the user belongs to the household.
	IsMember(ctx context.Context, householdID, userID uuid.UUID) (bool, error)
}

type householdRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewHouseholdRepository(client *ent.Client, logger *slog.Logger) HouseholdRepository {
	return &householdRepository{client: client, logger: logger.With("component", "household_repository")}
}

func (r *householdRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Household, error) {
	h, err := r.client.Household.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("household", id.String())
		}
		return nil, common.InternalError("get household", err)
	}
	return h, nil
}

func (r *householdRepository) IsMember(ctx context.Context, householdID, userID uuid.UUID) (bool, error) {
	ok, err := r.client.HouseholdMember.Query().
		Where(
			householdmember.HouseholdID(householdID),
			householdmember.UserID(userID),
		).
		Exist(ctx)
	if err != nil {
		return false, common.InternalError("check household membership", err)
	}
	return ok, nil
}
