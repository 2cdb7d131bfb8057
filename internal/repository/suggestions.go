package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/gen/ent"
	"github.com/prasetyo-adi/kas-keluarga/gen/ent/suggestion"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/suggest"
)

type SuggestionRepository interface {
	CreateBatch(ctx context.Context, ocrResultID, documentID uuid.UUID, items []suggest.Suggestion) ([]*ent.Suggestion, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Suggestion, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*ent.Suggestion, error)
}

type suggestionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSuggestionRepository(client *ent.Client, logger *slog.Logger) SuggestionRepository {
	return &suggestionRepository{client: client, logger: logger.With("component", "suggestion_repository")}
}

func (r *suggestionRepository) CreateBatch(ctx context.Context, ocrResultID, documentID uuid.UUID, items []suggest.Suggestion) ([]*ent.Suggestion, error) {
	if len(items) == 0 {
		return nil, nil
	}
	builders := make([]*ent.SuggestionCreate, 0, len(items))
	for _, s := range items {
		b := r.client.Suggestion.Create().
			SetOcrResultID(ocrResultID).
			SetDocumentID(documentID).
			SetDescription(s.Description).
			SetAmount(s.Amount).
			SetCurrencyCode(s.Currency).
			SetTxDate(s.Date).
			SetConfidence(s.Confidence).
			SetSourceType(string(s.SourceType)).
			SetOriginalText(s.OriginalText)
		if s.Merchant != "" {
			b.SetMerchant(s.Merchant)
		}
		if s.CategoryID != nil {
			b.SetCategoryID(*s.CategoryID)
		}
		if s.CategoryName != "" {
			b.SetCategoryName(s.CategoryName)
		}
		if s.LineItemIndex != nil {
			b.SetLineItemIndex(*s.LineItemIndex)
		}
		builders = append(builders, b)
	}
	rows, err := r.client.Suggestion.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create suggestions", "error", err, "document_id", documentID)
		return nil, common.InternalError("create suggestions", err)
	}
	r.logger.Info("suggestions created", "document_id", documentID, "count", len(rows))
	return rows, nil
}

func (r *suggestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Suggestion, error) {
	s, err := r.client.Suggestion.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("suggestion", id.String())
		}
		return nil, common.InternalError("get suggestion", err)
	}
	return s, nil
}

func (r *suggestionRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*ent.Suggestion, error) {
	rows, err := r.client.Suggestion.Query().
		Where(suggestion.DocumentID(documentID)).
		Order(ent.Asc(suggestion.FieldCreatedAt), ent.Asc(suggestion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, common.InternalError("list suggestions", err)
	}
	return rows, nil
}
