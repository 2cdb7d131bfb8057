package suggest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo-adi/kas-keluarga/constants"
	"github.com/prasetyo-adi/kas-keluarga/internal/extract"
)

// CategoryRef identifies an existing household category.
type CategoryRef struct {
	ID   uuid.UUID
	Name string
}

// History gives the generator read access to prior household ledger state for
// category inference. Lookups return (nil, nil) when nothing matches.
type History interface {
	// CategoryForMerchant returns the category of the most recent household
	// transaction whose merchant or description contains needle
	// (case-insensitive).
	CategoryForMerchant(ctx context.Context, householdID uuid.UUID, needle string) (*CategoryRef, error)
	// CategoryByName resolves a household category by exact name.
	CategoryByName(ctx context.Context, householdID uuid.UUID, name string) (*CategoryRef, error)
}

// Suggestion is one candidate ledger transaction. Amount is signed:
// negative = outflow.
type Suggestion struct {
	Description   string
	Amount        float64
	Currency      string
	Date          time.Time
	Merchant      string
	CategoryID    *uuid.UUID
	CategoryName  string
	Confidence    float32
	SourceType    constants.SuggestionSource
	LineItemIndex *int
	OriginalText  string
}

// Input carries the extraction output the generator consumes.
type Input struct {
	DocumentType constants.DocumentType
	Data         extract.ExtractedData
	Currency     string
}

// Generator turns extracted data into candidate transactions. It reads
// household history for categorization but never mutates anything.
type Generator struct {
	history History
	logger  *slog.Logger
	now     func() time.Time
}

func NewGenerator(history History, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{history: history, logger: logger, now: time.Now}
}

// Generate dispatches by document category.
func (g *Generator) Generate(ctx context.Context, householdID uuid.UUID, in Input) ([]Suggestion, error) {
	switch in.DocumentType {
	case constants.DocTypeBankStatement:
		return g.fromStatement(ctx, householdID, in)
	default:
		return g.fromReceipt(ctx, householdID, in)
	}
}

// fromReceipt builds one main suggestion from the receipt total plus one
// suggestion per extracted line item.
func (g *Generator) fromReceipt(ctx context.Context, householdID uuid.UUID, in Input) ([]Suggestion, error) {
	data := in.Data
	currency := in.Currency
	if data.Amount != nil && data.Amount.Currency != "" {
		currency = data.Amount.Currency
	}

	date := g.now()
	var dateConf float32
	if data.Date != nil {
		date = data.Date.Date
		dateConf = data.Date.Confidence
	}

	merchant := ""
	var merchantConf float32
	if data.Merchant != nil {
		merchant = data.Merchant.Name
		merchantConf = data.Merchant.Confidence
	}

	var out []Suggestion
	if data.Amount != nil && data.Amount.Total > 0 {
		desc := merchant
		if desc == "" {
			desc = "Receipt purchase"
		}
		s := Suggestion{
			Description: desc,
			Amount:      -data.Amount.Total,
			Currency:    currency,
			Date:        date,
			Merchant:    merchant,
			Confidence:  receiptConfidence(merchantConf, data.Amount.Confidence, dateConf),
			SourceType:  constants.SourceReceipt,
		}
		g.categorize(ctx, householdID, &s, firstNonEmpty(merchant, desc))
		out = append(out, s)
	}

	for i, item := range data.LineItems {
		idx := i
		s := Suggestion{
			Description:   item.Description,
			Amount:        -item.TotalPrice,
			Currency:      currency,
			Date:          date,
			Merchant:      merchant,
			Confidence:    item.Confidence,
			SourceType:    constants.SourceReceipt,
			LineItemIndex: &idx,
			OriginalText:  fmt.Sprintf("%g %s %g", item.Quantity, item.Description, item.TotalPrice),
		}
		g.categorize(ctx, householdID, &s, item.Description)
		out = append(out, s)
	}

	g.logger.Debug("generated receipt suggestions", "household_id", householdID, "count", len(out))
	return out, nil
}

// fromStatement builds one suggestion per parsed statement row. Statement
// rows carry a fixed confidence: statements are considered more reliable
// than OCR receipts.
func (g *Generator) fromStatement(ctx context.Context, householdID uuid.UUID, in Input) ([]Suggestion, error) {
	bs := in.Data.BankStatement
	if bs == nil {
		return nil, nil
	}
	var out []Suggestion
	for _, row := range bs.Transactions {
		s := Suggestion{
			Description:  row.Description,
			Amount:       row.Amount,
			Currency:     in.Currency,
			Date:         row.Date,
			Merchant:     merchantFromStatement(row.Description),
			Confidence:   0.8,
			SourceType:   constants.SourceBankStatement,
			OriginalText: row.Description,
		}
		g.categorize(ctx, householdID, &s, row.Description)
		out = append(out, s)
	}
	g.logger.Debug("generated statement suggestions", "household_id", householdID, "count", len(out))
	return out, nil
}

// categorize tries household history first, then the keyword rule table.
// Lookup failures degrade to no category rather than failing generation.
func (g *Generator) categorize(ctx context.Context, householdID uuid.UUID, s *Suggestion, needle string) {
	if needle == "" {
		return
	}
	if ref, err := g.history.CategoryForMerchant(ctx, householdID, needle); err == nil && ref != nil {
		s.CategoryID = &ref.ID
		s.CategoryName = ref.Name
		return
	} else if err != nil {
		g.logger.Warn("history lookup failed", "household_id", householdID, "error", err)
	}

	name, ok := ruleCategory(needle)
	if !ok {
		return
	}
	s.CategoryName = name
	if ref, err := g.history.CategoryByName(ctx, householdID, name); err == nil && ref != nil {
		s.CategoryID = &ref.ID
	}
}

// receiptConfidence: base 0.5, boosted by strong merchant, amount and date
// extractions, capped at 1.0.
func receiptConfidence(merchant, amount, date float32) float32 {
	c := float32(0.5)
	if merchant > 0.7 {
		c += 0.2
	}
	if amount > 0.8 {
		c += 0.2
	}
	if date > 0.8 {
		c += 0.1
	}
	if c > 1.0 {
		c = 1.0
	}
	return c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
